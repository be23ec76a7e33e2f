package confirmation

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultLength = 8
)

// Generator выдает коды подтверждения из алфавита base-36 в верхнем регистре.
// Уникальность в пределах журнала проверяет хранилище.
type Generator struct {
	length int
}

func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

func (g *Generator) Generate() (string, error) {
	base := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = Alphabet[n.Int64()]
	}
	return string(buf), nil
}
