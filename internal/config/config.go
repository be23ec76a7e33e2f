package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Storage   StorageConfig   `yaml:"storage"    validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	Booking   BookingConfig   `yaml:"booking"    validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	AMQP      AMQPConfig      `yaml:"amqp"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Auth      AuthConfig      `yaml:"auth"       validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`

	// Адреса или подсети прокси, которым доверяется X-Forwarded-For.
	TrustedProxies []string `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES" env-separator:","`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// StorageConfig выбирает хранилище журнала. Для memory состояние
// сохраняется в JSON-снимок по SnapshotPath (пустой путь - без снимка).
type StorageConfig struct {
	Driver       string `yaml:"driver"        env:"STORAGE_DRIVER"        env-default:"postgres"             validate:"required,oneof=postgres memory"`
	SnapshotPath string `yaml:"snapshot_path" env:"STORAGE_SNAPSHOT_PATH" env-default:"data/pebbles.json"`
	Seed         bool   `yaml:"seed"          env:"STORAGE_SEED"          env-default:"true"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"pebbles"    validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"10m" validate:"required,gt=0"`
}

type BookingConfig struct {
	MaxStayNights int    `yaml:"max_stay_nights" env:"BOOKING_MAX_STAY_NIGHTS" env-default:"30"  validate:"min=0"`
	CodeLength    int    `yaml:"code_length"     env:"BOOKING_CODE_LENGTH"     env-default:"8"   validate:"min=6,max=32"`
	CodeAttempts  int    `yaml:"code_attempts"   env:"BOOKING_CODE_ATTEMPTS"   env-default:"5"   validate:"min=1"`
	Timezone      string `yaml:"timezone"        env:"BOOKING_TIMEZONE"        env-default:"UTC" validate:"required"`
}

// Location - часовой пояс, в котором считаются суточные показатели.
func (b BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type AMQPConfig struct {
	URL        string `yaml:"url"         env:"AMQP_URL"         env-default:""`
	Exchange   string `yaml:"exchange"    env:"AMQP_EXCHANGE"    env-default:"pebbles.bookings"`
	RoutingKey string `yaml:"routing_key" env:"AMQP_ROUTING_KEY" env-default:"hotel"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0" validate:"min=0"`
}

type RateLimitConfig struct {
	Capacity        int     `yaml:"capacity"          env:"RATE_LIMIT_CAPACITY"          env-default:"10"  validate:"min=1"`
	RefillPerSecond float64 `yaml:"refill_per_second" env:"RATE_LIMIT_REFILL_PER_SECOND" env-default:"0.2" validate:"gt=0"`
}

// RetryAfter - время до появления следующего токена.
func (r RateLimitConfig) RetryAfter() time.Duration {
	return time.Duration(float64(time.Second) / r.RefillPerSecond)
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"*"`
}

type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         validate:"required,min=16"`
	TokenTTL          time.Duration `yaml:"token_ttl"          env:"AUTH_TOKEN_TTL"          env-default:"12h" validate:"gt=0"`
	BootstrapEmail    string        `yaml:"bootstrap_email"    env:"AUTH_BOOTSTRAP_EMAIL"    env-default:""`
	BootstrapPassword string        `yaml:"bootstrap_password" env:"AUTH_BOOTSTRAP_PASSWORD" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
