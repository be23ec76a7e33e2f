package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// DateRange - полуинтервал [CheckIn, CheckOut).
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange проверяет, что выезд строго позже заезда и что срок
// проживания не превышает maxStayNights (0 - без ограничения).
func NewDateRange(checkIn, checkOut time.Time, maxStayNights int) (DateRange, error) {
	if !checkOut.After(checkIn) {
		return DateRange{}, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
	}

	r := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if maxStayNights > 0 && r.Nights() > maxStayNights {
		return DateRange{}, fmt.Errorf("%w: stay of %d nights exceeds maximum of %d",
			ErrInvalidDateRange, r.Nights(), maxStayNights)
	}

	return r, nil
}

// Nights - количество ночей, неполные сутки округляются вверх.
func (r DateRange) Nights() int {
	d := r.CheckOut.Sub(r.CheckIn)
	if d <= 0 {
		return 0
	}
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return n
}

func (r DateRange) Overlaps(o DateRange) bool {
	return o.CheckIn.Before(r.CheckOut) && o.CheckOut.After(r.CheckIn)
}
