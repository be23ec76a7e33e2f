package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// BlockingStatuses - статусы, при которых бронь занимает номер на свои даты.
var BlockingStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

type Guest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName"  validate:"required"`
	Email       string `json:"email"     validate:"required,email"`
	Phone       string `json:"phone"     validate:"required"`
	Age         *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
	IsMainGuest bool   `json:"isMainGuest"`
}

// Booking - запись в журнале бронирований. TotalPrice фиксируется при
// создании и не пересчитывается при изменении цены номера.
type Booking struct {
	ID               string        `json:"id"`
	RoomID           string        `json:"roomId"`
	ConfirmationCode string        `json:"confirmationCode"`
	CheckIn          time.Time     `json:"checkIn"`
	CheckOut         time.Time     `json:"checkOut"`
	Guests           []Guest       `json:"guests"`
	AdultCount       int           `json:"adultCount"`
	ChildrenCount    int           `json:"childrenCount"`
	SpecialRequests  string        `json:"specialRequests,omitempty"`
	TotalPrice       int64         `json:"totalPrice"`
	Status           BookingStatus `json:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// Blocks сообщает, занимает ли бронь номер.
func (b *Booking) Blocks() bool {
	return b.Status != BookingStatusCancelled
}

func (b *Booking) MainGuest() *Guest {
	for i := range b.Guests {
		if b.Guests[i].IsMainGuest {
			return &b.Guests[i]
		}
	}
	if len(b.Guests) > 0 {
		return &b.Guests[0]
	}
	return nil
}

func (b *Booking) Clone() *Booking {
	c := *b
	c.Guests = make([]Guest, len(b.Guests))
	for i, g := range b.Guests {
		if g.Age != nil {
			a := *g.Age
			g.Age = &a
		}
		c.Guests[i] = g
	}
	return &c
}

type CreateBookingInput struct {
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          []Guest
	AdultCount      int
	ChildrenCount   int
	SpecialRequests string
}

// UpdateBookingInput - частичное обновление. Даты и номер не меняются:
// для этого бронь отменяется и создается заново.
type UpdateBookingInput struct {
	Status          *BookingStatus
	PaymentStatus   *PaymentStatus
	SpecialRequests *string
	Guests          []Guest
	AdultCount      *int
	ChildrenCount   *int
}

// StatusOnly - меняются только статус брони и статус оплаты.
func (in UpdateBookingInput) StatusOnly() bool {
	return in.SpecialRequests == nil && in.Guests == nil && in.AdultCount == nil && in.ChildrenCount == nil
}

type BookingFilter struct {
	Status BookingStatus
	RoomID string
	From   *time.Time
	To     *time.Time
	Search string
}

func (f BookingFilter) Match(b *Booking) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.RoomID != "" && b.RoomID != f.RoomID {
		return false
	}
	if f.From != nil && !b.CheckOut.After(*f.From) {
		return false
	}
	if f.To != nil && !b.CheckIn.Before(*f.To) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(b.ConfirmationCode), q) {
			g := b.MainGuest()
			if g == nil {
				return false
			}
			if !strings.Contains(strings.ToLower(g.FirstName), q) &&
				!strings.Contains(strings.ToLower(g.LastName), q) {
				return false
			}
		}
	}
	return true
}
