package domain

import "time"

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypePremium  RoomType = "premium"
	RoomTypeSuite    RoomType = "suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeDeluxe, RoomTypePremium, RoomTypeSuite:
		return true
	}
	return false
}

// Room - единица номерного фонда. PricePerNight и OriginalPrice хранятся
// в целых единицах валюты.
type Room struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PricePerNight int64     `json:"pricePerNight"`
	OriginalPrice *int64    `json:"originalPrice,omitempty"`
	MaxGuests     int       `json:"maxGuests"`
	SizeLabel     string    `json:"sizeLabel"`
	Amenities     []string  `json:"amenities"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Available     bool      `json:"available"`
	RoomType      RoomType  `json:"roomType"`
	Featured      bool      `json:"featured"`
	Category      string    `json:"category"`
	Beds          string    `json:"beds"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateRoomInput struct {
	Name          string
	Description   string
	PricePerNight int64
	OriginalPrice *int64
	MaxGuests     int
	SizeLabel     string
	Amenities     []string
	Rating        float64
	ReviewCount   int
	Available     *bool
	RoomType      RoomType
	Featured      bool
	Category      string
	Beds          string
	ImageURL      string
}

// UpdateRoomInput - частичное обновление, nil означает "не менять".
type UpdateRoomInput struct {
	Name          *string
	Description   *string
	PricePerNight *int64
	OriginalPrice *int64
	MaxGuests     *int
	SizeLabel     *string
	Amenities     []string
	Rating        *float64
	ReviewCount   *int
	Available     *bool
	RoomType      *RoomType
	Featured      *bool
	Category      *string
	Beds          *string
	ImageURL      *string
}

func (in UpdateRoomInput) Apply(r *Room) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.PricePerNight != nil {
		r.PricePerNight = *in.PricePerNight
	}
	if in.OriginalPrice != nil {
		p := *in.OriginalPrice
		r.OriginalPrice = &p
	}
	if in.MaxGuests != nil {
		r.MaxGuests = *in.MaxGuests
	}
	if in.SizeLabel != nil {
		r.SizeLabel = *in.SizeLabel
	}
	if in.Amenities != nil {
		r.Amenities = append([]string(nil), in.Amenities...)
	}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.ReviewCount != nil {
		r.ReviewCount = *in.ReviewCount
	}
	if in.Available != nil {
		r.Available = *in.Available
	}
	if in.RoomType != nil {
		r.RoomType = *in.RoomType
	}
	if in.Featured != nil {
		r.Featured = *in.Featured
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	if in.Beds != nil {
		r.Beds = *in.Beds
	}
	if in.ImageURL != nil {
		r.ImageURL = *in.ImageURL
	}
}

type RoomFilter struct {
	RoomType RoomType
	Category string
	Featured *bool
}

func (f RoomFilter) Match(r *Room) bool {
	if f.RoomType != "" && r.RoomType != f.RoomType {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Featured != nil && r.Featured != *f.Featured {
		return false
	}
	return true
}

// PriceQuote - расчет стоимости проживания без создания брони.
type PriceQuote struct {
	RoomID        string `json:"roomId"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	TotalPrice    int64  `json:"totalPrice"`
}

// Clone возвращает копию, не разделяющую срезы и указатели с оригиналом.
func (r *Room) Clone() *Room {
	c := *r
	if r.OriginalPrice != nil {
		p := *r.OriginalPrice
		c.OriginalPrice = &p
	}
	c.Amenities = append([]string(nil), r.Amenities...)
	return &c
}
