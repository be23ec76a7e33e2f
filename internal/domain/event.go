package domain

import (
	"strings"
	"time"
)

// Event - мероприятие отеля для гостей (вечер джаза, дегустация и т.п.).
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *Event) Clone() *Event {
	c := *e
	return &c
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	ImageURL    *string
}

func (in UpdateEventInput) Apply(e *Event) {
	if in.Title != nil {
		e.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Date != nil {
		e.Date = in.Date.UTC()
	}
	if in.Location != nil {
		e.Location = strings.TrimSpace(*in.Location)
	}
	if in.ImageURL != nil {
		e.ImageURL = *in.ImageURL
	}
}

// EventFilter: nil From - все мероприятия, иначе только начиная с From.
type EventFilter struct {
	From *time.Time
}

func (f EventFilter) Match(e *Event) bool {
	return f.From == nil || !e.Date.Before(*f.From)
}
