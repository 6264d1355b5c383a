// Package domain declares reminder DTOs and ports
package domain

import almdom "almanac/internal/services/api/almanac/domain"

// CreateInput asks for a reminder at the start of one planetary hour
type CreateInput struct {
	Label       string `json:"label"        validate:"required,max=120"`
	Date        string `json:"date"         validate:"required,datetime=2006-01-02"`
	HourOrdinal int    `json:"hour_ordinal" validate:"required,min=1,max=24"`

	almdom.Location

	TimeZone string `json:"time_zone" validate:"omitempty,timezone"`
	Model    string `json:"model"     validate:"omitempty,oneof=approx precise"`
}

// UpcomingInput filters the pending reminder list
type UpcomingInput struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=200"`
}

// CancelInput names the reminder to cancel
type CancelInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Reminder is the wire form of a stored reminder
type Reminder struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	Date         string  `json:"date"`
	HourOrdinal  int     `json:"hour_ordinal"`
	Planet       string  `json:"planet"`
	StartsAt     string  `json:"starts_at"`
	EndsAt       string  `json:"ends_at"`
	DispatchedAt *string `json:"dispatched_at"`
	CreatedAt    string  `json:"created_at"`
}

// CancelOutput reports the cancel outcome
type CancelOutput struct {
	ID       string `json:"id"`
	Canceled bool   `json:"canceled"`
}
