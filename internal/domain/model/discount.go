package model

import "time"

// Discount is an admin-managed percentage code with an optional validity window.
// Code is stored uppercase; matching is case-insensitive.
type Discount struct {
	ID         int64
	Code       string
	Name       string
	Percentage float64
	StartsAt   *time.Time
	EndsAt     *time.Time
	Active     bool
	CreatedAt  time.Time
}
