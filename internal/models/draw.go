package models

import "time"

// DrawResult represents the outcome of a lucky draw
type DrawResult struct {
	ID            string    `json:"id"`
	Winner        Member    `json:"winner"`
	EligibleCount int       `json:"eligibleCount"` // paid members at draw time
	DrawnAt       time.Time `json:"drawnAt"`
}
