package models

import "time"

type Church struct {
	ID          int    `json:"id"`
	Code        int    `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	OwnerID     string `json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
}
