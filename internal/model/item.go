package model

import "time"

// Item represents an inventory item.
// CreatedAt/UpdatedAt are server-assigned; UpdatedAt is refreshed on every
// update while CreatedAt stays immutable.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
