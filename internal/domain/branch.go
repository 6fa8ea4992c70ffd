package domain

import "time"

// Branch represents a branch office. Financial records reference branches
// by id only and never embed them.
type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
