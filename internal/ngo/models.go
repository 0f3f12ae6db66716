package ngo

import "time"

// CategoryAll is the reserved category value meaning "no category filter".
// It must never be used as a real category name.
const CategoryAll = "All"

// NGO is the persistent organization record of the directory service.
// Email and Website are pointers because the store distinguishes absent
// from empty string.
type NGO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       *string   `json:"email,omitempty"`
	Website     *string   `json:"website,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Fields carries the caller-supplied mutable fields of a record. The store
// owns everything else (id, isActive, timestamps).
type Fields struct {
	Name        string
	Address     string
	Phone       string
	Email       *string
	Website     *string
	Category    string
	Description string
	Rating      float64
	ReviewCount int
}
