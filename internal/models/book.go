package models

import "time"

// Book is a row of the books table as it renders on the wire. Year and
// Rating are pointers so a NULL column serializes as JSON null; a NULL
// review renders as "" instead (kept as-is from the existing API contract).
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      *int      `json:"year"`
	Status    string    `json:"status"`
	Rating    *int      `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
