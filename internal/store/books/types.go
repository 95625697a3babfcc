package books

import "encoding/json"

// CreateBookDTO holds validated input for Create. The caller guarantees
// Title and Author are present; Year nil inserts SQL NULL; an empty Status
// falls back to "planned".
type CreateBookDTO struct {
	Title  string
	Author string
	Year   *int
	Status string
}

// OptionalInt distinguishes an absent JSON field (Set=false) from an
// explicit null (Set=true, Value=nil). Explicit null clears the column.
type OptionalInt struct {
	Set   bool
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// UpdateBookDTO is a partial update: nil / Set=false fields are untouched.
// A JSON null for title/author/status/review decodes to nil and counts as
// absent; only year and rating support explicit clearing.
type UpdateBookDTO struct {
	Title  *string     `json:"title"`
	Author *string     `json:"author"`
	Year   OptionalInt `json:"year"`
	Status *string     `json:"status"`
	Rating OptionalInt `json:"rating"`
	Review *string     `json:"review"`
}

// Empty reports whether the update would touch no columns.
func (d UpdateBookDTO) Empty() bool {
	return d.Title == nil && d.Author == nil && !d.Year.Set &&
		d.Status == nil && !d.Rating.Set && d.Review == nil
}

// Stats is the aggregate report for GET /api/stats. AverageRating is nil
// when no book carries a rating.
type Stats struct {
	ByStatus      map[string]int `json:"by_status"`
	AverageRating *float64       `json:"average_rating"`
	TotalBooks    int            `json:"total_books"`
}
