package dto

/* =========================
   REQUEST
   ========================= */

// BookCreateRequest carries the three fields a create must supply.
// PublishedYear is a pointer so the check is on presence, not truthiness:
// year 0 is valid, a missing key is not.
type BookCreateRequest struct {
	Title         string   `json:"title"         validate:"required"`
	Author        string   `json:"author"        validate:"required"`
	PublishedYear *float64 `json:"publishedYear" validate:"required"`
}
