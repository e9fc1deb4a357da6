package model

// Customer represents a billable customer.
// ImageURL is either a resolvable URL/path produced by asset ingestion or the
// empty string meaning "no image"; it is never left NULL in storage.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}
