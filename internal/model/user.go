package model

// User represents an auction participant from the seeded dataset.
type User struct {
	ID       string `json:"id"`
	Rating   int    `json:"rating"`
	Location string `json:"location,omitempty"`
	Country  string `json:"country,omitempty"`
}
