package models

// Health is the body of the health endpoint.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
