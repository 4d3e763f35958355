package store

// MediaRef is an image delivered out-of-band next to a generated answer.
type MediaRef struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
