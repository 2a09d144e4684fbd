package model

// Movie is one bookable listing: a title, its showtimes, the per-ticket
// price and an artwork reference. Listings are immutable once the catalog
// is built.
type Movie struct {
	Title   string   `json:"title"`
	Times   []string `json:"times"`
	Price   float64  `json:"price"`
	Artwork string   `json:"artwork"`
}

// HasTime reports whether label is one of the listing's showtimes.
func (m Movie) HasTime(label string) bool {
	for _, t := range m.Times {
		if t == label {
			return true
		}
	}
	return false
}
