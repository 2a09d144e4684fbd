package model

// Catalog holds the ordered set of listings on sale. Insertion order is
// display order and titles are expected to be unique; Find returns the
// first match either way.
type Catalog struct {
	movies []Movie
}

// NewCatalog builds a catalog from the given listings. The slice is copied
// so later mutations by the caller do not leak into the catalog.
func NewCatalog(movies []Movie) Catalog {
	return Catalog{movies: append([]Movie(nil), movies...)}
}

// DefaultCatalog returns the built-in box-office program.
func DefaultCatalog() Catalog {
	return NewCatalog([]Movie{
		{Title: "Película 1", Times: []string{"10:00", "13:00", "16:00"}, Price: 8.0, Artwork: "movie1.jpg"},
		{Title: "Película 2", Times: []string{"11:00", "14:00", "17:00"}, Price: 10.0, Artwork: "movie2.jpg"},
		{Title: "Película 3", Times: []string{"12:00", "15:00", "18:00"}, Price: 12.0, Artwork: "movie3.jpg"},
	})
}

// List returns the listings in display order.
func (c Catalog) List() []Movie {
	return append([]Movie(nil), c.movies...)
}

// Find looks a listing up by exact title.
func (c Catalog) Find(title string) (Movie, bool) {
	for _, m := range c.movies {
		if m.Title == title {
			return m, true
		}
	}
	return Movie{}, false
}

// Titles returns the listing titles in display order.
func (c Catalog) Titles() []string {
	titles := make([]string, 0, len(c.movies))
	for _, m := range c.movies {
		titles = append(titles, m.Title)
	}
	return titles
}

// Len returns the number of listings.
func (c Catalog) Len() int {
	return len(c.movies)
}
