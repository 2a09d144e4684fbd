package booking

import (
	"fmt"
	"strings"

	"taquilla-cli/model"
)

// Receipt is the immutable snapshot produced by a successful checkout.
type Receipt struct {
	MovieTitle    string
	Time          string
	Price         float64
	PaymentMethod string
	Seats         []SeatRef
}

// Session is the state of one booking attempt: a catalog pick, a showtime,
// the seat grid and, once checked out, the recorded payment method.
//
// The state chain is empty → movie chosen → time chosen → checked out.
// Choosing a movie returns the session to "movie chosen" from any state;
// seat toggles are orthogonal and never move the chain.
type Session struct {
	catalog model.Catalog
	seats   *SeatMap

	movie    model.Movie
	hasMovie bool
	time     string
	payment  string
}

// NewSession starts an empty booking attempt against the given catalog.
// A nil seat map gets the default grid.
func NewSession(catalog model.Catalog, seats *SeatMap) *Session {
	if seats == nil {
		seats = NewSeatMap(DefaultRows, DefaultCols)
	}
	return &Session{catalog: catalog, seats: seats}
}

// Catalog returns the catalog this session books against.
func (s *Session) Catalog() model.Catalog { return s.catalog }

// SeatMap returns the session's seat grid.
func (s *Session) SeatMap() *SeatMap { return s.seats }

// ChooseMovie resolves title against the catalog and makes it the selected
// movie. Any previously chosen showtime and recorded payment are cleared;
// a movie change invalidates an in-progress checkout. Seat selections are
// left alone.
func (s *Session) ChooseMovie(title string) error {
	movie, ok := s.catalog.Find(title)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMovie, title)
	}
	s.movie = movie
	s.hasMovie = true
	s.time = ""
	s.payment = ""
	return nil
}

// ChooseTime selects one of the current movie's showtimes and clears any
// recorded payment.
func (s *Session) ChooseTime(label string) error {
	if !s.hasMovie {
		return ErrNoMovieSelected
	}
	if !s.movie.HasTime(label) {
		return fmt.Errorf("%w: %q is not a showtime of %q", ErrInvalidTime, label, s.movie.Title)
	}
	s.time = label
	s.payment = ""
	return nil
}

// PriceQuote returns the selected movie's ticket price as a display string,
// or "unavailable" before a movie is chosen. The quote is per listing; it
// does not scale with the number of selected seats.
func (s *Session) PriceQuote() string {
	if !s.hasMovie {
		return "unavailable"
	}
	return FormatPrice(s.movie.Price)
}

// IsCheckoutEligible reports whether the session holds enough to accept a
// payment method: a movie and a showtime. Seat selection is not required.
func (s *Session) IsCheckoutEligible() bool {
	return s.hasMovie && s.time != ""
}

// Checkout records the payment method and returns the receipt snapshot.
// The method is only recorded, never charged.
func (s *Session) Checkout(paymentMethod string) (Receipt, error) {
	if !s.IsCheckoutEligible() {
		return Receipt{}, ErrNotEligible
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return Receipt{}, ErrInvalidPaymentMethod
	}
	s.payment = paymentMethod
	return Receipt{
		MovieTitle:    s.movie.Title,
		Time:          s.time,
		Price:         s.movie.Price,
		PaymentMethod: s.payment,
		Seats:         s.seats.Selected(),
	}, nil
}

// SelectedMovie returns the current movie, if one is chosen.
func (s *Session) SelectedMovie() (model.Movie, bool) {
	return s.movie, s.hasMovie
}

// SelectedTime returns the chosen showtime, or "" while unset.
func (s *Session) SelectedTime() string { return s.time }

// PaymentMethod returns the recorded payment method, or "" before checkout.
func (s *Session) PaymentMethod() string { return s.payment }

// Completed reports whether a checkout has gone through.
func (s *Session) Completed() bool { return s.payment != "" }

// FormatPrice renders a ticket price for display.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
