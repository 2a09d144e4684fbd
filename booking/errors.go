package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMovie is returned when a chosen title is not in the catalog.
	ErrUnknownMovie = errors.New("unknown movie")
	// ErrNoMovieSelected is returned when a showtime is chosen first.
	ErrNoMovieSelected = errors.New("no movie selected")
	// ErrInvalidTime is returned for a showtime the selected movie does not play.
	ErrInvalidTime = errors.New("invalid showtime")
	// ErrNotEligible is returned by Checkout before movie and time are set.
	ErrNotEligible = errors.New("select a movie and a showtime first")
	// ErrInvalidPaymentMethod is returned for an empty or blank payment method.
	ErrInvalidPaymentMethod = errors.New("payment method is required")
)

// OutOfBoundsError is returned for a seat coordinate outside the grid.
type OutOfBoundsError struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

func (e *OutOfBoundsError) Error() string {
	if e == nil {
		return "seat out of bounds"
	}
	return fmt.Sprintf("seat (%d, %d) is outside the %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// IsOutOfBounds reports whether the error is an OutOfBoundsError.
func IsOutOfBounds(err error) bool {
	var oob *OutOfBoundsError
	return errors.As(err, &oob)
}
