package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taquilla-cli/booking"
	"taquilla-cli/model"
)

func testSession() *booking.Session {
	catalog := model.NewCatalog([]model.Movie{
		{Title: "Película 1", Times: []string{"10:00", "13:00", "16:00"}, Price: 8.0, Artwork: "movie1.jpg"},
		{Title: "Película 2", Times: []string{"11:00", "14:00", "17:00"}, Price: 10.0, Artwork: "movie2.jpg"},
	})
	return booking.NewSession(catalog, nil)
}

func press(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(appModel)
	if !ok {
		t.Fatalf("expected appModel, got %T", next)
	}
	if cmd != nil {
		if errVal, isErr := cmd().(errMsg); isErr {
			next, _ = result.Update(errVal)
			result = next.(appModel)
		}
	}
	return result
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := New(testSession()).(appModel)

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "p" {
		t.Fatalf("expected filter value to be %q, got %q", "p", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "pe" {
		t.Fatalf("expected filter value to be %q, got %q", "pe", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := New(testSession()).(appModel)

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.movieList.FilterValue(); got != "p" {
		t.Fatalf("expected filter value to be %q, got %q", "p", got)
	}
}

func TestSelectMovieAdvancesToShowtimes(t *testing.T) {
	session := testSession()
	m := New(session).(appModel)

	m = press(t, m, keyEnter())

	if m.state != stateSelectTime {
		t.Fatalf("expected showtime state, got %v", m.state)
	}
	movie, ok := session.SelectedMovie()
	if !ok || movie.Title != "Película 1" {
		t.Fatalf("expected Película 1 selected, got %+v ok=%v", movie, ok)
	}
	if got := len(m.timeList.Items()); got != 3 {
		t.Fatalf("expected 3 showtimes, got %d", got)
	}
}

func TestSelectTimeAdvancesToSeatMap(t *testing.T) {
	session := testSession()
	m := New(session).(appModel)

	m = press(t, m, keyEnter())
	m = press(t, m, keyEnter())

	if m.state != stateSeatMap {
		t.Fatalf("expected seat map state, got %v", m.state)
	}
	if got := session.SelectedTime(); got != "10:00" {
		t.Fatalf("expected first showtime chosen, got %q", got)
	}
	if !session.IsCheckoutEligible() {
		t.Fatal("expected eligible session after movie and time")
	}
}

func TestSeatCursorAndToggle(t *testing.T) {
	session := testSession()
	m := New(session).(appModel)
	m = press(t, m, keyEnter())
	m = press(t, m, keyEnter())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if m.cursorRow != 1 || m.cursorCol != 1 {
		t.Fatalf("expected cursor at (1, 1), got (%d, %d)", m.cursorRow, m.cursorCol)
	}

	m = press(t, m, keyEnter())
	selected, err := session.SeatMap().IsSelected(1, 1)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !selected {
		t.Fatal("expected seat (1, 1) to be selected")
	}
	if !strings.Contains(m.status, "Asiento 7") {
		t.Fatalf("expected status about Asiento 7, got %q", m.status)
	}

	m = press(t, m, keyEnter())
	selected, _ = session.SeatMap().IsSelected(1, 1)
	if selected {
		t.Fatal("expected second toggle to release the seat")
	}
}

func TestSeatCursorStaysInBounds(t *testing.T) {
	m := New(testSession()).(appModel)
	m = press(t, m, keyEnter())
	m = press(t, m, keyEnter())

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	}
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Fatalf("expected cursor clamped at (0, 0), got (%d, %d)", m.cursorRow, m.cursorCol)
	}
}

func TestPayBeforeEligibleShowsError(t *testing.T) {
	m := New(testSession()).(appModel)
	m.state = stateSeatMap

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})

	if m.state != stateError {
		t.Fatalf("expected error state, got %v", m.state)
	}
	if m.err == nil || !strings.Contains(m.err.Error(), "showtime") {
		t.Fatalf("expected eligibility error, got %v", m.err)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateSeatMap {
		t.Fatalf("expected esc to return to seat map, got %v", m.state)
	}
}

func TestCheckoutFlowProducesTicket(t *testing.T) {
	session := testSession()
	m := New(session).(appModel)

	m = press(t, m, keyEnter()) // movie
	m = press(t, m, keyEnter()) // time
	m = press(t, m, keyEnter()) // toggle seat (0, 0)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if m.state != stateSelectPayment {
		t.Fatalf("expected payment state, got %v", m.state)
	}

	m = press(t, m, keyEnter()) // Efectivo

	if m.state != stateShowTicket {
		t.Fatalf("expected ticket state, got %v", m.state)
	}
	if !session.Completed() {
		t.Fatal("expected completed session")
	}
	if got := session.PaymentMethod(); got != "Efectivo" {
		t.Fatalf("expected payment %q, got %q", "Efectivo", got)
	}
	for _, field := range []string{"Película 1", "10:00", "$8.00", "Efectivo", "Asiento 1"} {
		if !strings.Contains(m.ticketText, field) {
			t.Fatalf("expected %q in ticket:\n%s", field, m.ticketText)
		}
	}
}

func TestEnvPreselectsMovie(t *testing.T) {
	t.Setenv("TAQUILLA_MOVIE", "Película 2")
	session := testSession()

	m := New(session).(appModel)

	if m.state != stateSelectTime {
		t.Fatalf("expected showtime state, got %v", m.state)
	}
	movie, ok := session.SelectedMovie()
	if !ok || movie.Title != "Película 2" {
		t.Fatalf("expected Película 2 preselected, got %+v ok=%v", movie, ok)
	}
}

func TestEnvUnknownMovieIsIgnored(t *testing.T) {
	t.Setenv("TAQUILLA_MOVIE", "No Existe")
	session := testSession()

	m := New(session).(appModel)

	if m.state != stateSelectMovie {
		t.Fatalf("expected movie selection state, got %v", m.state)
	}
	if _, ok := session.SelectedMovie(); ok {
		t.Fatal("expected no movie selected")
	}
}
