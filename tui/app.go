package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taquilla-cli/booking"
	"taquilla-cli/model"
	"taquilla-cli/ticket"
)

type appState int

const (
	stateSelectMovie appState = iota
	stateSelectTime
	stateSeatMap
	stateSelectPayment
	stateShowTicket
	stateError
)

// paymentMethods mirrors the original box-office payment dialog.
var paymentMethods = []string{"Efectivo", "Tarjeta de Débito", "Tarjeta de Crédito"}

type appModel struct {
	session *booking.Session

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movieList   list.Model
	timeList    list.Model
	paymentList list.Model

	cursorRow int
	cursorCol int

	showSeatNumbers bool
	status          string
	ticketText      string
}

type errMsg struct {
	err error
}

// New builds the booking TUI over the given session. The TAQUILLA_MOVIE
// env var preselects a movie, skipping straight to the showtime step.
func New(session *booking.Session) tea.Model {
	m := appModel{
		session:         session,
		state:           stateSelectMovie,
		showSeatNumbers: true,
		status:          "Seleccione una película y un horario",
	}

	m.movieList = newList("Seleccione una película")
	m.timeList = newList("Seleccione un horario")
	m.paymentList = newList("Método de Pago")

	m.movieList.SetItems(buildMovieItems(session.Catalog()))
	m.paymentList.SetItems(buildPaymentItems())

	if title := strings.TrimSpace(os.Getenv("TAQUILLA_MOVIE")); title != "" {
		if err := session.ChooseMovie(title); err == nil {
			if movie, ok := session.SelectedMovie(); ok {
				m.timeList.SetItems(buildTimeItems(movie))
				m.status = "Seleccione un horario"
				m.state = stateSelectTime
			}
		}
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update

	case errMsg:
		m.err = msg.err
		m.lastState = m.state
		m.state = stateError
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectTime:
		m.timeList, cmd = m.timeList.Update(msg)
	case stateSelectPayment:
		m.paymentList, cmd = m.paymentList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectTime:
		return header + "\n\n" + m.timeList.View()
	case stateSeatMap:
		return header + "\n\n" + m.renderSeatGrid()
	case stateSelectPayment:
		return header + "\n\n" + m.paymentList.View()
	case stateShowTicket:
		return header + "\n\n" + m.ticketText + "\n\n" + hint("Presione q para salir.")
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Taquilla de Cine")
	sub := []string{}
	if movie, ok := m.session.SelectedMovie(); ok {
		sub = append(sub, fmt.Sprintf("Película: %s", movie.Title))
		sub = append(sub, fmt.Sprintf("Precio: %s", m.session.PriceQuote()))
	}
	if t := m.session.SelectedTime(); t != "" {
		sub = append(sub, fmt.Sprintf("Horario: %s", t))
	}
	if count := m.session.SeatMap().SelectedCount(); count > 0 {
		sub = append(sub, fmt.Sprintf("Asientos: %d", count))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter • enter select"
	switch m.state {
	case stateSeatMap:
		hints = "ctrl+c quit • esc back • arrows move • space/enter toggle seat • n toggle numbers • p pay"
	case stateShowTicket:
		hints = "q quit"
	}

	statusLine := ""
	if m.status != "" {
		statusLine = "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Render(m.status)
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + statusLine + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		return m.goBack()
	case "n":
		if m.state == stateSeatMap {
			m.showSeatNumbers = !m.showSeatNumbers
			return m, nil, true
		}
	case "p":
		if m.state == stateSeatMap {
			return m.openPayment()
		}
	case "up", "k":
		if m.state == stateSeatMap {
			m.moveCursor(-1, 0)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSeatMap {
			m.moveCursor(1, 0)
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSeatMap {
			m.moveCursor(0, -1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSeatMap {
			m.moveCursor(0, 1)
			return m, nil, true
		}
	case " ":
		if m.state == stateSeatMap {
			return m.toggleSeatUnderCursor()
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			if err := m.session.ChooseMovie(item.movie.Title); err != nil {
				return m, errCmd(err), true
			}
			m.timeList.SetItems(buildTimeItems(item.movie))
			m.timeList.Select(0)
			m.status = "Seleccione un horario"
			m.state = stateSelectTime
			return m, nil, true
		case stateSelectTime:
			item, ok := m.timeList.SelectedItem().(timeItem)
			if !ok {
				return m, nil, true
			}
			if err := m.session.ChooseTime(item.label); err != nil {
				return m, errCmd(err), true
			}
			m.status = "Seleccione sus asientos y presione p para pagar"
			m.state = stateSeatMap
			return m, nil, true
		case stateSeatMap:
			return m.toggleSeatUnderCursor()
		case stateSelectPayment:
			item, ok := m.paymentList.SelectedItem().(paymentItem)
			if !ok {
				return m, nil, true
			}
			receipt, err := m.session.Checkout(item.method)
			if err != nil {
				return m, errCmd(err), true
			}
			m.ticketText = ticket.Format(receipt)
			m.status = fmt.Sprintf("Pago realizado con éxito usando %s", item.method)
			m.state = stateShowTicket
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) goBack() (appModel, tea.Cmd, bool) {
	switch m.state {
	case stateSelectTime:
		m.state = stateSelectMovie
		m.status = "Seleccione una película y un horario"
	case stateSeatMap:
		m.state = stateSelectTime
	case stateSelectPayment:
		m.state = stateSeatMap
	case stateError:
		m.state = m.lastState
	default:
		return m, nil, true
	}
	return m, nil, true
}

func (m appModel) openPayment() (appModel, tea.Cmd, bool) {
	if !m.session.IsCheckoutEligible() {
		return m, errCmd(booking.ErrNotEligible), true
	}
	m.status = "Seleccione el método de pago"
	m.state = stateSelectPayment
	return m, nil, true
}

func (m *appModel) moveCursor(dRow, dCol int) {
	seats := m.session.SeatMap()
	row := m.cursorRow + dRow
	col := m.cursorCol + dCol
	if row < 0 || row >= seats.Rows() || col < 0 || col >= seats.Cols() {
		return
	}
	m.cursorRow = row
	m.cursorCol = col
}

func (m appModel) toggleSeatUnderCursor() (appModel, tea.Cmd, bool) {
	seats := m.session.SeatMap()
	if err := seats.Toggle(m.cursorRow, m.cursorCol); err != nil {
		return m, errCmd(err), true
	}
	ref := seats.Ref(m.cursorRow, m.cursorCol)
	if selected, _ := seats.IsSelected(m.cursorRow, m.cursorCol); selected {
		m.status = fmt.Sprintf("%s seleccionado", ref.Label)
	} else {
		m.status = fmt.Sprintf("%s liberado", ref.Label)
	}
	return m, nil, true
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectTime:
		return &m.timeList
	case stateSelectPayment:
		return &m.paymentList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.timeList.SetSize(m.width, h)
	m.paymentList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

type movieItem struct {
	movie model.Movie
}

func (i movieItem) Title() string {
	return i.movie.Title
}

func (i movieItem) Description() string {
	parts := []string{
		booking.FormatPrice(i.movie.Price),
		fmt.Sprintf("%d funciones", len(i.movie.Times)),
	}
	if i.movie.Artwork != "" {
		parts = append(parts, i.movie.Artwork)
	}
	return strings.Join(parts, " • ")
}

func (i movieItem) FilterValue() string {
	return strings.ToLower(i.movie.Title)
}

type timeItem struct {
	label string
}

func (i timeItem) Title() string       { return i.label }
func (i timeItem) Description() string { return "" }
func (i timeItem) FilterValue() string { return strings.ToLower(i.label) }

type paymentItem struct {
	method string
}

func (i paymentItem) Title() string       { return i.method }
func (i paymentItem) Description() string { return "" }
func (i paymentItem) FilterValue() string { return strings.ToLower(i.method) }

func buildMovieItems(catalog model.Catalog) []list.Item {
	movies := catalog.List()
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func buildTimeItems(movie model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movie.Times))
	for _, label := range movie.Times {
		items = append(items, timeItem{label: label})
	}
	return items
}

func buildPaymentItems() []list.Item {
	items := make([]list.Item, 0, len(paymentMethods))
	for _, method := range paymentMethods {
		items = append(items, paymentItem{method: method})
	}
	return items
}
