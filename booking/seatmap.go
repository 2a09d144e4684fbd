package booking

import "fmt"

const (
	// DefaultRows and DefaultCols match the reference hall layout.
	DefaultRows = 5
	DefaultCols = 5
)

// SeatRef identifies one seat in the grid. Label carries the display name
// of the seat ("Asiento N", numbered row-major from 1) so receipts do not
// need the grid dimensions to print it.
type SeatRef struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Label string `json:"label"`
}

// SeatMap is a fixed-size grid of selectable seats. Seats carry no sold or
// blocked state; any in-bounds seat can be toggled at any time.
type SeatMap struct {
	rows     int
	cols     int
	selected []bool
}

// NewSeatMap creates a grid with all seats unselected. Dimensions smaller
// than 1 fall back to the defaults.
func NewSeatMap(rows, cols int) *SeatMap {
	if rows < 1 {
		rows = DefaultRows
	}
	if cols < 1 {
		cols = DefaultCols
	}
	return &SeatMap{
		rows:     rows,
		cols:     cols,
		selected: make([]bool, rows*cols),
	}
}

// Rows returns the number of seat rows.
func (m *SeatMap) Rows() int { return m.rows }

// Cols returns the number of seat columns.
func (m *SeatMap) Cols() int { return m.cols }

// Toggle flips the selection state of the seat at (row, col).
func (m *SeatMap) Toggle(row, col int) error {
	if err := m.check(row, col); err != nil {
		return err
	}
	i := row*m.cols + col
	m.selected[i] = !m.selected[i]
	return nil
}

// IsSelected reports the selection state of the seat at (row, col).
func (m *SeatMap) IsSelected(row, col int) (bool, error) {
	if err := m.check(row, col); err != nil {
		return false, err
	}
	return m.selected[row*m.cols+col], nil
}

// Reset clears every seat back to unselected. Nothing triggers it on movie
// or time changes; it belongs to a full session reset only.
func (m *SeatMap) Reset() {
	for i := range m.selected {
		m.selected[i] = false
	}
}

// Selected returns the currently selected seats in row-major order.
func (m *SeatMap) Selected() []SeatRef {
	var refs []SeatRef
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.selected[row*m.cols+col] {
				refs = append(refs, m.Ref(row, col))
			}
		}
	}
	return refs
}

// SelectedCount returns how many seats are selected.
func (m *SeatMap) SelectedCount() int {
	count := 0
	for _, s := range m.selected {
		if s {
			count++
		}
	}
	return count
}

// Ref builds the SeatRef for (row, col). Bounds are not checked; callers
// hold coordinates that already passed Toggle or iterate the grid.
func (m *SeatMap) Ref(row, col int) SeatRef {
	return SeatRef{
		Row:   row,
		Col:   col,
		Label: fmt.Sprintf("Asiento %d", row*m.cols+col+1),
	}
}

func (m *SeatMap) check(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return &OutOfBoundsError{Row: row, Col: col, Rows: m.rows, Cols: m.cols}
	}
	return nil
}
