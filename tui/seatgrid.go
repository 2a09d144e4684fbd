package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSeatGrid draws the hall: one cell per seat, the cursor highlighted,
// selected seats in green, and the screen bar below the back rows.
func (m appModel) renderSeatGrid() string {
	seats := m.session.SeatMap()
	rows := seats.Rows()
	cols := seats.Cols()

	cellWidth := 2
	if m.showSeatNumbers {
		cellWidth = len(fmt.Sprintf("%d", rows*cols))
		if cellWidth < 2 {
			cellWidth = 2
		}
	}

	styleFree := lipgloss.NewStyle().Faint(true)
	styleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleCursor := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63"))

	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.WriteString(fmt.Sprintf("%2d ", row+1))
		for col := 0; col < cols; col++ {
			selected, _ := seats.IsSelected(row, col)

			text := "[]"
			if m.showSeatNumbers {
				text = fmt.Sprintf("%d", row*cols+col+1)
			} else if selected {
				text = "XX"
			}
			rendered := padCell(text, cellWidth)

			switch {
			case row == m.cursorRow && col == m.cursorCol:
				rendered = styleCursor.Render(rendered)
			case selected:
				rendered = styleSelected.Render(rendered)
			default:
				rendered = styleFree.Render(rendered)
			}
			b.WriteString(rendered)
			if col < cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	gridWidth := cols*(cellWidth+1) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	bar := screenBarBlock(gridWidth, "PANTALLA")
	margin := strings.Repeat(" ", 3)

	b.WriteString("\n")
	b.WriteString(margin + screenBorderStyle.Render(bar.top) + "\n")
	b.WriteString(margin + screenStyle.Render(bar.mid) + "\n")
	b.WriteString(margin + screenBorderStyle.Render(bar.bot) + "\n\n")

	legend := "Legend: verde seleccionado • resaltado cursor"
	if !m.showSeatNumbers {
		legend = "Legend: [] libre • XX seleccionado • resaltado cursor"
	}
	counts := fmt.Sprintf("Seleccionados: %d de %d", seats.SelectedCount(), rows*cols)
	return b.String() + hint(legend) + "\n" + hint(counts)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
