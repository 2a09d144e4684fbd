// Package ticket renders a checkout receipt as the confirmation text shown
// to the user.
package ticket

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"taquilla-cli/booking"
)

// Format renders the receipt as a stable text block: movie, showtime,
// price and payment method, in that order, with the selected seats (if
// any) after them. Pure function of the receipt.
func Format(r booking.Receipt) string {
	t := table.NewWriter()
	t.SetTitle("Taquilla de Cine")
	t.AppendRow(table.Row{"Película", r.MovieTitle})
	t.AppendRow(table.Row{"Horario", r.Time})
	t.AppendRow(table.Row{"Precio", booking.FormatPrice(r.Price)})
	t.AppendRow(table.Row{"Método de Pago", r.PaymentMethod})
	if len(r.Seats) > 0 {
		t.AppendSeparator()
		t.AppendRow(table.Row{"Asientos", seatLine(r.Seats)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
	})
	return t.Render()
}

func seatLine(seats []booking.SeatRef) string {
	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.Label)
	}
	return strings.Join(labels, ", ")
}
