package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"taquilla-cli/booking"
	"taquilla-cli/ticket"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a ticket without the full interface",
	Long:  `Book a ticket from flags, prompting for whatever is missing.`,
	RunE:  runBook,
}

func init() {
	bookCmd.Flags().String("movie", "", "movie title as listed in the catalog")
	bookCmd.Flags().String("time", "", "showtime label, e.g. 13:00")
	bookCmd.Flags().String("payment", "", "payment method to record")
	bookCmd.Flags().StringArray("seat", nil, "seat to select as row,col (zero-based), repeatable")
}

func runBook(cmd *cobra.Command, args []string) error {
	session := booking.NewSession(loadCatalog(), booking.NewSeatMap(booking.DefaultRows, booking.DefaultCols))

	title, _ := cmd.Flags().GetString("movie")
	if title == "" {
		picked, err := promptSelect("Película", session.Catalog().Titles())
		if err != nil {
			return err
		}
		title = picked
	}
	if err := session.ChooseMovie(title); err != nil {
		return err
	}

	movie, _ := session.SelectedMovie()
	label, _ := cmd.Flags().GetString("time")
	if label == "" {
		picked, err := promptSelect("Horario", movie.Times)
		if err != nil {
			return err
		}
		label = picked
	}
	if err := session.ChooseTime(label); err != nil {
		return err
	}

	seatFlags, _ := cmd.Flags().GetStringArray("seat")
	for _, raw := range seatFlags {
		row, col, err := parseSeat(raw)
		if err != nil {
			return err
		}
		if err := session.SeatMap().Toggle(row, col); err != nil {
			return err
		}
	}

	payment, _ := cmd.Flags().GetString("payment")
	if payment == "" {
		entered, err := promptPayment()
		if err != nil {
			return err
		}
		payment = entered
	}

	receipt, err := session.Checkout(payment)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ticket.Format(receipt))
	return nil
}

func promptSelect(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}
	_, value, err := prompt.Run()
	return value, err
}

func promptPayment() (string, error) {
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return booking.ErrInvalidPaymentMethod
		}
		return nil
	}
	prompt := promptui.Prompt{
		Label:    "Método de Pago",
		Validate: validate,
	}
	return prompt.Run()
}

// parseSeat reads a "row,col" pair with zero-based coordinates.
func parseSeat(raw string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid seat %q: want row,col", raw)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid seat %q: %w", raw, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid seat %q: %w", raw, err)
	}
	return row, col, nil
}
