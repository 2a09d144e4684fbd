// Package cmd wires the command surface: the root command runs the
// interactive box office, book runs the quick flow.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taquilla-cli/booking"
	"taquilla-cli/model"
	"taquilla-cli/store"
	"taquilla-cli/tui"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "taquilla",
	Short: "Cinema box-office TUI",
	Long:  `Pick a movie, a showtime, your seats and a payment method, all from the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := booking.NewSession(loadCatalog(), booking.NewSeatMap(booking.DefaultRows, booking.DefaultCols))
		_, err := tea.NewProgram(tui.New(session), tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		out := fmt.Sprintf("taquilla-cli %s", version)
		if commit != "none" && commit != "" {
			out = fmt.Sprintf("%s (%s)", out, commit)
		}
		fmt.Println(out)
	},
}

func Execute() {
	rootCmd.AddCommand(versionCmd, bookCmd)
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCatalog prefers the user's catalog file and falls back to the
// built-in program. A broken override is reported but never fatal.
func loadCatalog() model.Catalog {
	movies, ok, err := store.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring catalog file: %v\n", err)
		return model.DefaultCatalog()
	}
	if !ok {
		return model.DefaultCatalog()
	}
	return model.NewCatalog(movies)
}
