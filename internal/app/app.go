package app

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kyaoi/mdstyle/internal/logger"
	"github.com/kyaoi/mdstyle/internal/ui"
)

// ErrNotTerminal is returned when stdout cannot host the interactive program.
var ErrNotTerminal = errors.New("mdstyle needs an interactive terminal")

// Options configures a run of the styler.
type Options struct {
	Target      string
	CatalogPath string
	Logger      *logger.Logger
}

// Run executes the Bubble Tea program for the article styler.
func Run(opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	state, err := LoadInitialState(opts.Target, opts.CatalogPath, opts.Logger)
	if err != nil {
		return err
	}
	return runProgram(state)
}

func runProgram(state ui.State) error {
	model := ui.NewModel(state)
	defer func() {
		if err := model.Close(); err != nil {
			state.Logger.Error(err, "close model")
		}
	}()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
