package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yllada/region-switcher/common"
)

// Run starts the interactive interface and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// The console writer would draw over the alternate screen.
	common.GetLogger().SetConsole(nil)

	program := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			common.LogInfo("Interface stopped: %v", ctx.Err())
			return nil
		}
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
