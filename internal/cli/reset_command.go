package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"flowtask/internal/api"
	"flowtask/internal/settings"
)

// ResetCommand wipes all tasks and restores default settings.
type ResetCommand struct {
	api          api.API
	settings     *settings.Store
	errorHandler *ErrorHandler
	force        bool
	input        io.Reader
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App, force bool) *ResetCommand {
	return &ResetCommand{
		api:          app.api,
		settings:     app.settings,
		errorHandler: NewErrorHandler(),
		force:        force,
		input:        os.Stdin,
	}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	if !c.force && !c.confirm() {
		fmt.Println("Cancelled")
		return nil
	}

	if err := c.api.ResetAll(ctx); err != nil {
		return c.errorHandler.Handle("reset tasks", err)
	}
	if _, err := c.settings.Reset(); err != nil {
		return c.errorHandler.Handle("reset settings", err)
	}

	fmt.Println("All tasks deleted and settings restored to defaults")
	return nil
}

func (c *ResetCommand) confirm() bool {
	fmt.Print("Delete ALL tasks and reset settings? This cannot be undone. [y/N] ")
	reader := bufio.NewReader(c.input)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
