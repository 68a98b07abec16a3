package cli

import (
	"context"
	"fmt"
	"os"

	"flowtask/internal/api"
	"flowtask/internal/export"
)

// ExportCommand writes the whole task collection to a JSON file named by the
// current date.
type ExportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command. An optional argument overrides the output
// path; "-" writes to stdout.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	path := export.Filename(timeNow())
	if len(args) > 0 {
		path = args[0]
	}

	if path == "-" {
		_, err := c.api.ExportTasks(ctx, os.Stdout)
		if err != nil {
			return c.errorHandler.Handle("export tasks", err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	count, err := c.api.ExportTasks(ctx, file)
	if err != nil {
		return c.errorHandler.Handle("export tasks", err)
	}

	fmt.Printf("Exported %d task(s) to %s\n", count, path)
	return nil
}

// ImportCommand reads an exported collection and inserts the tasks whose ids
// are not already present.
type ImportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	count, err := c.api.ImportTasks(ctx, file)
	if err != nil {
		return c.errorHandler.Handle("import tasks", err)
	}

	fmt.Printf("Imported %d task(s) from %s\n", count, args[0])
	return nil
}
