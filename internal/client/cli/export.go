package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Zestathon/payorbit/internal/client/services"
)

// Export downloads a single employee's payroll report.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println("Usage: export <employeeID> [excel|pdf]")
		return nil
	}

	employeeID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid employee id %q", args[0])
	}

	format := services.ExportFormatExcel
	if len(args) > 1 {
		if format, err = services.ParseExportFormat(args[1]); err != nil {
			return err
		}
	}

	saved, err := a.exports.Export(ctx, employeeID, format)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s (%d bytes) to %s\n", saved.Filename, saved.Size, saved.Path)
	return nil
}
