package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zestathon/payorbit/internal/client/services"
	"github.com/Zestathon/payorbit/internal/client/transport"
)

// Upload validates and submits a payroll spreadsheet. Validation failures
// and server-side row errors are printed; warnings do not change a
// successful outcome.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: upload <file.xlsx>")
		return nil
	}

	file, closeFile, err := services.OpenUploadFile(args[0])
	if err != nil {
		return err
	}
	defer closeFile()

	res, err := a.uploads.Upload(ctx, file)
	defer a.uploads.Acknowledge()
	if err != nil {
		var srvErr *transport.ServerError
		if errors.As(err, &srvErr) && len(srvErr.Errors) > 0 {
			fmt.Println("Upload failed:", srvErr.Message)
			for _, e := range srvErr.Errors {
				fmt.Println("  -", e)
			}
			return nil
		}
		return err
	}

	msg := res.Message
	if msg == "" {
		msg = fmt.Sprintf("File processed successfully. %d employees loaded.", res.Record.TotalEmployees)
	}
	fmt.Println(msg)
	fmt.Printf("Upload #%d: %s, %d employees, %.2f processed, status %s\n",
		res.Record.ID, res.Record.Filename, res.Record.TotalEmployees,
		res.Record.TotalAmountProcessed, res.Record.Status)

	for _, w := range res.Warnings {
		fmt.Println("Warning:", w)
	}
	return nil
}
