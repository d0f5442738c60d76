package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
)

const defaultPageSize = 10

// parsePageArgs reads optional [page [size]] arguments.
func parsePageArgs(args []string) (page, size int, err error) {
	page, size = 1, defaultPageSize
	if len(args) > 0 {
		if page, err = strconv.Atoi(args[0]); err != nil || page < 1 {
			return 0, 0, fmt.Errorf("invalid page %q", args[0])
		}
	}
	if len(args) > 1 {
		if size, err = strconv.Atoi(args[1]); err != nil || size < 1 {
			return 0, 0, fmt.Errorf("invalid page size %q", args[1])
		}
	}
	return page, size, nil
}

// ListUploads prints one page of uploaded payroll files.
func (a *App) ListUploads(ctx context.Context, args []string) error {
	page, size, err := parsePageArgs(args)
	if err != nil {
		return err
	}

	p, err := a.payroll.Uploads(ctx, page, size)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tDATE\tEMPLOYEES\tAMOUNT\tSTATUS")
	for _, u := range p.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\n",
			u.ID, u.Filename, u.UploadDate, u.TotalEmployees, u.TotalAmountProcessed, u.Status)
	}
	w.Flush()

	fmt.Printf("Page %d of %d records (page size %d)\n", p.CurrentPage, p.TotalCount, p.PageSize)
	return nil
}

// ListEmployees prints one page of employees for an upload.
func (a *App) ListEmployees(ctx context.Context, args []string) error {
	if len(args) < 1 {
		fmt.Println("Usage: employees <uploadID> [page [size]]")
		return nil
	}

	uploadID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid upload id %q", args[0])
	}

	page, size, err := parsePageArgs(args[1:])
	if err != nil {
		return err
	}

	p, err := a.payroll.Employees(ctx, uploadID, page, size)
	if err != nil {
		return err
	}

	if len(p.Items) == 0 {
		fmt.Println("No employee data found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMP ID\tNAME\tDEPARTMENT\tDESIGNATION\tGROSS\tNET\tTAKE-HOME")
	for _, e := range p.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
			e.ID, e.EmployeeID, e.Name, e.Department, e.Designation,
			e.Salary.Gross, e.Salary.NetSalary, e.Salary.TakeHomePay)
	}
	w.Flush()

	fmt.Printf("Page %d of %d records (page size %d)\n", p.CurrentPage, p.TotalCount, p.PageSize)
	return nil
}

// Stats prints the dashboard totals.
func (a *App) Stats(ctx context.Context) error {
	s, err := a.payroll.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total uploads: %d\n", s.TotalUploads)
	fmt.Printf("Total employees: %d\n", s.TotalEmployees)
	fmt.Printf("Total amount processed: %.2f\n", s.TotalDisbursement)
	return nil
}
