package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/Zestathon/payorbit/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExporter struct {
	result *api.ExportResult
	err    error

	gotID     int64
	gotFormat string
}

func (f *fakeExporter) ExportEmployee(ctx context.Context, employeeID int64, format string) (*api.ExportResult, error) {
	f.gotID = employeeID
	f.gotFormat = format
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatPDF, f)

	f, err = ParseExportFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatExcel, f)

	_, err = ParseExportFormat("csv")
	assert.Error(t, err)
}

func TestExport_SavesWithServerFilename(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeExporter{result: &api.ExportResult{
		Data:               []byte("%PDF-1.4 fake"),
		ContentType:        "application/pdf",
		ContentDisposition: `attachment; filename="bob_payroll.pdf"`,
	}}
	svc := NewExportService(fake, dir, discardLogger())

	saved, err := svc.Export(context.Background(), 7, ExportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, int64(7), fake.gotID)
	assert.Equal(t, "pdf", fake.gotFormat)
	assert.Equal(t, "bob_payroll.pdf", saved.Filename)
	assert.Equal(t, "application/pdf", saved.ContentType)
	assert.Equal(t, len("%PDF-1.4 fake"), saved.Size)

	content, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(content))
}

func TestExport_DefaultFilenameAndContentType(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeExporter{result: &api.ExportResult{Data: []byte("bytes")}}
	svc := NewExportService(fake, dir, discardLogger())

	saved, err := svc.Export(context.Background(), 42, ExportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "employee_42_payroll.pdf", saved.Filename)
	assert.Equal(t, "application/pdf", saved.ContentType)
}

func TestExport_ExcelDefaults(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeExporter{result: &api.ExportResult{Data: []byte("bytes")}}
	svc := NewExportService(fake, dir, discardLogger())

	saved, err := svc.Export(context.Background(), 3, ExportFormatExcel)
	require.NoError(t, err)

	assert.Equal(t, "employee_3_payroll.xlsx", saved.Filename)
	assert.Equal(t, mimeXLSX, saved.ContentType)
}

func TestExport_FetchFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeExporter{err: errors.New("boom")}
	svc := NewExportService(fake, dir, discardLogger())

	_, err := svc.Export(context.Background(), 7, ExportFormatPDF)
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "a failed export must leave no artifact behind")
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
		want        string
	}{
		{"quoted", `attachment; filename="bob_payroll.pdf"`, "bob_payroll.pdf"},
		{"unquoted", `attachment; filename=bob_payroll.pdf`, "bob_payroll.pdf"},
		{"single quoted", `attachment; filename='bob_payroll.pdf'`, "bob_payroll.pdf"},
		{"path components stripped", `attachment; filename="../../etc/passwd"`, "passwd"},
		{"absent header", "", "employee_42_payroll.pdf"},
		{"no filename attribute", "attachment", "employee_42_payroll.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exportFilename(tt.disposition, 42, ExportFormatPDF)
			assert.Equal(t, tt.want, got)
		})
	}
}
