package services

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Zestathon/payorbit/internal/client/api"
	"github.com/Zestathon/payorbit/internal/filex"
	"github.com/Zestathon/payorbit/internal/logging"
)

// ExportFormat is the report format negotiated per record.
type ExportFormat string

const (
	ExportFormatExcel ExportFormat = "excel"
	ExportFormatPDF   ExportFormat = "pdf"
)

// ParseExportFormat validates a user-supplied format name.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(s)) {
	case ExportFormatExcel:
		return ExportFormatExcel, nil
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want excel or pdf)", s)
	}
}

func (f ExportFormat) extension() string {
	if f == ExportFormatPDF {
		return "pdf"
	}
	return "xlsx"
}

// defaultContentType is the format-appropriate fallback when the server
// omits the Content-Type header.
func (f ExportFormat) defaultContentType() string {
	if f == ExportFormatPDF {
		return "application/pdf"
	}
	return mimeXLSX
}

// Exporter is the slice of the API client the export workflow uses.
type Exporter interface {
	ExportEmployee(ctx context.Context, employeeID int64, format string) (*api.ExportResult, error)
}

// SavedExport describes the artifact after a completed save.
type SavedExport struct {
	Path        string
	Filename    string
	ContentType string
	Size        int
}

// ExportService requests a binary report for one employee record and saves
// it locally.
type ExportService struct {
	api Exporter
	dir string
	log logging.Logger
}

// NewExportService saves artifacts under dir (created on first use).
func NewExportService(api Exporter, dir string, log logging.Logger) *ExportService {
	return &ExportService{api: api, dir: dir, log: log}
}

// Export fetches the artifact and writes it to the export directory. The
// save goes through a temporary file that is removed on every failure path,
// so a failed export leaves nothing behind.
func (s *ExportService) Export(ctx context.Context, employeeID int64, format ExportFormat) (*SavedExport, error) {
	res, err := s.api.ExportEmployee(ctx, employeeID, string(format))
	if err != nil {
		return nil, err
	}

	filename := exportFilename(res.ContentDisposition, employeeID, format)

	contentType := res.ContentType
	if contentType == "" {
		contentType = format.defaultContentType()
	}

	dir, err := filex.EnsureSubDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("preparing export dir: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := writeViaTemp(dir, path, res.Data); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "export saved", "path", path, "content_type", contentType, "bytes", len(res.Data))
	return &SavedExport{
		Path:        path,
		Filename:    filename,
		ContentType: contentType,
		Size:        len(res.Data),
	}, nil
}

// filenameAttr matches a quoted or unquoted filename= attribute.
var filenameAttr = regexp.MustCompile(`filename[^;=\n]*=(?:"([^"]*)"|'([^']*)'|([^;\n]*))`)

// exportFilename derives the save name from the Content-Disposition header
// when present, otherwise synthesizes the deterministic default
// employee_<id>_payroll.<ext>.
func exportFilename(disposition string, employeeID int64, format ExportFormat) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			// Single quotes are valid token characters, so a
			// single-quoted filename survives parsing with its quotes on.
			if fn := strings.Trim(params["filename"], "'"); fn != "" {
				return filepath.Base(fn)
			}
		}
		// Headers in the wild are not always well-formed; fall back to a
		// lenient attribute scan.
		if m := filenameAttr.FindStringSubmatch(disposition); m != nil {
			for _, g := range m[1:] {
				if g = strings.TrimSpace(g); g != "" {
					return filepath.Base(g)
				}
			}
		}
	}
	return fmt.Sprintf("employee_%d_payroll.%s", employeeID, format.extension())
}

func writeViaTemp(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing artifact: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving artifact: %w", err)
	}
	return nil
}
