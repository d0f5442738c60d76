// Package services contains the client-side workflows built on top of the
// API client: payroll file upload, paginated listing retrieval, and
// per-record export.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/Zestathon/payorbit/internal/client/models"
	"github.com/Zestathon/payorbit/internal/logging"
)

// UploadState is the upload workflow's current position in its state
// machine: Idle -> Validating -> Uploading -> {Succeeded, Failed}, back to
// Idle once the terminal state is acknowledged.
type UploadState string

const (
	UploadStateIdle       UploadState = "idle"
	UploadStateValidating UploadState = "validating"
	UploadStateUploading  UploadState = "uploading"
	UploadStateSucceeded  UploadState = "succeeded"
	UploadStateFailed     UploadState = "failed"
)

// The two spreadsheet MIME types the server processes.
const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"
)

// maxUploadSize is the fixed client-side ceiling; files at or above it are
// rejected before any network call.
const maxUploadSize = 10 * 1024 * 1024

const (
	msgNotExcel = "You can only upload Excel files (.xlsx, .xls)!"
	msgTooLarge = "File must be smaller than 10MB"
)

// ErrNotAuthenticated is returned when an upload is attempted without a
// session token. The workflow fails fast instead of letting the request go
// out unauthenticated.
var ErrNotAuthenticated = errors.New("no authentication token found, please login first")

// ValidationError is a client-side pre-flight rejection; it never reaches
// the network layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UploadFile describes a file selected for upload. DeclaredType is the MIME
// type as declared by the picker, not sniffed content.
type UploadFile struct {
	Name         string
	DeclaredType string
	Size         int64
	Reader       io.Reader
}

// OpenUploadFile prepares a local file for upload, deriving the declared
// MIME type from the extension. The returned closer must be called once the
// upload finishes.
func OpenUploadFile(path string) (*UploadFile, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	uf := &UploadFile{
		Name:         filepath.Base(path),
		DeclaredType: declaredType(path),
		Size:         info.Size(),
		Reader:       f,
	}
	return uf, f.Close, nil
}

func declaredType(path string) string {
	switch ext := filepath.Ext(path); ext {
	case ".xlsx":
		return mimeXLSX
	case ".xls":
		return mimeXLS
	default:
		return mime.TypeByExtension(ext)
	}
}

// Uploader is the slice of the API client the upload workflow uses.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error)
	IsAuthenticated() bool
}

// UploadService drives the upload workflow.
type UploadService struct {
	api Uploader
	log logging.Logger

	mu    sync.Mutex
	state UploadState
}

func NewUploadService(api Uploader, log logging.Logger) *UploadService {
	return &UploadService{api: api, log: log, state: UploadStateIdle}
}

// State returns the workflow's current state.
func (s *UploadService) State() UploadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UploadService) setState(st UploadState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Acknowledge returns the workflow to Idle after a terminal state has been
// presented to the user. A no-op in any other state.
func (s *UploadService) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == UploadStateSucceeded || s.state == UploadStateFailed {
		s.state = UploadStateIdle
	}
}

// Upload validates the file client-side and, when it passes, submits it.
// Validation rejections short-circuit before any network call. The server's
// failure shape is preserved: a structured validation list stays a list, a
// free-text message stays a message (both inside *transport.ServerError).
func (s *UploadService) Upload(ctx context.Context, file *UploadFile) (*models.UploadResult, error) {
	s.setState(UploadStateValidating)

	if err := validateUpload(file); err != nil {
		s.setState(UploadStateFailed)
		return nil, err
	}

	if !s.api.IsAuthenticated() {
		s.setState(UploadStateFailed)
		return nil, ErrNotAuthenticated
	}

	s.setState(UploadStateUploading)
	s.log.Info(ctx, "uploading payroll file", "filename", file.Name, "size", file.Size)

	res, err := s.api.Upload(ctx, file.Name, file.Reader)
	if err != nil {
		s.setState(UploadStateFailed)
		return nil, err
	}

	s.setState(UploadStateSucceeded)
	if len(res.Warnings) > 0 {
		s.log.Warn(ctx, "upload succeeded with warnings", "warnings", len(res.Warnings))
	}
	return res, nil
}

func validateUpload(file *UploadFile) error {
	if file.DeclaredType != mimeXLSX && file.DeclaredType != mimeXLS {
		return &ValidationError{Message: msgNotExcel}
	}
	if file.Size >= maxUploadSize {
		return &ValidationError{Message: msgTooLarge}
	}
	return nil
}
