package services

import (
	"context"
	"sync"

	"github.com/Zestathon/payorbit/internal/client/models"
	"github.com/Zestathon/payorbit/internal/logging"
	"github.com/google/uuid"
)

// Lister is the slice of the API client the paginated fetcher uses.
type Lister interface {
	ListUploads(ctx context.Context, page, pageSize int) (*models.Page[models.UploadRecord], error)
	ListEmployees(ctx context.Context, uploadID int64, page, pageSize int) (*models.Page[models.EmployeeRecord], error)
	GetUpload(ctx context.Context, id int64) (*models.UploadRecord, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// PayrollService retrieves listings. Idempotent and side-effect-free: the
// same arguments may be fetched repeatedly and no shared state is mutated.
// The fetcher never discards anything itself: when a caller issues
// overlapping fetches for the same resource, last-request-wins is the
// caller's obligation; Sequencer makes the discard decision mechanical.
type PayrollService struct {
	api Lister
	log logging.Logger
}

func NewPayrollService(api Lister, log logging.Logger) *PayrollService {
	return &PayrollService{api: api, log: log}
}

// Uploads fetches one page of upload records.
func (s *PayrollService) Uploads(ctx context.Context, page, pageSize int) (*models.Page[models.UploadRecord], error) {
	return s.api.ListUploads(ctx, page, pageSize)
}

// Employees fetches one page of employee records belonging to an upload.
func (s *PayrollService) Employees(ctx context.Context, uploadID int64, page, pageSize int) (*models.Page[models.EmployeeRecord], error) {
	return s.api.ListEmployees(ctx, uploadID, page, pageSize)
}

// Upload fetches a single upload record.
func (s *PayrollService) Upload(ctx context.Context, id int64) (*models.UploadRecord, error) {
	return s.api.GetUpload(ctx, id)
}

// Stats fetches the dashboard totals.
func (s *PayrollService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.api.DashboardStats(ctx)
}

// Sequencer tracks the most recently issued fetch for one logical resource
// so a caller can drop results that were superseded while in flight.
//
//	id := seq.Issue()
//	page, err := payroll.Uploads(ctx, n, size)
//	if !seq.Current(id) {
//	    return // superseded while in flight, discard
//	}
type Sequencer struct {
	mu     sync.Mutex
	latest uuid.UUID
}

// Issue registers a new fetch and returns its id. Any previously issued id
// stops being current.
func (s *Sequencer) Issue() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = uuid.New()
	return s.latest
}

// Current reports whether id is still the most recently issued fetch.
func (s *Sequencer) Current(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest == id
}
