package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Zestathon/payorbit/internal/client/models"
	"github.com/Zestathon/payorbit/internal/client/transport"
)

// uploadFieldName is the multipart field the server expects the file under.
const uploadFieldName = "file"

type uploadResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Data     models.UploadRecord `json:"data"`
	Warnings []string            `json:"warnings"`
}

// Upload submits a payroll file as a multipart body. The multipart writer
// owns boundary generation; the request interceptor leaves its content type
// untouched.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (*models.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return nil, fmt.Errorf("creating multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("buffering upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := c.t.NewRequest(ctx, http.MethodPost, "/uploads/", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}

	resp, err := c.t.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, transport.NewServerError(resp.StatusCode, raw)
	}

	var ur uploadResponse
	if err := decodeJSON(raw, &ur); err != nil {
		return nil, err
	}

	return &models.UploadResult{
		Record:   ur.Data,
		Message:  ur.Message,
		Warnings: ur.Warnings,
	}, nil
}

func listQuery(page, pageSize int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q.Encode()
}

// ListUploads retrieves one page of upload records.
func (c *Client) ListUploads(ctx context.Context, page, pageSize int) (*models.Page[models.UploadRecord], error) {
	raw, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/uploads/?%s", listQuery(page, pageSize)), nil)
	if err != nil {
		return nil, err
	}
	return decodePage[models.UploadRecord](raw, page, pageSize)
}

type recordEnvelope struct {
	Success bool                `json:"success"`
	Data    models.UploadRecord `json:"data"`
}

// GetUpload retrieves a single upload record by id.
func (c *Client) GetUpload(ctx context.Context, id int64) (*models.UploadRecord, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/uploads/%d/", id), nil)
	if err != nil {
		return nil, err
	}

	var env recordEnvelope
	if err := decodeJSON(raw, &env); err != nil {
		return nil, err
	}
	if env.Success || env.Data.ID != 0 {
		return &env.Data, nil
	}

	var rec models.UploadRecord
	if err := decodeJSON(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListEmployees retrieves one page of employee records for an upload.
func (c *Client) ListEmployees(ctx context.Context, uploadID int64, page, pageSize int) (*models.Page[models.EmployeeRecord], error) {
	path := fmt.Sprintf("/uploads/%d/employees/?%s", uploadID, listQuery(page, pageSize))
	raw, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodePage[models.EmployeeRecord](raw, page, pageSize)
}

// ExportResult is the raw binary artifact for one employee record plus the
// headers the export workflow derives the save name and type from.
type ExportResult struct {
	Data               []byte
	ContentType        string
	ContentDisposition string
}

// ExportEmployee requests a binary report for a single employee record in
// the given format ("excel" or "pdf").
func (c *Client) ExportEmployee(ctx context.Context, employeeID int64, format string) (*ExportResult, error) {
	payload := map[string]string{"report_type": format}
	b, err := encodeJSON(payload)
	if err != nil {
		return nil, err
	}

	req, err := c.t.NewRequest(ctx, http.MethodPost, fmt.Sprintf("/employees/%d/export/", employeeID), bytes.NewReader(b), "application/json")
	if err != nil {
		return nil, err
	}

	resp, err := c.t.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading export response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, transport.NewServerError(resp.StatusCode, raw)
	}

	return &ExportResult{
		Data:               raw,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

type statsResponse struct {
	Uploads struct {
		Total int `json:"total"`
	} `json:"uploads"`
	Employees struct {
		Total int `json:"total"`
	} `json:"employees"`
	Disbursement struct {
		Total float64 `json:"total"`
	} `json:"disbursement"`
}

// DashboardStats retrieves the aggregate totals shown on the dashboard.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	raw, err := c.doJSON(ctx, http.MethodGet, "/dashboard/stats/", nil)
	if err != nil {
		return nil, err
	}

	var sr statsResponse
	if err := decodeJSON(raw, &sr); err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalUploads:      sr.Uploads.Total,
		TotalEmployees:    sr.Employees.Total,
		TotalDisbursement: sr.Disbursement.Total,
	}, nil
}
