package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/finance/financial_reports/dto"
	"koperasi_backend/internals/features/finance/financial_reports/model"
	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
)

// memReportRepo meniru tabel financial_reports dengan unique(month).
type memReportRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.FinancialReportModel
	err  error
}

func newMemRepo() *memReportRepo {
	return &memReportRepo{rows: map[uuid.UUID]model.FinancialReportModel{}}
}

func (r *memReportRepo) List(context.Context) ([]model.FinancialReportModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.FinancialReportModel, 0, len(r.rows))
	for _, m := range r.rows {
		out = append(out, m)
	}
	return out, nil
}

func (r *memReportRepo) GetByID(_ context.Context, id uuid.UUID) (*model.FinancialReportModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (r *memReportRepo) ReplaceForMonth(_ context.Context, m *model.FinancialReportModel) (*model.FinancialReportModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var prev *model.FinancialReportModel
	for id, existing := range r.rows {
		if existing.Month == m.Month {
			cp := existing
			prev = &cp
			delete(r.rows, id)
		}
	}
	m.ID = uuid.New()
	r.rows[m.ID] = *m
	return prev, nil
}

func (r *memReportRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memReportRepo) countMonth(month string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.rows {
		if m.Month == month {
			n++
		}
	}
	return n
}

type fakeBlob struct {
	storage.MockBlobService
	seq int
}

func newFakeBlob() *fakeBlob {
	fb := &fakeBlob{}
	fb.UploadFileFn = func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
		fb.seq++
		return fmt.Sprintf("https://blob.test/koperasi/%s/%d_%s", dir, fb.seq, fh.Filename), "application/pdf", nil
	}
	return fb
}

func newApp(repo *memReportRepo, blob storage.BlobService) *fiber.App {
	ctrl := NewFinancialReportController(repo, blob, &events.Recorder{})
	ctrl.Now = func() time.Time { return time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC) }
	app := fiber.New()
	app.Get("/api/financial", ctrl.GetReports)
	app.Get("/api/financial/:id", ctrl.GetReportByID)
	app.Post("/api/financial", ctrl.UploadReport)
	app.Delete("/api/financial/:id", ctrl.DeleteReport)
	return app
}

func upload(t *testing.T, app *fiber.App, month, filename string, content []byte) (int, dto.FinancialReportResponse) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if month != "" {
		_ = w.WriteField("month", month)
	}
	_ = w.WriteField("uploadedBy", "Bendahara")
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, _ = fw.Write(content)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/financial", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env struct {
		Data dto.FinancialReportResponse `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env.Data
}

func TestFileTypeFromName(t *testing.T) {
	assert.Equal(t, "pdf", dto.FileTypeFromName("Laporan Maret.PDF"))
	assert.Equal(t, "excel", dto.FileTypeFromName("neraca.xlsx"))
	assert.Equal(t, "excel", dto.FileTypeFromName("neraca.xls"))
	assert.Equal(t, "excel", dto.FileTypeFromName("kas.csv"))
	assert.Equal(t, "", dto.FileTypeFromName("foto.jpg"))
	assert.Equal(t, "", dto.FileTypeFromName("tanpa-ekstensi"))
}

func TestUploadReport_ReplacesSameMonth(t *testing.T) {
	repo := newMemRepo()
	blob := newFakeBlob()
	app := newApp(repo, blob)

	status, first := upload(t, app, "2024-03", "maret.pdf", []byte("%PDF-1.4"))
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "pdf", first.FileType)
	require.NotNil(t, first.UploadedBy)
	assert.Equal(t, "Bendahara", *first.UploadedBy)

	status, second := upload(t, app, "2024-03", "maret-revisi.xlsx", []byte("PK"))
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "excel", second.FileType)

	assert.Equal(t, 1, repo.countMonth("2024-03"))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []string{first.BlobURL}, blob.Deleted)

	_, _ = upload(t, app, "2024-04", "april.pdf", []byte("%PDF"))
	assert.Equal(t, 1, repo.countMonth("2024-04"))
	assert.Equal(t, 1, repo.countMonth("2024-03"))
}

func TestUploadReport_Rejections(t *testing.T) {
	app := newApp(newMemRepo(), newFakeBlob())

	status, _ := upload(t, app, "2024-3", "a.pdf", []byte("x"))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = upload(t, app, "2024-00", "a.pdf", []byte("x"))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = upload(t, app, "2024-05", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = upload(t, app, "2024-05", "gambar.png", []byte("x"))
	assert.Equal(t, fiber.StatusUnsupportedMediaType, status)

	orig := storage.MaxFileSize
	storage.MaxFileSize = 4
	defer func() { storage.MaxFileSize = orig }()
	status, _ = upload(t, app, "2024-05", "besar.pdf", []byte("%PDF-1.7 too big"))
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, status)
}

func TestUploadReport_NoStorage(t *testing.T) {
	status, _ := upload(t, newApp(newMemRepo(), nil), "2024-05", "a.pdf", []byte("%PDF"))
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestUploadReport_DBErrorCleansBlob(t *testing.T) {
	repo := newMemRepo()
	repo.err = fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)
	blob := newFakeBlob()

	status, _ := upload(t, newApp(repo, blob), "2024-05", "a.pdf", []byte("%PDF"))
	assert.Equal(t, fiber.StatusConflict, status)
	require.Len(t, blob.Deleted, 1)
}

func TestDeleteReport(t *testing.T) {
	repo := newMemRepo()
	blob := newFakeBlob()
	blob.DeleteByPublicURLFn = func(ctx context.Context, url string) error {
		return fmt.Errorf("storage down")
	}
	app := newApp(repo, blob)

	_, created := upload(t, app, "2024-06", "juni.pdf", []byte("%PDF"))

	req := httptest.NewRequest("DELETE", "/api/financial/"+created.ID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	// gagal hapus blob tidak menggagalkan hapus baris
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, repo.countMonth("2024-06"))

	req = httptest.NewRequest("DELETE", "/api/financial/"+created.ID.String(), nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
