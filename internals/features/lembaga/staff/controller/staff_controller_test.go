package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/staff/model"
	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
)

type mockStaffRepo struct {
	mock.Mock
}

func (m *mockStaffRepo) List(ctx context.Context, category string) ([]model.StaffModel, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]model.StaffModel), args.Error(1)
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.StaffModel, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.StaffModel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStaffRepo) Create(ctx context.Context, s *model.StaffModel) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStaffRepo) Update(ctx context.Context, s *model.StaffModel) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newApp(repo *mockStaffRepo, blob storage.BlobService) *fiber.App {
	ctrl := NewStaffController(repo, blob, &events.Recorder{})
	app := fiber.New()
	app.Get("/api/staff", ctrl.GetStaff)
	app.Post("/api/staff", ctrl.CreateStaff)
	app.Put("/api/staff", ctrl.UpdateStaff)
	app.Put("/api/staff/:id", ctrl.UpdateStaff)
	app.Delete("/api/staff", ctrl.DeleteStaff)
	app.Delete("/api/staff/:id", ctrl.DeleteStaff)
	return app
}

func sendJSON(t *testing.T, app *fiber.App, method, url string, body any) (int, map[string]any) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, url, rdr)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func strPtr(s string) *string { return &s }

func TestGetStaff_CategoryFilter(t *testing.T) {
	repo := new(mockStaffRepo)
	repo.On("List", mock.Anything, "dewan_pengawas").Return([]model.StaffModel{
		{ID: uuid.New(), Name: "Bu Sari", Position: "Ketua Pengawas", Category: "dewan_pengawas"},
	}, nil)
	repo.On("List", mock.Anything, "").Return([]model.StaffModel{}, nil)
	app := newApp(repo, nil)

	status, body := sendJSON(t, app, "GET", "/api/staff?category=Dewan_Pengawas", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = sendJSON(t, app, "GET", "/api/staff", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{}, body["data"])

	status, _ = sendJSON(t, app, "GET", "/api/staff?category=bendahara", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateStaff_JSON(t *testing.T) {
	repo := new(mockStaffRepo)
	newID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.StaffModel) bool {
		return s.Name == "Pak Budi" && s.Category == "pengurus" && s.ImageURL == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.StaffModel).ID = newID
	}).Return(nil)

	status, body := sendJSON(t, newApp(repo, nil), "POST", "/api/staff", map[string]any{
		"name": "Pak Budi", "position": "Ketua", "category": "pengurus",
	})
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, newID.String(), body["data"].(map[string]any)["id"])
}

func TestCreateStaff_InvalidCategory(t *testing.T) {
	repo := new(mockStaffRepo)
	status, body := sendJSON(t, newApp(repo, nil), "POST", "/api/staff", map[string]any{
		"name": "Pak Budi", "position": "Ketua", "category": "karyawan",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "oneof", body["errors"].(map[string]any)["category"])
}

func TestCreateStaff_MultipartUploadsImage(t *testing.T) {
	repo := new(mockStaffRepo)
	blob := &storage.MockBlobService{
		UploadImageFn: func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
			assert.Equal(t, "staff", dir)
			assert.Equal(t, "budi.png", fh.Filename)
			return "https://blob.test/koperasi/staff/budi.webp", nil
		},
	}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.StaffModel) bool {
		return s.ImageURL != nil && *s.ImageURL == "https://blob.test/koperasi/staff/budi.webp"
	})).Return(nil)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	_ = w.WriteField("name", "Pak Budi")
	_ = w.WriteField("position", "Sekretaris")
	_ = w.WriteField("category", "pengurus")
	fw, _ := w.CreateFormFile("image", "budi.png")
	_, _ = fw.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/staff", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := newApp(repo, blob).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	repo.AssertExpectations(t)
}

func TestUpdateStaff_IDFromBodyAndKeepsImage(t *testing.T) {
	repo := new(mockStaffRepo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.StaffModel{
		ID: id, Name: "Lama", Position: "Anggota", Category: "pengurus", ImageURL: strPtr("https://blob.test/old.webp"),
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *model.StaffModel) bool {
		return s.Name == "Baru" && s.ImageURL != nil && *s.ImageURL == "https://blob.test/old.webp"
	})).Return(nil)
	blob := &storage.MockBlobService{}

	status, _ := sendJSON(t, newApp(repo, blob), "PUT", "/api/staff", map[string]any{
		"id": id.String(), "name": "Baru", "position": "Bendahara", "category": "pengurus",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, blob.Deleted)
	repo.AssertExpectations(t)
}

func TestUpdateStaff_ReplaceImageDeletesOld(t *testing.T) {
	repo := new(mockStaffRepo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.StaffModel{
		ID: id, Name: "A", Position: "B", Category: "pengurus", ImageURL: strPtr("https://blob.test/old.webp"),
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	blob := &storage.MockBlobService{}

	status, _ := sendJSON(t, newApp(repo, blob), "PUT", "/api/staff/"+id.String(), map[string]any{
		"name": "A", "position": "B", "category": "pengurus", "imageUrl": "https://cdn.example.com/new.jpg",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"https://blob.test/old.webp"}, blob.Deleted)
}

func TestUpdateStaff_MissingID(t *testing.T) {
	status, body := sendJSON(t, newApp(new(mockStaffRepo), nil), "PUT", "/api/staff", map[string]any{
		"name": "A", "position": "B", "category": "pengurus",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "ID is required", body["message"])
}

func TestDeleteStaff(t *testing.T) {
	repo := new(mockStaffRepo)
	id := uuid.New()
	missing := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&model.StaffModel{ID: id, ImageURL: strPtr("https://blob.test/p.webp")}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	repo.On("GetByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)
	blob := &storage.MockBlobService{}
	app := newApp(repo, blob)

	status, _ := sendJSON(t, app, "DELETE", "/api/staff?id="+id.String(), nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"https://blob.test/p.webp"}, blob.Deleted)

	status, _ = sendJSON(t, app, "DELETE", "/api/staff/"+missing.String(), nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body := sendJSON(t, app, "DELETE", "/api/staff", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "ID is required", body["message"])
	repo.AssertNumberOfCalls(t, "Delete", 1)
}
