package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/members/model"
	"koperasi_backend/internals/helpers/events"
)

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) List(ctx context.Context) ([]model.MemberModel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.MemberModel), args.Error(1)
}

func (m *mockMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.MemberModel, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.MemberModel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMemberRepo) Create(ctx context.Context, mm *model.MemberModel) error {
	return m.Called(ctx, mm).Error(0)
}

func (m *mockMemberRepo) Update(ctx context.Context, mm *model.MemberModel) error {
	return m.Called(ctx, mm).Error(0)
}

func (m *mockMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newApp(repo *mockMemberRepo, rec *events.Recorder) *fiber.App {
	ctrl := NewMemberController(repo, rec)
	app := fiber.New()
	app.Get("/api/members", ctrl.GetMembers)
	app.Post("/api/members", ctrl.CreateMember)
	app.Put("/api/members/:id", ctrl.UpdateMember)
	app.Delete("/api/members/:id", ctrl.DeleteMember)
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

func TestMembers_ListAndCreate(t *testing.T) {
	repo := new(mockMemberRepo)
	repo.On("List", mock.Anything).Return([]model.MemberModel{{
		ID: uuid.New(), Name: "Siti", Address: "Desa Sukamaju",
		JoinDate: datatypes.Date(time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)),
	}}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.MemberModel) bool {
		return m.Name == "Andi" && time.Time(m.JoinDate).Format("2006-01-02") == "2024-02-29"
	})).Return(nil)
	app := newApp(repo, &events.Recorder{})

	status, body := sendJSON(t, app, "GET", "/api/members", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := body["data"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "2020-01-15", list[0].(map[string]any)["joinDate"])

	status, _ = sendJSON(t, app, "POST", "/api/members", map[string]any{
		"name": "Andi", "address": "RT 02", "joinDate": "2024-02-29",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	status, body = sendJSON(t, app, "POST", "/api/members", map[string]any{"name": "Andi"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["errors"], "joinDate")
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestDeleteMember_Persisted(t *testing.T) {
	repo := new(mockMemberRepo)
	rec := &events.Recorder{}
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil).Once()
	repo.On("Delete", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)
	app := newApp(repo, rec)

	status, _ := sendJSON(t, app, "DELETE", "/api/members/"+id.String(), nil)
	assert.Equal(t, fiber.StatusOK, status)
	repo.AssertCalled(t, "Delete", mock.Anything, id)
	require.Len(t, rec.Events(), 1)
	assert.Equal(t, id.String(), rec.Events()[0].ID)

	status, _ = sendJSON(t, app, "DELETE", "/api/members/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateMember(t *testing.T) {
	repo := new(mockMemberRepo)
	id := uuid.New()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(m *model.MemberModel) bool { return m.ID == id })).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)
	app := newApp(repo, &events.Recorder{})

	payload := map[string]any{"name": "Siti A.", "address": "Desa Sukamaju", "joinDate": "2020-01-15"}
	status, body := sendJSON(t, app, "PUT", "/api/members/"+id.String(), payload)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Siti A.", body["data"].(map[string]any)["name"])

	status, _ = sendJSON(t, app, "PUT", "/api/members/"+uuid.NewString(), payload)
	assert.Equal(t, fiber.StatusNotFound, status)
}
