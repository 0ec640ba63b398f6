package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reviewdash/internal/handler"
	"reviewdash/internal/model"
	"reviewdash/internal/repository"
	"reviewdash/internal/storage"
)

type MockReminderStore struct {
	mock.Mock
}

func (m *MockReminderStore) Create(ctx context.Context, log *model.ReminderLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ReminderLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReminderLog), args.Error(1)
}

func (m *MockReminderStore) List(ctx context.Context, documentID, reviewerID *uuid.UUID) ([]model.ReminderLog, error) {
	args := m.Called(ctx, documentID, reviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReminderLog), args.Error(1)
}

func (m *MockReminderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReminderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockDocumentGetter struct {
	mock.Mock
}

func (m *MockDocumentGetter) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

type MockReviewerGetter struct {
	mock.Mock
}

func (m *MockReviewerGetter) GetByID(ctx context.Context, id uuid.UUID) (*model.Reviewer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reviewer), args.Error(1)
}

type reminderMocks struct {
	reminders *MockReminderStore
	documents *MockDocumentGetter
	reviewers *MockReviewerGetter
}

func setupReminderRouter(t *testing.T) (*gin.Engine, reminderMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mocks := reminderMocks{
		reminders: new(MockReminderStore),
		documents: new(MockDocumentGetter),
		reviewers: new(MockReviewerGetter),
	}
	settings := storage.New(filepath.Join(t.TempDir(), "dashboard.json"))
	h := handler.NewReminderHandler(mocks.reminders, mocks.documents, mocks.reviewers, settings)

	r := gin.New()
	r.POST("/api/reminders", h.Create)
	r.GET("/api/reminders", h.List)
	r.PUT("/api/reminders/:id", h.UpdateStatus)
	r.GET("/api/reminders/settings", h.GetSettings)
	r.PUT("/api/reminders/settings", h.UpdateSettings)
	return r, mocks
}

func TestCreateReminder(t *testing.T) {
	router, mocks := setupReminderRouter(t)

	document := &model.Document{ID: uuid.New(), Title: "Contract Review - Acme Corp"}
	reviewer := &model.Reviewer{ID: uuid.New(), Name: "Alice Wonderland"}

	mocks.documents.On("GetByID", mock.Anything, document.ID).Return(document, nil)
	mocks.reviewers.On("GetByID", mock.Anything, reviewer.ID).Return(reviewer, nil)
	mocks.reminders.On("Create", mock.Anything, mock.AnythingOfType("*model.ReminderLog")).Return(nil)

	resp := doJSON(t, router, http.MethodPost, "/api/reminders", handler.CreateReminderRequest{
		DocumentID: document.ID.String(),
		ReviewerID: reviewer.ID.String(),
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created handler.ReminderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Sent", created.Status)
	assert.Equal(t, "Contract Review - Acme Corp", created.DocumentName)
	assert.Equal(t, "Alice Wonderland", created.ReviewerName)
	mocks.reminders.AssertExpectations(t)
}

func TestCreateReminder_DocumentNotFound(t *testing.T) {
	router, mocks := setupReminderRouter(t)

	documentID := uuid.New()
	mocks.documents.On("GetByID", mock.Anything, documentID).Return(nil, repository.ErrDocumentNotFound)

	resp := doJSON(t, router, http.MethodPost, "/api/reminders", handler.CreateReminderRequest{
		DocumentID: documentID.String(),
		ReviewerID: uuid.New().String(),
	})
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Document with id "+documentID.String()+" not found", body["error"])
	mocks.reminders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReminder_MissingFields(t *testing.T) {
	router, _ := setupReminderRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/reminders", gin.H{"document_id": uuid.New().String()})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/reminders", gin.H{
		"document_id": "not-a-uuid",
		"reviewer_id": uuid.New().String(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListReminders_Filtered(t *testing.T) {
	router, mocks := setupReminderRouter(t)

	documentID := uuid.New()
	logs := []model.ReminderLog{{
		ID:            uuid.New(),
		DocumentID:    documentID,
		ReviewerID:    uuid.New(),
		SentTimestamp: time.Now(),
		Status:        model.ReminderOpened,
		Document:      model.Document{ID: documentID, Title: "Policy Update Review"},
		Reviewer:      model.Reviewer{Name: "Bob The Builder"},
	}}
	mocks.reminders.On("List", mock.Anything, &documentID, (*uuid.UUID)(nil)).Return(logs, nil)

	resp := doJSON(t, router, http.MethodGet, "/api/reminders?document_id="+documentID.String(), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Reminders []handler.ReminderResponse `json:"reminders"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Reminders, 1)
	assert.Equal(t, "Opened", body.Reminders[0].Status)
	assert.Equal(t, "Policy Update Review", body.Reminders[0].DocumentName)
}

func TestListReminders_InvalidFilter(t *testing.T) {
	router, _ := setupReminderRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/api/reminders?document_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateReminderStatus(t *testing.T) {
	router, mocks := setupReminderRouter(t)

	id := uuid.New()
	updated := &model.ReminderLog{
		ID:            id,
		DocumentID:    uuid.New(),
		ReviewerID:    uuid.New(),
		SentTimestamp: time.Now(),
		Status:        model.ReminderClicked,
	}
	mocks.reminders.On("UpdateStatus", mock.Anything, id, model.ReminderClicked).Return(nil)
	mocks.reminders.On("GetByID", mock.Anything, id).Return(updated, nil)

	resp := doJSON(t, router, http.MethodPut, "/api/reminders/"+id.String(), handler.UpdateReminderRequest{Status: "Clicked"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body handler.ReminderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Clicked", body.Status)
	mocks.reminders.AssertExpectations(t)
}

func TestUpdateReminderStatus_Invalid(t *testing.T) {
	router, mocks := setupReminderRouter(t)

	resp := doJSON(t, router, http.MethodPut, "/api/reminders/"+uuid.New().String(), handler.UpdateReminderRequest{Status: "Delivered"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	id := uuid.New()
	mocks.reminders.On("UpdateStatus", mock.Anything, id, model.ReminderError).Return(repository.ErrReminderNotFound)
	resp = doJSON(t, router, http.MethodPut, "/api/reminders/"+id.String(), handler.UpdateReminderRequest{Status: "Error"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestReminderSettings(t *testing.T) {
	router, _ := setupReminderRouter(t)

	// default before anything is saved
	resp := doJSON(t, router, http.MethodGet, "/api/reminders/settings", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "weekly", body["frequency"])

	resp = doJSON(t, router, http.MethodPut, "/api/reminders/settings", handler.ReminderSettingsRequest{Frequency: "monthly"})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Reminder frequency set to monthly.", body["message"])

	resp = doJSON(t, router, http.MethodGet, "/api/reminders/settings", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "monthly", body["frequency"])

	resp = doJSON(t, router, http.MethodPut, "/api/reminders/settings", handler.ReminderSettingsRequest{Frequency: "hourly"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
