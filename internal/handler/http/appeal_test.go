package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/complyra/claimshield/internal/adapter"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/service"
	"github.com/complyra/claimshield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AppealService
// ─────────────────────────────────────────────

type mockAppealService struct {
	analyzeFn func(ctx context.Context, filename string, image []byte) (models.AnalyzeResult, error)
}

func (m *mockAppealService) Analyze(ctx context.Context, filename string, image []byte) (models.AnalyzeResult, error) {
	return m.analyzeFn(ctx, filename, image)
}

func newHandlerWithAppeal(t *testing.T, appeal service.AppealService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AppealService: appeal,
	}
	return NewHandler(svcs, logger.Nop())
}

// multipartBody builds a multipart request body with one "file" part.
func multipartBody(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// ─────────────────────────────────────────────
// analyze
// ─────────────────────────────────────────────

func TestAnalyze_Success(t *testing.T) {
	appeal := &mockAppealService{
		analyzeFn: func(_ context.Context, filename string, image []byte) (models.AnalyzeResult, error) {
			assert.Equal(t, "bill.png", filename)
			assert.Equal(t, []byte("image-bytes"), image)
			return models.AnalyzeResult{
				ExtractedText: "Anesthesia $1,200.00",
				AppealLetter:  "Dear Sir or Madam...",
			}, nil
		},
	}

	body, contentType := multipartBody(t, "file", "bill.png", []byte("image-bytes"))
	h := newHandlerWithAppeal(t, appeal)
	req := httptest.NewRequest(http.MethodPost, "/api/appeals/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AnalyzeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Anesthesia $1,200.00", result.ExtractedText)
	assert.Equal(t, "Dear Sir or Madam...", result.AppealLetter)
}

func TestAnalyze_MissingFilePart(t *testing.T) {
	body, contentType := multipartBody(t, "attachment", "bill.png", []byte("image-bytes"))
	h := newHandlerWithAppeal(t, &mockAppealService{})
	req := httptest.NewRequest(http.MethodPost, "/api/appeals/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.analyze(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_NotMultipart(t *testing.T) {
	h := newHandlerWithAppeal(t, &mockAppealService{})
	req := httptest.NewRequest(http.MethodPost, "/api/appeals/analyze", bytes.NewReader([]byte("plain body")))
	rec := httptest.NewRecorder()

	h.analyze(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_NoTextRecognized(t *testing.T) {
	appeal := &mockAppealService{
		analyzeFn: func(_ context.Context, _ string, _ []byte) (models.AnalyzeResult, error) {
			return models.AnalyzeResult{}, adapter.ErrNoTextRecognized
		},
	}

	body, contentType := multipartBody(t, "file", "blank.png", []byte("image-bytes"))
	h := newHandlerWithAppeal(t, appeal)
	req := httptest.NewRequest(http.MethodPost, "/api/appeals/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.analyze(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalyze_ProviderDown(t *testing.T) {
	appeal := &mockAppealService{
		analyzeFn: func(_ context.Context, _ string, _ []byte) (models.AnalyzeResult, error) {
			return models.AnalyzeResult{}, adapter.ErrOCRFailed
		},
	}

	body, contentType := multipartBody(t, "file", "bill.png", []byte("image-bytes"))
	h := newHandlerWithAppeal(t, appeal)
	req := httptest.NewRequest(http.MethodPost, "/api/appeals/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.analyze(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
}
