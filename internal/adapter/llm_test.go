package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/complyra/claimshield/internal/config"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLLMTestClient(t *testing.T, handler http.HandlerFunc) LLMClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewLLMClient(config.LLM{
		APIKey:  "llm-test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, logger.Nop())
}

func TestDraftAppealLetter_Success(t *testing.T) {
	const letter = "Dear Sir/Madam, I am writing to formally appeal..."

	cli := newLLMTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer llm-test-key", r.Header.Get("Authorization"))

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Contains(t, req.Messages[1].Content, "No Surprises Act")
		assert.Contains(t, req.Messages[1].Content, "TOTAL DUE: $500")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + letter + `"}}]}`))
	})

	got, err := cli.DraftAppealLetter(context.Background(), "TOTAL DUE: $500")
	require.NoError(t, err)
	assert.Equal(t, letter, got)
}

func TestDraftAppealLetter_FirstChoiceWins(t *testing.T) {
	cli := newLLMTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[
			{"message":{"role":"assistant","content":"first"}},
			{"message":{"role":"assistant","content":"second"}}
		]}`))
	})

	got, err := cli.DraftAppealLetter(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestDraftAppealLetter_NoChoices(t *testing.T) {
	cli := newLLMTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := cli.DraftAppealLetter(context.Background(), "text")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestDraftAppealLetter_NonOKStatus(t *testing.T) {
	cli := newLLMTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := cli.DraftAppealLetter(context.Background(), "text")
	assert.ErrorIs(t, err, ErrLLMFailed)
}

func TestDraftAppealLetter_MalformedResponse(t *testing.T) {
	cli := newLLMTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	_, err := cli.DraftAppealLetter(context.Background(), "text")
	assert.ErrorIs(t, err, ErrLLMFailed)
}
