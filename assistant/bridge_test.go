package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeGemini(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestAskWithoutAPIKey(t *testing.T) {
	bridge := NewBridge("", "gemini-2.0-flash", "http://unused", nil)

	_, err := bridge.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestAskReturnsModelText(t *testing.T) {
	server := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 150, req.GenerationConfig.MaxOutputTokens)
		assert.Equal(t, 0, req.GenerationConfig.ThinkingConfig.ThinkingBudget)
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "Head Barista")
		assert.Equal(t, "what do you recommend?", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Try the CARTEL Latte."}},
				}},
			},
		})
	})

	bridge := NewBridge("test-key", "gemini-2.0-flash", server.URL, server.Client())
	reply, err := bridge.Ask(context.Background(), "what do you recommend?")
	assert.NoError(t, err)
	assert.Equal(t, "Try the CARTEL Latte.", reply)
}

func TestAskEmptyCandidatesIsError(t *testing.T) {
	server := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	bridge := NewBridge("test-key", "gemini-2.0-flash", server.URL, server.Client())
	_, err := bridge.Ask(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestAskNonOKStatus(t *testing.T) {
	server := fakeGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	bridge := NewBridge("test-key", "gemini-2.0-flash", server.URL, server.Client())
	_, err := bridge.Ask(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
