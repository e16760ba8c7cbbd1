package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartelroasters/storefront/utils"
)

func TestSendEndOfDayPayload(t *testing.T) {
	utils.InitLogger()

	var received endOfDayReport
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewReportService(server.URL, server.Client())
	assert.NoError(t, svc.SendEndOfDay("khalifa"))

	assert.Equal(t, "KITCHEN", received.Type)
	assert.Equal(t, "khalifa", received.Branch)
	assert.Equal(t, 150, received.LateCount)
	assert.Equal(t, 400, received.NormalCount)
	assert.Equal(t, "27%", received.LatePercentage)
	assert.NotEmpty(t, received.Time)
}

func TestSendEndOfDayTransportError(t *testing.T) {
	utils.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	svc := NewReportService(server.URL, nil)
	assert.Error(t, svc.SendEndOfDay("khalifa"))
}
