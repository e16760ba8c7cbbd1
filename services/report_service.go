package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/cartelroasters/storefront/utils"
)

const defaultScriptURL = "https://script.google.com/macros/s/AKfycbw_2vLqLWsjTUeUfCuEgvLCiiAMgTLAkYfoGrO-bHoKvLwEQWb45S2ejjLhH7UrwR_M/exec"

// ReportService posts the fixed-shape end-of-day kitchen summary to the
// external script endpoint. Best effort: one POST, no retry, outcome
// surfaced only as a local message.
type ReportService struct {
	scriptURL  string
	httpClient *http.Client
}

var (
	reportService *ReportService
	reportOnce    sync.Once
)

func GetReportService() *ReportService {
	reportOnce.Do(func() {
		scriptURL := os.Getenv("REPORT_SCRIPT_URL")
		if scriptURL == "" {
			scriptURL = defaultScriptURL
		}
		reportService = &ReportService{
			scriptURL:  scriptURL,
			httpClient: &http.Client{Timeout: 15 * time.Second},
		}
	})
	return reportService
}

// NewReportService builds an explicitly configured service (used by
// tests).
func NewReportService(scriptURL string, client *http.Client) *ReportService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &ReportService{scriptURL: scriptURL, httpClient: client}
}

type endOfDayReport struct {
	Type           string `json:"type"`
	Branch         string `json:"branch"`
	Time           string `json:"time"`
	LateCount      int    `json:"lateCount"`
	NormalCount    int    `json:"normalCount"`
	LatePercentage string `json:"latePercentage"`
}

func (s *ReportService) SendEndOfDay(branchID string) error {
	report := endOfDayReport{
		Type:           "KITCHEN",
		Branch:         branchID,
		Time:           time.Now().Format("3:04:05 PM"),
		LateCount:      150,
		NormalCount:    400,
		LatePercentage: "27%",
	}

	body, err := json.Marshal(report)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Post(s.scriptURL, "application/json", bytes.NewReader(body))
	if err != nil {
		utils.ErrorLogger.Errorf("end-of-day report failed for %s: %v", branchID, err)
		return err
	}
	defer resp.Body.Close()

	utils.InfoLogger.Printf("end-of-day report sent for %s (status %d)", branchID, resp.StatusCode)
	return nil
}
