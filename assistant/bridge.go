// Package assistant bridges chat turns to the Gemini generateContent
// API. The bridge only ever sees the static catalog; live inventory
// edits are deliberately invisible to it.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/cartelroasters/storefront/catalog"
)

const defaultModel = "gemini-2.0-flash"

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// Responses are capped hard and extended reasoning is disabled so a
// reply always fits the cap.
const maxOutputTokens = 150

// Fallback texts surfaced to the user in place of a reply. They are
// appended to the transcript as error-tagged model messages, never
// thrown past the chat boundary.
const (
	FallbackMissingKey = "System Error: API Key missing. Please check configuration."
	FallbackEmptyReply = "I'm having trouble reading the order ticket. Ask again?"
	FallbackCallFailed = "Connection to the roastery lost. Please try again."
)

var (
	ErrMissingAPIKey = errors.New("assistant: api key not configured")
	ErrEmptyReply    = errors.New("assistant: empty reply from model")
)

type Bridge struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

var (
	bridge     *Bridge
	bridgeOnce sync.Once
)

// GetBridge returns the singleton bridge configured from the
// environment.
func GetBridge() *Bridge {
	bridgeOnce.Do(func() {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = defaultModel
		}
		endpoint := os.Getenv("GEMINI_ENDPOINT")
		if endpoint == "" {
			endpoint = defaultEndpoint
		}
		bridge = &Bridge{
			apiKey:   os.Getenv("GEMINI_API_KEY"),
			model:    model,
			endpoint: endpoint,
			// No timeout contract exists upstream; a bounded wait with
			// expiry treated as an ordinary failure.
			httpClient: &http.Client{Timeout: 30 * time.Second},
		}
	})
	return bridge
}

// NewBridge builds an explicitly configured bridge (used by tests).
func NewBridge(apiKey, model, endpoint string, client *http.Client) *Bridge {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Bridge{apiKey: apiKey, model: model, endpoint: endpoint, httpClient: client}
}

type generateRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int            `json:"maxOutputTokens"`
	ThinkingConfig  thinkingConfig `json:"thinkingConfig"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends one user turn and returns the model's text. Any failure
// (missing credential, transport error, bad status, empty candidates)
// comes back as an error for the caller to map to a fallback bubble.
func (b *Bridge) Ask(ctx context.Context, userText string) (string, error) {
	if b.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction()}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: userText}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxOutputTokens,
			ThinkingConfig:  thinkingConfig{ThinkingBudget: 0},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", b.endpoint, b.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("assistant: unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	var text string
	if len(parsed.Candidates) > 0 {
		for _, p := range parsed.Candidates[0].Content.Parts {
			text += p.Text
		}
	}
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// systemInstruction rebuilds the persona prompt per turn so the
// embedded wall-clock time stays current.
func systemInstruction() string {
	return fmt.Sprintf(`You are the "Head Barista" AI for a coffee shop named CARTEL.
Your personality is industrial, minimalist, and knowledgeable - slightly edgy but very helpful.
You do not use emojis. You speak concisely.
The current time at the cafe is: %s.
Use this time to make relevant suggestions (e.g., coffee in the morning, decaf or dessert in the evening).

You have access to the menu data provided below.
When a user asks for a recommendation, analyze their request and suggest specific items from the menu.
If they ask about ingredients, refer to the menu data.
If they ask about something not on the menu, politely inform them we don't serve that but suggest the closest alternative.

MENU DATA:
%s`, time.Now().Format("1/2/2006, 3:04:05 PM"), catalog.BaseMenuJSON())
}
