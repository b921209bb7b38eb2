package oracle

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/errcodes"
	"profile_validator/pkg/httpx"
)

const (
	openAIPath        = "/v1/chat/completions"
	openAITemperature = 0.3
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type OpenAI struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewOpenAI(httpClient *http.Client, baseURL, apiKey, model string) OpenAI {
	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	return OpenAI{
		httpClient: &http.Client{
			Timeout: httpClient.Timeout,
			Transport: httpx.NewAuthBearerRoundTripper(
				next,
				staticKey{provider: entity.ProviderOpenAI, key: apiKey},
			),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

func (OpenAI) Provider() entity.Provider {
	return entity.ProviderOpenAI
}

func (c OpenAI) Check(ctx context.Context, text string) (entity.Analysis, error) {
	if c.apiKey == "" {
		return entity.Analysis{}, domain.NewError(errcodes.OracleNotConfigured, "OpenAI API key not configured")
	}

	body, err := postJSON(ctx, c.httpClient, entity.ProviderOpenAI, c.baseURL+openAIPath, nil, chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: fmt.Sprintf(reviewPrompt, text)}},
		Temperature: openAITemperature,
	})
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("postJSON: %w", err)
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return entity.Analysis{}, domain.NewError(errcodes.OracleBadResponse, "Failed to parse OpenAI response")
	}

	r, err := decodeReview(entity.ProviderOpenAI, content.String())
	if err != nil {
		return entity.Analysis{}, fmt.Errorf("decodeReview: %w", err)
	}

	return r.analysis(entity.ProviderOpenAI), nil
}
