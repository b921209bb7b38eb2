package oracle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"profile_validator/internal/config"
	"profile_validator/internal/domain"
	"profile_validator/internal/domain/entity"
	"profile_validator/pkg/errcodes"
	"profile_validator/pkg/httpx"
	"profile_validator/pkg/logx"
)

const maxResponseSize = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func newHTTPClient(provider entity.Provider, cfg config.Oracle) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
			httpx.WithAttrs(slog.String(logx.FieldProvider, provider.String())),
		),
	}
}

// staticKey authenticates requests with a static bearer token.
type staticKey struct {
	provider entity.Provider
	key      string
}

func (k staticKey) Authenticate(context.Context) error {
	if k.key == "" {
		return domain.NewError(errcodes.OracleNotConfigured, k.provider.String()+" API key not configured")
	}

	return nil
}

func (k staticKey) BearerToken() string {
	return k.key
}

func postJSON(
	ctx context.Context,
	client *http.Client,
	provider entity.Provider,
	url string,
	header http.Header,
	payload any,
) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	req.Header.Set("Content-Type", "application/json")

	return do(client, provider, req)
}

func do(client *http.Client, provider entity.Provider, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.WrapError(err, errcodes.TimeoutExceeded, provider.String()+" request timed out")
		}

		return nil, domain.WrapError(err, errcodes.OracleUnavailable, provider.String()+" request failed")
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.OracleUnavailable, provider.String()+" response could not be read")
	}

	if apiErr := gjson.GetBytes(body, "error"); apiErr.Exists() {
		message := apiErr.Get("message").String()
		if message == "" {
			message = provider.String() + " API error"
		}

		return nil, domain.NewError(errcodes.OracleUnavailable, message)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewError(
			errcodes.OracleUnavailable,
			fmt.Sprintf("%s responded with status %d", provider, resp.StatusCode),
		)
	}

	return body, nil
}
