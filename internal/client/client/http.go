package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/common"
	"github.com/truthlens/truthlens/internal/netx"
)

// HTTPClient talks JSON over HTTP to the TruthLens backend. It holds the
// access/refresh token pair obtained at login and transparently retries a
// request once after refreshing an expired access token.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// NewHTTPClient constructs a client for the backend at baseURL (for example
// "http://127.0.0.1:8080"). The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) setTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = access
	c.refreshToken = refresh
}

func (c *HTTPClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// apiError maps a non-2xx response to a sentinel error where the status and
// message identify a known condition.
func apiError(status int, msg string) error {
	switch {
	case status == http.StatusUnauthorized && msg == common.ErrTokenExpired.Error():
		return common.ErrTokenExpired
	case status == http.StatusUnauthorized && msg == common.ErrRefreshTokenExpired.Error():
		return common.ErrRefreshTokenExpired
	case status == http.StatusUnauthorized && msg == common.ErrInvalidCredentials.Error():
		return common.ErrInvalidCredentials
	case status == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case status == http.StatusConflict:
		return common.ErrAlreadyExists
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status >= 500:
		return fmt.Errorf("%w: %s", common.ErrInternal, msg)
	default:
		return fmt.Errorf("api error %d: %s", status, msg)
	}
}

// do performs one JSON request. out may be nil for responses without a body
// of interest. A failed transport round trip maps to common.ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e api.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return apiError(resp.StatusCode, e.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// doAuthed runs do and, when the access token has expired, refreshes the
// token pair and retries exactly once.
func (c *HTTPClient) doAuthed(ctx context.Context, method, path string, in, out any) error {
	err := c.do(ctx, method, path, in, out)
	if err == nil || !errors.Is(err, common.ErrTokenExpired) {
		return err
	}

	_, refresh := c.tokens()
	if refresh == "" {
		return err
	}

	var rr api.RefreshResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", api.RefreshRequest{RefreshToken: refresh}, &rr); err != nil {
		return err
	}
	c.setTokens(rr.AccessToken, rr.RefreshToken)

	return c.do(ctx, method, path, in, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*api.User, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return &resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (*api.User, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register",
		api.RegisterRequest{Email: email, Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.setTokens(resp.AccessToken, resp.RefreshToken)
	return &resp.User, nil
}

func (c *HTTPClient) SubmitReport(ctx context.Context, report api.Report) (*api.ReportReceipt, error) {
	var receipt api.ReportReceipt
	if err := c.doAuthed(ctx, http.MethodPost, "/api/v1/reports", report, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// AnalyzeImage uploads the image via a server-issued presigned URL and then
// requests the analysis for the stored object.
func (c *HTTPClient) AnalyzeImage(ctx context.Context, filename string, image []byte) (*api.AnalysisReport, error) {
	var presign api.PresignResponse
	if err := c.doAuthed(ctx, http.MethodPost, "/api/v1/analyses/presign", nil, &presign); err != nil {
		return nil, err
	}

	if err := netx.UploadToPresignedURL(ctx, c.http, presign.URL, image); err != nil {
		return nil, fmt.Errorf("image upload: %w", err)
	}

	var report api.AnalysisReport
	if err := c.doAuthed(ctx, http.MethodPost, "/api/v1/analyses",
		api.AnalyzeRequest{Key: presign.Key, Filename: filename}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/v1/ping", nil, nil)
}
