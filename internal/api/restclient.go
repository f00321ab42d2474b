package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wolfread/wolfread-go/internal/logging"
	"github.com/wolfread/wolfread-go/internal/models"
)

// RESTClient talks JSON over HTTP to the WolfRead backend.
type RESTClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewRESTClient builds a client rooted at baseURL (e.g. "http://host/api").
// The timeout bounds every request end to end.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// do performs one request. A non-nil body is serialized as JSON and sets
// Content-Type; a non-empty token sets the bearer Authorization header; a
// non-nil out receives the decoded 2xx response body.
//
// Non-2xx responses become *HTTPError with the raw body text attached;
// transport failures become *NetworkError.
func (c *RESTClient) do(ctx context.Context, method, path, token string, body, out any) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debug(ctx, "request", "method", method, "url", url, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	c.log.Debug(ctx, "response", "method", method, "url", url,
		"request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		var mr messageResponse
		if json.Unmarshal(raw, &mr) == nil {
			httpErr.Message = mr.Message
		}
		return httpErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// rejected guards endpoints that report domain errors inside a 2xx payload.
func rejected(status, message string) error {
	if status != "" && status != statusSuccess {
		return &RejectedError{Status: status, Message: message}
	}
	return nil
}

func (c *RESTClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", "", req, &res); err != nil {
		return nil, err
	}
	if err := rejected(res.Status, res.Message); err != nil {
		return nil, err
	}
	return &AuthResult{User: res.User, Tokens: res.Tokens}, nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", "", body, &res); err != nil {
		return nil, err
	}
	if err := rejected(res.Status, res.Message); err != nil {
		return nil, err
	}
	return &AuthResult{User: res.User, Tokens: res.Tokens}, nil
}

func (c *RESTClient) Logout(ctx context.Context, access string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout/", access, nil, nil)
}

func (c *RESTClient) CheckStatus(ctx context.Context, access string) (*StatusResult, error) {
	var res statusResponse
	if err := c.do(ctx, http.MethodGet, "/auth/status/", access, nil, &res); err != nil {
		return nil, err
	}
	return &StatusResult{Authenticated: res.Authenticated, User: res.User}, nil
}

func (c *RESTClient) RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error) {
	body := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refresh}

	var res refreshResponse
	if err := c.do(ctx, http.MethodPost, "/token/refresh/", "", body, &res); err != nil {
		return nil, err
	}

	pair := &models.TokenPair{Access: res.Access, Refresh: res.Refresh}
	if pair.Refresh == "" {
		// Server did not rotate the refresh token, keep using the old one.
		pair.Refresh = refresh
	}
	return pair, nil
}

func (c *RESTClient) GetProfile(ctx context.Context, access string) (*models.User, error) {
	var res profileResponse
	if err := c.do(ctx, http.MethodGet, "/auth/profile/", access, nil, &res); err != nil {
		return nil, err
	}
	if err := rejected(res.Status, res.Message); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, fields ProfileUpdate, access string) (*models.User, error) {
	var res profileResponse
	if err := c.do(ctx, http.MethodPut, "/auth/profile/", access, fields, &res); err != nil {
		return nil, err
	}
	if err := rejected(res.Status, res.Message); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *RESTClient) ChangePassword(ctx context.Context, req ChangePasswordRequest, access string) (string, error) {
	var res messageResponse
	if err := c.do(ctx, http.MethodPost, "/auth/change-password/", access, req, &res); err != nil {
		return "", err
	}
	if err := rejected(res.Status, res.Message); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *RESTClient) CheckPreferences(ctx context.Context, access string) (bool, error) {
	var res preferencesResponse
	if err := c.do(ctx, http.MethodGet, "/preferences/check/", access, nil, &res); err != nil {
		return false, err
	}
	return res.ShouldShowForm, nil
}
