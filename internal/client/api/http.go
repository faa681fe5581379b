package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

var _ Client = (*HTTPClient)(nil)

// HTTPClient is the concrete Client speaking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the given base origin, e.g.
// "http://localhost:8000". The http.Client is taken as-is so tests and
// callers can control timeouts and transports.
func NewHTTPClient(baseURL string, httpc *http.Client) *HTTPClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). A non-2xx status always yields an error; the body is never
// decoded in that case.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	return c.send(req, out)
}

// setCommonHeaders attaches the request id and, when a token is held, the
// bearer authorization header.
func (c *HTTPClient) setCommonHeaders(req *http.Request) {
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		// drain so the connection can be reused; the body is not parsed
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: %w (status %d)", req.Method, req.URL.Path, err, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func classifyStatus(code int) error {
	switch {
	case code < 400:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return ErrServer
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register/", body, nil)
}

func (c *HTTPClient) Profile(ctx context.Context, userID string) (*models.StyleProfile, error) {
	var p models.StyleProfile
	if err := c.do(ctx, http.MethodGet, "/api/profile/"+url.PathEscape(userID)+"/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, p *models.StyleProfile) error {
	return c.do(ctx, http.MethodPost, "/api/profile/", p, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, userID string, p *models.StyleProfile) error {
	return c.do(ctx, http.MethodPut, "/api/profile/"+url.PathEscape(userID)+"/", p, nil)
}

func (c *HTTPClient) WardrobeItems(ctx context.Context, userID string) ([]models.WardrobeItem, error) {
	var items []models.WardrobeItem
	if err := c.do(ctx, http.MethodGet, "/api/wardrobe/"+url.PathEscape(userID)+"/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddWardrobeItem posts the new-item form as multipart/form-data, attaching
// the image file when a path is given. Unlike the JSON helper it builds its
// own body, but the status handling is identical: a non-2xx response is a
// failure before any decoding happens.
func (c *HTTPClient) AddWardrobeItem(ctx context.Context, item models.NewWardrobeItem) (*models.WardrobeItem, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":     item.Name,
		"category": item.Category,
		"color":    item.Color,
		"season":   string(item.Season),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("add wardrobe item: %w", err)
		}
	}

	if item.ImagePath != "" {
		if err := attachFile(mw, "image", item.ImagePath); err != nil {
			return nil, fmt.Errorf("add wardrobe item: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("add wardrobe item: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/wardrobe/", &buf)
	if err != nil {
		return nil, fmt.Errorf("add wardrobe item: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setCommonHeaders(req)

	var created models.WardrobeItem
	if err := c.send(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func attachFile(mw *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

func (c *HTTPClient) DeleteWardrobeItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/wardrobe/"+url.PathEscape(itemID)+"/", nil, nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodPost, "/api/wardrobe/"+url.PathEscape(itemID)+"/toggle-favorite/", nil, nil)
}

func (c *HTTPClient) SubmitDailyInput(ctx context.Context, input models.DailyInput) (*models.StylingSuggestion, error) {
	var s models.StylingSuggestion
	if err := c.do(ctx, http.MethodPost, "/api/daily-input/", input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Suggestions(ctx context.Context, userID string) ([]models.StylingSuggestion, error) {
	var s []models.StylingSuggestion
	if err := c.do(ctx, http.MethodGet, "/api/suggestions/"+url.PathEscape(userID)+"/", nil, &s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *HTTPClient) SubmitFeedback(ctx context.Context, suggestionID string, fb models.Feedback) error {
	return c.do(ctx, http.MethodPost, "/api/suggestions/"+url.PathEscape(suggestionID)+"/feedback/", fb, nil)
}
