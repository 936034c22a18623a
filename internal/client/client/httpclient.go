package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/client/models"
	"github.com/dmitrijs2005/fintrack/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) Authenticated() bool {
	return c.currentToken() != ""
}

func (c *HTTPClient) Logout() {
	c.setToken("")
}

// do sends the request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, in, out any) error {
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
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth {
		token := c.currentToken()
		if token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&m)
		if m.Message == "" {
			m.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: m.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", false, nil, nil)
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, in any) (*models.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, path, false, in, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return nil, errors.New("server returned no session")
	}
	c.setToken(resp.Token)
	return resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return c.authenticate(ctx, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	return c.authenticate(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) AddTransaction(ctx context.Context, tx models.NewTransaction) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transactions", true, tx, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

func (c *HTTPClient) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transactions", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

func (c *HTTPClient) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+url.PathEscape(id), true, nil, nil)
}

func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transactions/categories", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *HTTPClient) Summary(ctx context.Context) (*models.Totals, error) {
	var resp models.Totals
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CategoryBreakdown(ctx context.Context) ([]models.CategoryTotal, error) {
	var resp struct {
		CategoryData []models.CategoryTotal `json:"categoryData"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary/category", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.CategoryData, nil
}

func (c *HTTPClient) Monthly(ctx context.Context) ([]models.MonthlyRow, error) {
	var resp struct {
		ChartData []models.MonthlyRow `json:"chartData"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/transactions/summary/monthly", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ChartData, nil
}

func (c *HTTPClient) Export(ctx context.Context) (*models.Export, error) {
	var resp models.Export
	if err := c.do(ctx, http.MethodGet, "/api/transactions/export", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
