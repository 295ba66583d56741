package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const defaultTimeout = 15 * time.Second

// Config configures [NewClient].
type Config struct {
	// BaseURL is the server address, e.g. "http://localhost:10000". A missing
	// scheme defaults to http.
	BaseURL string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

// Client is the resty implementation of [RewardsAPI].
type Client struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewClient validates cfg.BaseURL and builds a client that encodes JSON with
// goccy/go-json.
func NewClient(cfg Config, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetError(&models.ErrorResponse{})
	cli.JSONMarshal = json.Marshal
	cli.JSONUnmarshal = json.Unmarshal

	return &Client{client: cli, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Health calls GET /.
func (c *Client) Health(ctx context.Context) (models.AppStatus, error) {
	var result models.StatusResponse

	resp, err := c.request(ctx).SetResult(&result).Get("/")
	if err = check(resp, err, result.OK, "health"); err != nil {
		return models.AppStatus{}, err
	}
	return result.AppStatus, nil
}

// TestDB calls GET /api/testdb.
func (c *Client) TestDB(ctx context.Context) (models.DatabaseTime, error) {
	var result models.DatabaseTimeResponse

	resp, err := c.request(ctx).SetResult(&result).Get("/api/testdb")
	if err = check(resp, err, result.OK, "testdb"); err != nil {
		return models.DatabaseTime{}, err
	}
	return result.Time, nil
}

// Register calls POST /auth/register and stores the issued token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	return c.authenticate(ctx, "/auth/register", req)
}

// Login calls POST /auth/login and stores the issued token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return c.authenticate(ctx, "/auth/login", req)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (models.AuthResult, error) {
	var result models.AuthResponse

	resp, err := c.request(ctx).SetBody(body).SetResult(&result).Post(path)
	if err = check(resp, err, result.OK, path); err != nil {
		return models.AuthResult{}, err
	}

	c.SetToken(result.Token)
	c.logger.Debug().Int64("id", result.User.ID).Str("path", path).Msg("token received")
	return result.AuthResult, nil
}

// ListUsers calls GET /users. A positive limit is sent as ?limit=.
func (c *Client) ListUsers(ctx context.Context, limit int) ([]models.PublicUser, error) {
	var result models.UsersResponse

	req := c.request(ctx).SetResult(&result)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/users")
	if err = check(resp, err, result.OK, "list users"); err != nil {
		return nil, err
	}
	return result.Users, nil
}

// CreateUser calls POST /users.
func (c *Client) CreateUser(ctx context.Context, body models.CreateUserRequest) (models.PublicUser, error) {
	var result models.UserResponse

	resp, err := c.request(ctx).SetBody(body).SetResult(&result).Post("/users")
	if err = check(resp, err, result.OK, "create user"); err != nil {
		return models.PublicUser{}, err
	}
	return result.User, nil
}

// UpdateUser calls PUT /users/{id}.
func (c *Client) UpdateUser(ctx context.Context, id int64, body models.UpdateUserRequest) (models.PublicUser, error) {
	var result models.UserResponse

	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(body).
		SetResult(&result).
		Put("/users/{id}")
	if err = check(resp, err, result.OK, "update user"); err != nil {
		return models.PublicUser{}, err
	}
	return result.User, nil
}

// DeleteUser calls DELETE /users/{id}.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	var result models.DeleteResponse

	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&result).
		Delete("/users/{id}")
	return check(resp, err, result.OK, "delete user")
}

// Stats calls GET /stats.
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var result models.StatsResponse

	resp, err := c.request(ctx).SetResult(&result).Get("/stats")
	if err = check(resp, err, result.OK, "stats"); err != nil {
		return models.Stats{}, err
	}
	return result.Stats, nil
}

// ListSettings calls GET /api/settings.
func (c *Client) ListSettings(ctx context.Context) ([]models.Setting, error) {
	var result models.SettingsResponse

	resp, err := c.request(ctx).SetResult(&result).Get("/api/settings")
	if err = check(resp, err, result.OK, "list settings"); err != nil {
		return nil, err
	}
	return result.Settings, nil
}

// UpsertSetting calls POST /api/settings.
func (c *Client) UpsertSetting(ctx context.Context, setting models.Setting) error {
	var result models.OKResponse

	resp, err := c.request(ctx).SetBody(setting).SetResult(&result).Post("/api/settings")
	return check(resp, err, result.OK, "upsert setting")
}

// check folds transport errors, non-2xx statuses and a missing ok flag into
// one error.
func check(resp *resty.Response, err error, ok bool, op string) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrUnexpectedResponse)
	}
	return nil
}
