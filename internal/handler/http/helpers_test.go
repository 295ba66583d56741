package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/rewards-backend/internal/config"
	"github.com/MKhiriev/rewards-backend/internal/logger"
	"github.com/MKhiriev/rewards-backend/internal/service"
	"github.com/MKhiriev/rewards-backend/internal/store"
	"github.com/MKhiriev/rewards-backend/internal/validators"
	"github.com/MKhiriev/rewards-backend/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ---- In-memory repositories ----

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
	err    error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]models.User)}
}

func (m *memUserRepo) EnsureTable(context.Context) error { return m.err }

func (m *memUserRepo) ListUsers(_ context.Context, limit int) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (m *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.User{}, m.err
	}

	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	m.users[user.ID] = user
	return user, nil
}

func (m *memUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.User{}, m.err
	}

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *memUserRepo) UpdateUser(_ context.Context, id int64, update models.UserUpdate) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.User{}, m.err
	}

	u, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Password != nil {
		u.PasswordHash = update.Password
	}
	m.users[id] = u
	return u, nil
}

func (m *memUserRepo) DeleteUser(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}

	_, ok := m.users[id]
	delete(m.users, id)
	return ok, nil
}

func (m *memUserRepo) CountUsers(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.users)), nil
}

type memSettingsRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{settings: make(map[string]string)}
}

func (m *memSettingsRepo) EnsureTable(context.Context) error { return nil }

func (m *memSettingsRepo) ListSettings(context.Context) ([]models.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	settings := make([]models.Setting, 0, len(m.settings))
	for k, v := range m.settings {
		settings = append(settings, models.Setting{Key: k, Value: v})
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}

func (m *memSettingsRepo) UpsertSetting(_ context.Context, s models.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[s.Key] = s.Value
	return nil
}

// ---- Health fakes ----

type fakeDatabase struct {
	now time.Time
	err error
}

func (f *fakeDatabase) Ping(context.Context) error { return f.err }

func (f *fakeDatabase) Now(context.Context) (time.Time, error) { return f.now, f.err }

type fakeSchema struct {
	calls int
	err   error
}

func (f *fakeSchema) EnsureSchema(context.Context) error {
	f.calls++
	return f.err
}

// ---- Test server ----

type testEnv struct {
	users    *memUserRepo
	settings *memSettingsRepo
	db       *fakeDatabase
	schema   *fakeSchema
	cfg      *config.StructuredConfig
	services *service.Services
	router   http.Handler
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Env:           "test",
			JWTSecret:     "handler-test-secret",
			TokenIssuer:   "rewards-backend",
			TokenDuration: 12 * time.Hour,
			BcryptCost:    bcrypt.MinCost,
			UsersPageSize: 100,
			Version:       "v-test",
		},
		Server: config.Server{
			AllowedOrigin:  "*",
			RequestTimeout: 5 * time.Second,
		},
	}
}

// newTestEnv wires the real services over in-memory repositories. The
// optional mutate hook adjusts the configuration before wiring.
func newTestEnv(t *testing.T, mutate ...func(*config.StructuredConfig)) *testEnv {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	env := &testEnv{
		users:    newMemUserRepo(),
		settings: newMemSettingsRepo(),
		db:       &fakeDatabase{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
		schema:   &fakeSchema{},
		cfg:      cfg,
	}

	log := logger.Nop()
	validator := validators.NewRequestValidator()
	appInfo, err := service.NewAppInfoService(cfg.App, log)
	require.NoError(t, err)

	env.services = &service.Services{
		AuthService:     service.NewAuthService(env.users, validator, cfg.App, log),
		UserService:     service.NewUserService(env.users, validator, cfg.App, log),
		SettingsService: service.NewSettingsService(env.settings, validator, log),
		HealthService:   service.NewHealthService(env.db, env.schema, log),
		AppInfoService:  appInfo,
	}

	env.router = NewHandler(env.services, cfg.Server, nil, log).Init()
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// registerUser registers a user through the API and returns the token.
func (e *testEnv) registerUser(t *testing.T, name, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	require.False(t, resp.OK)
	require.NotEmpty(t, resp.Error)
	return resp
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
