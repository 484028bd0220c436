package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/evidencija/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHandlers satisfies every handler interface with a fixed 200 response so
// the tests observe only the router's middleware chain.
type stubHandlers struct{}

func (stubHandlers) serve(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s stubHandlers) Register(w http.ResponseWriter, r *http.Request)            { s.serve(w, r) }
func (s stubHandlers) Login(w http.ResponseWriter, r *http.Request)               { s.serve(w, r) }
func (s stubHandlers) LoginWithGoogle(w http.ResponseWriter, r *http.Request)     { s.serve(w, r) }
func (s stubHandlers) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) { s.serve(w, r) }
func (s stubHandlers) Logout(w http.ResponseWriter, r *http.Request)              { s.serve(w, r) }
func (s stubHandlers) RefreshToken(w http.ResponseWriter, r *http.Request)        { s.serve(w, r) }
func (s stubHandlers) Me(w http.ResponseWriter, r *http.Request)                  { s.serve(w, r) }
func (s stubHandlers) List(w http.ResponseWriter, r *http.Request)                { s.serve(w, r) }
func (s stubHandlers) Create(w http.ResponseWriter, r *http.Request)              { s.serve(w, r) }
func (s stubHandlers) Update(w http.ResponseWriter, r *http.Request)              { s.serve(w, r) }
func (s stubHandlers) Delete(w http.ResponseWriter, r *http.Request)              { s.serve(w, r) }
func (s stubHandlers) Deactivate(w http.ResponseWriter, r *http.Request)          { s.serve(w, r) }
func (s stubHandlers) ResetPassword(w http.ResponseWriter, r *http.Request)       { s.serve(w, r) }
func (s stubHandlers) CheckIn(w http.ResponseWriter, r *http.Request)             { s.serve(w, r) }
func (s stubHandlers) CheckOut(w http.ResponseWriter, r *http.Request)            { s.serve(w, r) }
func (s stubHandlers) GetRange(w http.ResponseWriter, r *http.Request)            { s.serve(w, r) }
func (s stubHandlers) GetStats(w http.ResponseWriter, r *http.Request)            { s.serve(w, r) }
func (s stubHandlers) ExportICS(w http.ResponseWriter, r *http.Request)           { s.serve(w, r) }
func (s stubHandlers) Decide(w http.ResponseWriter, r *http.Request)              { s.serve(w, r) }
func (s stubHandlers) Sync(w http.ResponseWriter, r *http.Request)                { s.serve(w, r) }

func newTestRouter() (*chi.Mux, jwt.Service) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	stub := stubHandlers{}
	router := NewRouter(
		RouterConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			Environment:    "test",
		},
		jwtService,
		stub,
		stub,
		stub,
		stub,
		stub,
		stub,
		stub,
	)
	return router, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("01890000-0000-7000-8000-0000000000aa", "caller@example.com", role)
	require.NoError(t, err)
	return token
}

func TestRouterRoleGates(t *testing.T) {
	router, jwtService := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		role       user.Role
		wantStatus int
	}{
		{"weather sync rejects employee", http.MethodPost, "/api/v1/weather/sync", user.RoleEmployee, http.StatusForbidden},
		{"weather sync rejects manager", http.MethodPost, "/api/v1/weather/sync", user.RoleManager, http.StatusForbidden},
		{"weather sync allows admin", http.MethodPost, "/api/v1/weather/sync", user.RoleAdmin, http.StatusOK},
		{"weather range allows employee", http.MethodGet, "/api/v1/weather", user.RoleEmployee, http.StatusOK},
		{"holiday sync rejects employee", http.MethodPost, "/api/v1/holidays/sync", user.RoleEmployee, http.StatusForbidden},
		{"holiday sync allows admin", http.MethodPost, "/api/v1/holidays/sync", user.RoleAdmin, http.StatusOK},
		{"user create rejects manager", http.MethodPost, "/api/v1/users", user.RoleManager, http.StatusForbidden},
		{"user create allows admin", http.MethodPost, "/api/v1/users", user.RoleAdmin, http.StatusOK},
		{"wfh decision rejects employee", http.MethodPost, "/api/v1/wfh-requests/some-id/decision", user.RoleEmployee, http.StatusForbidden},
		{"wfh decision allows manager", http.MethodPost, "/api/v1/wfh-requests/some-id/decision", user.RoleManager, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, tt.role))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouterRequiresToken(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendances", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
