package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func ok(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", ok)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = serve(r, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))
	r.GET("/boom", func(c *ginext.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(p *mocks.MockTokenParser)
		code   int
	}{
		{"no header", "", func(*mocks.MockTokenParser) {}, http.StatusUnauthorized},
		{"not bearer", "Basic abc", func(*mocks.MockTokenParser) {}, http.StatusUnauthorized},
		{
			"bad token", "Bearer bad",
			func(p *mocks.MockTokenParser) {
				p.EXPECT().ParseToken("bad").Return(nil, domain.ErrInvalidToken)
			},
			http.StatusUnauthorized,
		},
		{
			"valid", "Bearer good",
			func(p *mocks.MockTokenParser) {
				p.EXPECT().ParseToken("good").Return(&domain.AdminClaims{AdminID: "a1", Role: domain.AdminRoleAdmin}, nil)
			},
			http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := mocks.NewMockTokenParser(t)
			tt.setup(parser)

			r := ginext.New("test")
			r.GET("/admin", AdminAuth(parser), ok)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name string
		role domain.AdminRole
		code int
	}{
		{"manager cannot manage rooms", domain.AdminRoleManager, http.StatusForbidden},
		{"admin manages rooms", domain.AdminRoleAdmin, http.StatusOK},
		{"super admin has everything", domain.AdminRoleSuperAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := mocks.NewMockTokenParser(t)
			parser.EXPECT().ParseToken("token").Return(&domain.AdminClaims{AdminID: "a1", Role: tt.role}, nil)

			r := ginext.New("test")
			r.DELETE("/rooms/:id", AdminAuth(parser), RequirePermission(domain.PermissionManageRooms), ok)

			req := httptest.NewRequest(http.MethodDelete, "/rooms/1", nil)
			req.Header.Set("Authorization", "Bearer token")
			w := serve(r, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRequirePermission_AnyOf(t *testing.T) {
	parser := mocks.NewMockTokenParser(t)
	parser.EXPECT().ParseToken("token").Return(&domain.AdminClaims{AdminID: "a1", Role: domain.AdminRoleManager}, nil)

	r := ginext.New("test")
	r.PATCH("/bookings/:id", AdminAuth(parser),
		RequirePermission(domain.PermissionUpdateBookingStatus, domain.PermissionManageBookings), ok)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/1", nil)
	req.Header.Set("Authorization", "Bearer token")

	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestRequirePermission_WithoutAuth(t *testing.T) {
	r := ginext.New("test")
	r.GET("/", RequirePermission(domain.PermissionViewDashboard), ok)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	t.Run("no bucket passes through", func(t *testing.T) {
		r := ginext.New("test")
		r.POST("/bookings", RateLimit(nil, time.Second, newTestLogger(t)), ok)

		w := serve(r, httptest.NewRequest(http.MethodPost, "/bookings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		bucket := mocks.NewMockTokenBucket(t)
		bucket.EXPECT().Allow(mock.Anything, mock.Anything).Return(false, nil)

		r := ginext.New("test")
		r.POST("/bookings", RateLimit(bucket, 2*time.Second, newTestLogger(t)), ok)

		w := serve(r, httptest.NewRequest(http.MethodPost, "/bookings", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
	})

	t.Run("redis error fails open", func(t *testing.T) {
		bucket := mocks.NewMockTokenBucket(t)
		bucket.EXPECT().Allow(mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))

		r := ginext.New("test")
		r.POST("/bookings", RateLimit(bucket, time.Second, newTestLogger(t)), ok)

		w := serve(r, httptest.NewRequest(http.MethodPost, "/bookings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORS_Preflight(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.POST("/bookings", ok)

	req := httptest.NewRequest(http.MethodOptions, "/bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
