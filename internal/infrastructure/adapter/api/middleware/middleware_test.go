package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/bankcards/internal/domain/error"
	applogger "github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestID(t *testing.T) {
	echo := func(c *gin.Context) {
		c.String(http.StatusOK, applogger.RequestIDFromContext(c.Request.Context()))
	}

	t.Run("should reuse the caller's request id", func(t *testing.T) {
		router := newTestRouter()
		router.Use(RequestID())
		router.GET("/", echo)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("should mint an id when none is sent", func(t *testing.T) {
		router := newTestRouter()
		router.Use(RequestID())
		router.GET("/", echo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, w.Body.String(), 36)
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("should turn a panic into a generic 500", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "nil map write" && f["path"] == "/boom"
		})).Once()

		router := newTestRouter()
		router.Use(ErrorHandler(logger, newTestRenderer(t)))
		router.GET("/boom", func(*gin.Context) { panic("nil map write") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, errs.ErrInternalServer.Error(), decodeError(t, w).Message)
	})
}

func TestLogger(t *testing.T) {
	t.Run("should log method, status and latency", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Info("Request processed", mock.MatchedBy(func(f map[string]any) bool {
			return f["method"] == http.MethodGet &&
				f["path"] == "/ok" &&
				f["status"] == http.StatusOK &&
				f["latency_ms"] == int64(15) &&
				f["status_text"] == "Success"
		})).Once()

		router := newTestRouter()
		router.Use(Logger(logger, newFixedClock(t)))
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should warn on server errors", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Warn("Request processed", mock.MatchedBy(func(f map[string]any) bool {
			return f["status_text"] == "Server Error"
		})).Once()

		router := newTestRouter()
		router.Use(Logger(logger, newFixedClock(t)))
		router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{101, "Informational"},
		{204, "Success"},
		{302, "Redirect"},
		{404, "Client Error"},
		{503, "Server Error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusText(tt.code))
	}
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		router := newTestRouter()
		router.Use(CORS(origins))
		router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("should answer preflight requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})

	t.Run("should echo an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		newRouter([]string{"https://app.example.com"}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should reject an unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		newRouter([]string{"https://app.example.com"}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should expose the request id header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		newRouter([]string{"*"}).ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(RequestIDHeader))
	})

	t.Run("should pass requests without an origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		w := httptest.NewRecorder()
		newRouter([]string{"https://app.example.com"}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
