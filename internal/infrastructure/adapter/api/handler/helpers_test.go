package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/entity"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/validation"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	userIdentity  = &entity.Identity{UserID: 7, Username: "alice", Role: entity.RoleUser, Authorities: []string{"ROLE_USER"}}
	adminIdentity = &entity.Identity{UserID: 1, Username: "admin", Role: entity.RoleAdmin, Authorities: []string{"ROLE_ADMIN"}}
)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newFixedClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	return clock
}

func newTestRenderer(t *testing.T) *httperr.Renderer {
	return httperr.NewRenderer(newQuietLogger(t), newFixedClock(t))
}

// newTestRouter attaches identity (when set) to every request, the way the auth gate would
func newTestRouter(t *testing.T, identity *entity.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterWithGin())

	router := gin.New()
	if identity != nil {
		router.Use(func(c *gin.Context) { middleware.SetIdentity(c, identity) })
	}
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var body T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
