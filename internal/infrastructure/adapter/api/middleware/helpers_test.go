package middleware

import (
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
	"github.com/amirhossein-jamali/bankcards/internal/infrastructure/adapter/api/httperr"
	coremocks "github.com/amirhossein-jamali/bankcards/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

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
	clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(15 * time.Millisecond)).Maybe()
	return clock
}

func newTestRenderer(t *testing.T) *httperr.Renderer {
	return httperr.NewRenderer(newQuietLogger(t), newFixedClock(t))
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
