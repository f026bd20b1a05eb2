package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bankcards/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock. Times are reported in UTC so that
// card expiry dates and transaction timestamps compare the same way they are
// stored.
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a UTC time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{location: time.UTC}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
