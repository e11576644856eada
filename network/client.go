// Package network provides the HTTP client shared by every remote API the catalog talks to.
package network

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/tubevault/tubevault/key"
)

// Client is shared by the platform and artwork clients so that they reuse connections.
// It carries no overall timeout; every call is bounded by WithTimeout instead.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 50
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}

// DefaultTimeout bounds a remote call when nothing is configured.
const DefaultTimeout = 30 * time.Second

// Timeout returns the configured per-call timeout.
func Timeout() time.Duration {
	if d := viper.GetDuration(key.NetworkFetchTimeout); d > 0 {
		return d
	}
	return DefaultTimeout
}

// WithTimeout derives a context bounded by the configured per-call timeout.
// A timed-out call fails on its own without affecting its siblings.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Timeout())
}
