package adapter

import (
	"context"

	"github.com/MKhiriev/cf-cookie-client/models"
)

// ServiceAdapter is the client-side view of the external cookie refresh
// server. Implementations translate calls into the server's fixed HTTP
// contract; the server itself (cookie cache, browser automation) is an
// opaque collaborator.
type ServiceAdapter interface {
	// Refresh forces the server to regenerate cookies for targetURL,
	// optionally routing its browser traffic through proxy. A refresh
	// typically takes 10-30 seconds on the server side.
	Refresh(ctx context.Context, targetURL, proxy string) (models.RefreshResult, error)

	// Cookies returns the server's cached cookie set for targetURL.
	Cookies(ctx context.Context, targetURL string) (models.CookiesResponse, error)

	// Stats returns a snapshot of the server's cookie cache.
	Stats(ctx context.Context) (models.CacheStats, error)

	// Probe performs a short connectivity check against the server.
	Probe(ctx context.Context) error
}
