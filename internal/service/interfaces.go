package service

import (
	"context"

	"github.com/MKhiriev/cf-cookie-client/models"
)

// Refresher is the slice of the server adapter the batch runner needs.
// Narrowing the dependency keeps batch tests free of HTTP machinery.
type Refresher interface {
	Refresh(ctx context.Context, targetURL, proxy string) (models.RefreshResult, error)
}
