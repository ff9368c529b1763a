package repositories

import (
	"context"
	"time"

	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// VersionRepository reports static build information.
type VersionRepository struct {
	version string
	service string
}

func NewVersionRepository(version, service string) *VersionRepository {
	return &VersionRepository{version: version, service: service}
}

// GetVersionInfo returns the version info stamped with the current UTC time.
func (r *VersionRepository) GetVersionInfo(ctx context.Context) (*models.VersionInfo, error) {
	return &models.VersionInfo{
		Version:   r.version,
		Service:   r.service,
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}, nil
}
