package services

//go:generate mockgen -source=version.go -destination=version_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// VersionReader provides build information.
type VersionReader interface {
	GetVersionInfo(ctx context.Context) (*models.VersionInfo, error)
}

type VersionService struct {
	reader VersionReader
}

func NewVersionService(reader VersionReader) *VersionService {
	return &VersionService{reader: reader}
}

// GetVersion returns version information of the running service.
func (s *VersionService) GetVersion(ctx context.Context) (*models.VersionInfo, error) {
	info, err := s.reader.GetVersionInfo(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get version info", "err", err)
		return nil, err
	}
	if info == nil {
		return nil, ErrVersionUnavailable
	}
	return info, nil
}
