package handlers

//go:generate mockgen -source=version.go -destination=version_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/divergent-flow/internal/models"
)

// VersionGetter defines the interface that the service must implement.
type VersionGetter interface {
	GetVersion(ctx context.Context) (*models.VersionInfo, error)
}

// NewVersionHandler returns an HTTP handler reporting the service version.
// @Summary Get version information
// @Tags Version
// @Produce json
// @Success 200 {object} models.VersionInfo
// @Failure 500 {object} handlers.ErrorResponse "Failed to get version information"
// @Router /v1/version [get]
func NewVersionHandler(svc VersionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := svc.GetVersion(r.Context())
		if err != nil {
			requestLog(r).Errorw("failed to get version", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to get version information")
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}
