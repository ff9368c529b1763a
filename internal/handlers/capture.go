package handlers

//go:generate mockgen -source=capture.go -destination=capture_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/auth"
	"github.com/sbilibin2017/divergent-flow/internal/models"
)

const msgCaptureNotFound = "Capture not found"

// CaptureCreator defines the interface that the service must implement.
type CaptureCreator interface {
	CreateCapture(ctx context.Context, userID uuid.UUID, rawText string, migratedDate *time.Time) (*models.Capture, error)
}

// CaptureGetter defines the interface that the service must implement.
type CaptureGetter interface {
	GetCaptureByID(ctx context.Context, id uuid.UUID) (*models.Capture, error)
}

// CaptureUpdater defines the interface that the service must implement.
type CaptureUpdater interface {
	UpdateCapture(ctx context.Context, update models.CaptureUpdate) (*models.Capture, error)
}

// CaptureDeleter defines the interface that the service must implement.
type CaptureDeleter interface {
	DeleteCapture(ctx context.Context, id uuid.UUID) error
}

// CaptureLister defines the interface that the service must implement.
type CaptureLister interface {
	ListCapturesByUser(ctx context.Context, userID uuid.UUID, migrated *bool) ([]models.Capture, error)
}

// CreateCaptureRequest represents the JSON body for creating a capture
// swagger:model CreateCaptureRequest
type CreateCaptureRequest struct {
	// Owner of the capture, defaults to the authenticated user
	UserID string `json:"userId" validate:"omitempty,uuid"`

	// Captured text
	// required: true
	RawText string `json:"rawText"`

	// Time the capture was migrated, null when it was not
	MigratedDate *time.Time `json:"migratedDate"`
}

// UpdateCaptureRequest represents the JSON body for updating a capture, absent fields are kept
// swagger:model UpdateCaptureRequest
type UpdateCaptureRequest struct {
	UserID       *string    `json:"userId" validate:"omitempty,uuid"`
	RawText      *string    `json:"rawText"`
	MigratedDate *time.Time `json:"migratedDate"`
}

// NewCreateCaptureHandler returns an HTTP handler creating a capture.
// @Summary Create a capture
// @Description Stores a raw note. The owner defaults to the authenticated user.
// @Tags Capture
// @Accept json
// @Produce json
// @Param request body handlers.CreateCaptureRequest true "Capture"
// @Success 201 {object} models.Capture
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /v1/capture [post]
// @Security BearerAuth
func NewCreateCaptureHandler(svc CaptureCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateCaptureRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		userID, _ := auth.UserIDFromContext(ctx)
		if req.UserID != "" {
			userID = uuid.MustParse(req.UserID)
		}

		capture, err := svc.CreateCapture(ctx, userID, req.RawText, req.MigratedDate)
		if err != nil {
			requestLog(r).Errorw("failed to create capture", "userID", userID, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, capture)
	}
}

// NewGetCaptureHandler returns an HTTP handler fetching a capture by id.
// @Summary Get a capture by ID
// @Tags Capture
// @Produce json
// @Param id path string true "Capture ID"
// @Success 200 {object} models.Capture
// @Failure 404 {object} handlers.ErrorResponse "Capture not found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /v1/capture/{id} [get]
// @Security BearerAuth
func NewGetCaptureHandler(svc CaptureGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, msgCaptureNotFound)
			return
		}

		capture, err := svc.GetCaptureByID(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if capture == nil {
			writeError(w, http.StatusNotFound, msgCaptureNotFound)
			return
		}

		writeJSON(w, http.StatusOK, capture)
	}
}

// NewUpdateCaptureHandler returns an HTTP handler applying a partial update to a capture.
// @Summary Update a capture
// @Tags Capture
// @Accept json
// @Produce json
// @Param id path string true "Capture ID"
// @Param request body handlers.UpdateCaptureRequest true "Fields to change"
// @Success 200 {object} models.Capture
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 404 {object} handlers.ErrorResponse "Capture not found"
// @Router /v1/capture/{id} [put]
// @Security BearerAuth
func NewUpdateCaptureHandler(svc CaptureUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		var req UpdateCaptureRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		update := models.CaptureUpdate{
			ID:           id,
			RawText:      req.RawText,
			MigratedDate: req.MigratedDate,
		}
		if req.UserID != nil {
			userID := uuid.MustParse(*req.UserID)
			update.UserID = &userID
		}

		capture, err := svc.UpdateCapture(r.Context(), update)
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgCaptureNotFound)
			return
		}
		if err != nil {
			requestLog(r).Errorw("failed to update capture", "captureID", id, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, capture)
	}
}

// NewDeleteCaptureHandler returns an HTTP handler deleting a capture.
// @Summary Delete a capture
// @Tags Capture
// @Param id path string true "Capture ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Capture not found"
// @Router /v1/capture/{id} [delete]
// @Security BearerAuth
func NewDeleteCaptureHandler(svc CaptureDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := uuidParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		err := svc.DeleteCapture(r.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgCaptureNotFound)
			return
		}
		if err != nil {
			requestLog(r).Errorw("failed to delete capture", "captureID", id, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewListMyCapturesHandler returns an HTTP handler listing the captures of the authenticated user.
// @Summary List my captures
// @Tags Capture
// @Produce json
// @Param migrated query bool false "Only migrated (true) or unmigrated (false) captures"
// @Success 200 {array} models.Capture
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Router /v1/capture [get]
// @Security BearerAuth
func NewListMyCapturesHandler(svc CaptureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := auth.UserIDFromContext(r.Context())
		listCaptures(w, r, svc, userID)
	}
}

// NewListUserCapturesHandler returns an HTTP handler listing the captures of a user.
// @Summary List captures of a user
// @Tags Capture
// @Produce json
// @Param userId path string true "User ID"
// @Param migrated query bool false "Only migrated (true) or unmigrated (false) captures"
// @Success 200 {array} models.Capture
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Router /v1/capture/user/{userId} [get]
// @Security BearerAuth
func NewListUserCapturesHandler(svc CaptureLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := uuidParam(r, "userId")
		if !ok {
			writeError(w, http.StatusBadRequest, "userId is required")
			return
		}
		listCaptures(w, r, svc, userID)
	}
}

func listCaptures(w http.ResponseWriter, r *http.Request, svc CaptureLister, userID uuid.UUID) {
	migrated, err := boolQuery(r, "migrated")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	captures, err := svc.ListCapturesByUser(r.Context(), userID, migrated)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, captures)
}
