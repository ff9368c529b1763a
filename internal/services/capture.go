package services

//go:generate mockgen -source=capture.go -destination=capture_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/divergent-flow/internal/logger"
	"github.com/sbilibin2017/divergent-flow/internal/models"
	"github.com/segmentio/kafka-go"
)

// CaptureReader defines read-only operations for captures.
type CaptureReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Capture, error)
	ListByUser(ctx context.Context, userID uuid.UUID, migrated *bool) ([]models.Capture, error)
}

// CaptureWriter defines write operations for captures.
type CaptureWriter interface {
	Save(ctx context.Context, capture *models.Capture) (*models.Capture, error)
	Update(ctx context.Context, update models.CaptureUpdate) (*models.Capture, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CaptureService handles capture operations and publishes capture events.
type CaptureService struct {
	reader      CaptureReader
	writer      CaptureWriter
	kafkaWriter KafkaWriter
}

// NewCaptureService creates a new CaptureService. kafkaWriter may be nil.
func NewCaptureService(reader CaptureReader, writer CaptureWriter, kafkaWriter KafkaWriter) *CaptureService {
	return &CaptureService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a capture event to Kafka.
func (s *CaptureService) publishEvent(ctx context.Context, operation string, captureID, userID uuid.UUID) {
	event := models.CaptureEvent{
		EventID:   uuid.NewString(),
		Operation: operation,
		CaptureID: captureID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "operation", operation)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal capture event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.CaptureID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish capture event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Capture event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

// CreateCapture stores a new capture for a user.
func (s *CaptureService) CreateCapture(ctx context.Context, userID uuid.UUID, rawText string, migratedDate *time.Time) (*models.Capture, error) {
	if userID == uuid.Nil || strings.TrimSpace(rawText) == "" {
		return nil, ErrCaptureInvalid
	}

	capture, err := s.writer.Save(ctx, &models.Capture{
		UserID:       userID,
		RawText:      rawText,
		MigratedDate: migratedDate,
	})
	if err != nil {
		logger.Log.Errorw("failed to save capture", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.CaptureCreated, capture.ID, capture.UserID)
	return capture, nil
}

// GetCaptureByID returns a capture, or nil when it does not exist.
func (s *CaptureService) GetCaptureByID(ctx context.Context, id uuid.UUID) (*models.Capture, error) {
	capture, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get capture", "captureID", id, "error", err)
		return nil, err
	}
	return capture, nil
}

// UpdateCapture applies a partial update to a capture.
func (s *CaptureService) UpdateCapture(ctx context.Context, update models.CaptureUpdate) (*models.Capture, error) {
	if update.ID == uuid.Nil {
		return nil, ErrIDRequired
	}

	capture, err := s.writer.Update(ctx, update)
	if err != nil {
		logger.Log.Errorw("failed to update capture", "captureID", update.ID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.CaptureUpdated, capture.ID, capture.UserID)
	return capture, nil
}

// DeleteCapture removes a capture.
func (s *CaptureService) DeleteCapture(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}

	capture, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get capture before delete", "captureID", id, "error", err)
		return err
	}
	if capture == nil {
		return models.ErrNotFound
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete capture", "captureID", id, "error", err)
		return err
	}

	s.publishEvent(ctx, models.CaptureDeleted, id, capture.UserID)
	return nil
}

// ListCapturesByUser returns the captures of a user, newest first.
func (s *CaptureService) ListCapturesByUser(ctx context.Context, userID uuid.UUID, migrated *bool) ([]models.Capture, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}

	captures, err := s.reader.ListByUser(ctx, userID, migrated)
	if err != nil {
		logger.Log.Errorw("failed to list captures", "userID", userID, "error", err)
		return nil, err
	}
	return captures, nil
}
