package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvlab/internal/database"
	"cvlab/internal/errcode"
	"cvlab/internal/fonts"
	"cvlab/internal/pdf"
	"cvlab/internal/resume"
	"cvlab/internal/storage"
	"cvlab/internal/tasks"
	"cvlab/internal/templates"
)

const (
	previewQuality = 80
	presignTTL     = 7 * 24 * time.Hour
)

// PreviewTaskHandler consumes preview generation tasks: it renders the
// persisted resume with its layout, captures a JPEG of the sheet and stores
// the result, then notifies the owner over Redis Pub/Sub.
type PreviewTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	generator   pdf.Generator
	logger      *slog.Logger
}

func NewPreviewTaskHandler(
	db *gorm.DB,
	storageClient *storage.Client,
	redisClient *redis.Client,
	generator pdf.Generator,
	logger *slog.Logger,
) *PreviewTaskHandler {
	return &PreviewTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		generator:   generator,
		logger:      logger,
	}
}

// ProcessTask implements asynq.Handler.
func (h *PreviewTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PreviewGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("resume_id", int(payload.ResumeID)),
	)
	log.Info("starting preview generation task")

	var record database.Resume
	if err := h.db.WithContext(ctx).First(&record, payload.ResumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("resume not found, skipping task")
			return nil
		}
		log.Error("query resume failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.Uint64("user_id", uint64(record.UserID)))

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAttempt(ctx) {
			return
		}
		notify := PreviewNotifyMessage{
			Status:        "error",
			ResumeID:      record.ID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishNotify(ctx, record.UserID, notify); err != nil {
			log.Error("publish preview error notification failed", slog.Any("error", err))
		}
	}()

	html, fontFellBack, err := renderResumeHTML(&record)
	if err != nil {
		log.Error("render resume html failed", slog.Any("error", err))
		return err
	}

	previewBytes, err := h.generator.Screenshot(html, previewQuality)
	if err != nil {
		log.Error("capture preview screenshot failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("thumbnails/resume/%d/preview.jpg", record.ID)
	if _, err := h.storage.UploadFile(ctx, objectName, bytes.NewReader(previewBytes), int64(len(previewBytes)), "image/jpeg"); err != nil {
		log.Error("upload preview image failed", slog.Any("error", err))
		return err
	}

	presignedURL, err := h.storage.GeneratePresignedURL(ctx, objectName, presignTTL)
	if err != nil {
		log.Error("generate preview presigned url failed", slog.Any("error", err))
		return err
	}

	if err := h.db.WithContext(ctx).Model(&record).Updates(map[string]any{
		"preview_image_url":  presignedURL,
		"preview_object_key": objectName,
	}).Error; err != nil {
		log.Error("update resume preview url failed", slog.Any("error", err))
		return err
	}

	notify := PreviewNotifyMessage{
		Status:          "completed",
		ResumeID:        record.ID,
		CorrelationID:   payload.CorrelationID,
		PreviewImageURL: presignedURL,
		ErrorCode:       errcode.OK,
	}
	if fontFellBack {
		notify.ErrorCode = errcode.FontFallback
		notify.ErrorMessage = "unknown font family, rendered with the fallback"
	}
	if err := h.publishNotify(ctx, record.UserID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("preview generation task completed")
	return nil
}

// renderResumeHTML projects a persisted record through the print pipeline.
// Unknown template ids fall back to the default layout, unknown fonts to the
// fallback font; both are soft failures.
func renderResumeHTML(record *database.Resume) (html string, fontFellBack bool, err error) {
	var content resume.Content
	if len(record.Content) > 0 {
		if err := json.Unmarshal(record.Content, &content); err != nil {
			return "", false, fmt.Errorf("decode resume content: %w", err)
		}
	}

	kind, _ := templates.ParseKind(record.TemplateID)
	font, known := fonts.Resolve(record.FontFamily)

	var buf bytes.Buffer
	if err := templates.RenderPrint(&buf, kind, templates.Input{
		Title:   record.Title,
		Content: content,
		Font:    font,
	}); err != nil {
		return "", false, err
	}
	return buf.String(), !known, nil
}

func (h *PreviewTaskHandler) publishNotify(ctx context.Context, userID uint, notify PreviewNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
