package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/minio/minio-go/v7"

	"cvlab/internal/api/middleware"
	"cvlab/internal/fonts"
	"cvlab/internal/resume"
	"cvlab/internal/store"
	"cvlab/internal/tasks"
	"cvlab/internal/templates"
)

// ObjectStorage is the slice of the MinIO client the handlers need.
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedDownload(ctx context.Context, objectKey, filename string, duration time.Duration) (string, error)
	DeletePrefix(ctx context.Context, prefix string) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ResumeHandler serves the resume CRUD surface on top of the persistence
// gateway.
type ResumeHandler struct {
	store       store.Store
	storage     ObjectStorage
	asynqClient TaskEnqueuer
	maxResumes  int
}

func NewResumeHandler(documentStore store.Store, storageClient ObjectStorage, asynqClient TaskEnqueuer, maxResumes int) *ResumeHandler {
	return &ResumeHandler{
		store:       documentStore,
		storage:     storageClient,
		asynqClient: asynqClient,
		maxResumes:  maxResumes,
	}
}

var errInvalidResumeID = errors.New("invalid resume id")

type createResumeRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	TemplateID string `json:"template_id"`
	FontFamily string `json:"font_family"`
}

type updateResumeRequest struct {
	Title      *string         `json:"title"`
	TemplateID *string         `json:"template_id"`
	FontFamily *string         `json:"font_family"`
	Content    *resume.Content `json:"content"`
}

type resumeListItem struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	TemplateID      string    `json:"template_id"`
	PreviewImageURL string    `json:"preview_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type resumeResponse struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	TemplateID      string         `json:"template_id"`
	FontFamily      string         `json:"font_family"`
	Content         resume.Content `json:"content"`
	PreviewImageURL string         `json:"preview_image_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// CreateResume creates an empty document. Unknown template or font ids are
// normalized to the defaults rather than rejected.
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()

	docs, err := h.store.ListByOwner(ctx, userID)
	if err != nil {
		Internal(c, "failed to count resumes")
		return
	}
	if h.maxResumes > 0 && len(docs) >= h.maxResumes {
		Forbidden(c, "resume limit reached")
		return
	}

	kind, _ := templates.ParseKind(req.TemplateID)
	font, _ := fonts.Resolve(req.FontFamily)

	doc, err := h.store.Create(ctx, userID, req.Title, kind.ID(), font.ID)
	if err != nil {
		Internal(c, "failed to create resume")
		return
	}

	c.JSON(http.StatusCreated, newResumeResponse(doc))
}

// ListResumes lists the caller's documents, most recently edited first.
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	docs, err := h.store.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		Internal(c, "failed to list resumes")
		return
	}

	items := make([]resumeListItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, resumeListItem{
			ID:              d.ID,
			Title:           d.Title,
			TemplateID:      d.TemplateID,
			PreviewImageURL: d.PreviewImageURL,
			CreatedAt:       d.CreatedAt,
			UpdatedAt:       d.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, items)
}

// GetResume returns one document.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	doc, err := h.getOwnedResume(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, newResumeResponse(doc))
}

// UpdateResume applies a partial update. This is the REST fallback for
// clients not holding an editor websocket.
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	var req updateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	id, err := parseResumeID(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid resume id")
		return
	}

	ctx := c.Request.Context()

	upd := store.Update{Title: req.Title, Content: req.Content}
	if req.TemplateID != nil {
		kind, _ := templates.ParseKind(*req.TemplateID)
		normalized := kind.ID()
		upd.TemplateID = &normalized
	}
	if req.FontFamily != nil {
		font, _ := fonts.Resolve(*req.FontFamily)
		normalized := font.ID
		upd.FontFamily = &normalized
	}
	if req.Content != nil {
		req.Content.EnsureIDs()
	}

	if err := h.store.Update(ctx, id, userID, upd); err != nil {
		h.respondStoreError(c, err)
		return
	}

	doc, err := h.store.Get(ctx, id, userID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	h.enqueuePreview(c, doc.ID)
	c.JSON(http.StatusOK, newResumeResponse(doc))
}

// DeleteResume removes the document together with its stored artifacts.
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	doc, err := h.getOwnedResume(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.store.Delete(ctx, doc.ID, userID); err != nil {
		h.respondStoreError(c, err)
		return
	}

	logger := middleware.LoggerFromContext(c)
	for _, prefix := range artifactPrefixes(doc.ID) {
		if err := h.storage.DeletePrefix(ctx, prefix); err != nil {
			logger.Warn("delete resume artifacts failed", "prefix", prefix, "error", err)
		}
	}

	c.Status(http.StatusNoContent)
}

// Preview renders the on-screen projection of the persisted document.
func (h *ResumeHandler) Preview(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	doc, err := h.getOwnedResume(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	kind, _ := templates.ParseKind(doc.TemplateID)
	font, _ := fonts.Resolve(doc.FontFamily)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := templates.RenderScreen(c.Writer, kind, templates.Input{
		Title:   doc.Title,
		Content: doc.Content,
		Font:    font,
	}); err != nil {
		middleware.LoggerFromContext(c).Error("render preview failed", "error", err)
	}
}

// GetDownloadLink signs a short-lived download URL for the last exported
// PDF. 409 until the first export has run.
func (h *ResumeHandler) GetDownloadLink(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	doc, err := h.getOwnedResume(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.respondStoreError(c, err)
		return
	}

	if doc.PdfObjectKey == "" {
		Conflict(c, "pdf not ready")
		return
	}

	signedURL, err := h.storage.GeneratePresignedDownload(c.Request.Context(), doc.PdfObjectKey, exportFilename(doc.Title, doc.TemplateID), 5*time.Minute)
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

func (h *ResumeHandler) enqueuePreview(c *gin.Context, resumeID uint) {
	logger := middleware.LoggerFromContext(c)
	task, err := tasks.NewPreviewGenerateTask(resumeID, middleware.GetCorrelationID(c))
	if err != nil {
		logger.Error("create preview task failed", "error", err)
		return
	}
	if _, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		logger.Error("enqueue preview task failed", "error", err)
	}
}

func (h *ResumeHandler) getOwnedResume(ctx context.Context, idParam string, userID uint) (*store.Document, error) {
	id, err := parseResumeID(idParam)
	if err != nil {
		return nil, err
	}
	return h.store.Get(ctx, id, userID)
}

// respondStoreError masks wrong-owner access as 404 so document ids cannot
// be probed.
func (h *ResumeHandler) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidResumeID):
		BadRequest(c, "invalid resume id")
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNotOwned):
		NotFound(c, "resume not found")
	default:
		Internal(c, "failed to query resume")
	}
}

func parseResumeID(idParam string) (uint, error) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidResumeID
	}
	return uint(id), nil
}

func artifactPrefixes(resumeID uint) []string {
	id := strconv.FormatUint(uint64(resumeID), 10)
	return []string{
		"exports/" + id + "/",
		"thumbnails/resume/" + id + "/",
	}
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint64:
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}

func newResumeResponse(doc *store.Document) resumeResponse {
	return resumeResponse{
		ID:              doc.ID,
		Title:           doc.Title,
		TemplateID:      doc.TemplateID,
		FontFamily:      doc.FontFamily,
		Content:         doc.Content,
		PreviewImageURL: doc.PreviewImageURL,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}
