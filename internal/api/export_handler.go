package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cvlab/internal/api/middleware"
	"cvlab/internal/fonts"
	"cvlab/internal/pdf"
	"cvlab/internal/store"
	"cvlab/internal/templates"
)

// ExportHandler renders the persisted document through the print pipeline
// and streams the PDF back in the same request. A copy lands in object
// storage so the download-link endpoint can serve it again later.
type ExportHandler struct {
	store     store.Store
	generator pdf.Generator
	storage   ObjectStorage
}

func NewExportHandler(documentStore store.Store, generator pdf.Generator, storageClient ObjectStorage) *ExportHandler {
	return &ExportHandler{
		store:     documentStore,
		generator: generator,
		storage:   storageClient,
	}
}

// Export handles GET /export/:id. The export always reads the persisted
// snapshot; unsaved editor state is not part of it.
func (h *ExportHandler) Export(c *gin.Context) {
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
	logger := middleware.LoggerFromContext(c)

	doc, err := h.store.Get(ctx, id, userID)
	if err != nil {
		respondExportStoreError(c, err)
		return
	}

	kind, _ := templates.ParseKind(doc.TemplateID)
	font, _ := fonts.Resolve(doc.FontFamily)

	var buf bytes.Buffer
	if err := templates.RenderPrint(&buf, kind, templates.Input{
		Title:   doc.Title,
		Content: doc.Content,
		Font:    font,
	}); err != nil {
		logger.Error("render print markup failed", "error", err)
		Internal(c, "failed to render resume")
		return
	}

	pdfBytes, err := h.generator.PDF(buf.String())
	if err != nil {
		logger.Error("generate pdf failed", "error", err)
		Internal(c, "failed to generate pdf")
		return
	}

	filename := exportFilename(doc.Title, doc.TemplateID)

	objectKey := fmt.Sprintf("exports/%d/%s", doc.ID, filename)
	if _, err := h.storage.UploadFile(ctx, objectKey, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		// The client still gets its PDF; only the stored copy is lost.
		logger.Warn("store exported pdf failed", "error", err)
	} else if err := h.store.Update(ctx, doc.ID, userID, store.Update{PdfObjectKey: &objectKey}); err != nil {
		logger.Warn("record pdf object key failed", "error", err)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func respondExportStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrNotOwned) {
		NotFound(c, "resume not found")
		return
	}
	Internal(c, "failed to query resume")
}

// exportFilename derives the download name from the title: every
// non-alphanumeric character becomes an underscore, then the template id is
// appended.
func exportFilename(title, templateID string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "resume"
	}
	return name + "_" + templateID + ".pdf"
}
