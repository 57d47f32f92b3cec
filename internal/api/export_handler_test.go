package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cvlab/internal/store"
)

type fakeGenerator struct {
	pdfErr error
	htmls  []string
}

func (g *fakeGenerator) PDF(html string) ([]byte, error) {
	if g.pdfErr != nil {
		return nil, g.pdfErr
	}
	g.htmls = append(g.htmls, html)
	return []byte("%PDF-1.7 fake"), nil
}

func (g *fakeGenerator) Screenshot(string, int) ([]byte, error) {
	return []byte("jpeg"), nil
}

func TestExportStreamsPDFAndStoresCopy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	documentStore := newTestDocumentStore(t)
	storage := newFakeStorage()
	generator := &fakeGenerator{}
	h := NewExportHandler(documentStore, generator, storage)

	doc, err := documentStore.Create(context.Background(), 1, "Jane Doe CV!", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/export/1", nil, 1)
	withIDParam(c, doc.ID)
	h.Export(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	wantDisposition := `attachment; filename="Jane_Doe_CV__lab-protocol.pdf"`
	if got := w.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("disposition = %q, want %q", got, wantDisposition)
	}

	wantKey := "exports/1/Jane_Doe_CV__lab-protocol.pdf"
	if _, ok := storage.uploaded[wantKey]; !ok {
		t.Errorf("stored copy missing, uploads = %v", storage.uploaded)
	}
	stored, err := documentStore.Get(context.Background(), doc.ID, 1)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PdfObjectKey != wantKey {
		t.Errorf("pdf object key = %q, want %q", stored.PdfObjectKey, wantKey)
	}
}

func TestExportFallsBackOnUnknownTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	documentStore := newTestDocumentStore(t)
	generator := &fakeGenerator{}
	h := NewExportHandler(documentStore, generator, newFakeStorage())

	doc, err := documentStore.Create(context.Background(), 1, "Mine", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	// The store does not normalize template ids, so a row can carry one
	// that no longer maps to a layout.
	bogus := "letterpress-2019"
	if err := documentStore.Update(context.Background(), doc.ID, 1, store.Update{TemplateID: &bogus}); err != nil {
		t.Fatalf("update: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/export/1", nil, 1)
	withIDParam(c, doc.ID)
	h.Export(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if len(generator.htmls) != 1 {
		t.Fatalf("rendered %d documents, want 1", len(generator.htmls))
	}
	if !strings.Contains(generator.htmls[0], `class="lp"`) {
		t.Error("unknown template id should render the default layout")
	}
}

func TestExportMasksForeignDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	documentStore := newTestDocumentStore(t)
	h := NewExportHandler(documentStore, &fakeGenerator{}, newFakeStorage())

	doc, err := documentStore.Create(context.Background(), 1, "Mine", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/export/1", nil, 2)
	withIDParam(c, doc.ID)
	h.Export(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestExportReportsGeneratorFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	documentStore := newTestDocumentStore(t)
	h := NewExportHandler(documentStore, &fakeGenerator{pdfErr: errors.New("chromium crashed")}, newFakeStorage())

	doc, err := documentStore.Create(context.Background(), 1, "Mine", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/export/1", nil, 1)
	withIDParam(c, doc.ID)
	h.Export(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		title      string
		templateID string
		want       string
	}{
		{"My Resume", "lab-protocol", "My_Resume_lab-protocol.pdf"},
		{"john.doe@work (2024)", "mono-stack", "john_doe_work__2024__mono-stack.pdf"},
		{"", "clean-slate", "resume_clean-slate.pdf"},
		{"日本語", "bold-impact", "____bold-impact.pdf"},
	}
	for _, tc := range cases {
		if got := exportFilename(tc.title, tc.templateID); got != tc.want {
			t.Errorf("exportFilename(%q, %q) = %q, want %q", tc.title, tc.templateID, got, tc.want)
		}
	}
}
