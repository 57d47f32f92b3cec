package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoginPageRendersForm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewPageHandler(newTestDocumentStore(t))

	c, w := testContext(t, http.MethodGet, "/login", nil, 0)
	h.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="login-form"`) {
		t.Error("login form missing")
	}
	if !strings.Contains(body, "/v1/auth/login") {
		t.Error("login page should post to the auth endpoint")
	}
}

func TestBuilderPageIsSelfContained(t *testing.T) {
	gin.SetMode(gin.TestMode)
	documentStore := newTestDocumentStore(t)
	h := NewPageHandler(documentStore)

	doc, err := documentStore.Create(context.Background(), 1, "Mine", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/builder/1", nil, 1)
	withIDParam(c, doc.ID)
	h.Builder(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	// The shell ships its own bootstrap; there is no static asset route.
	if strings.Contains(body, "/static/") {
		t.Error("builder page references a static asset the server does not serve")
	}
	if !strings.Contains(body, "/v1/ws/editor/") {
		t.Error("builder page should open the editor websocket")
	}
	if !strings.Contains(body, "/v1/auth/refresh") {
		t.Error("builder page should obtain an access token via refresh")
	}
	if !strings.Contains(body, `data-resume-id="1"`) {
		t.Error("builder page should carry the resume id")
	}
}

func TestBuilderPageMasksForeignDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	documentStore := newTestDocumentStore(t)
	h := NewPageHandler(documentStore)

	doc, err := documentStore.Create(context.Background(), 1, "Mine", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	c, w := testContext(t, http.MethodGet, "/builder/1", nil, 2)
	withIDParam(c, doc.ID)
	h.Builder(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
