package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestListTemplatesReturnsAllLayouts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/templates", nil)

	h.ListTemplates(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []templateItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("got %d templates, want 6", len(items))
	}
	if items[0].ID != "lab-protocol" {
		t.Fatalf("first template = %q, want lab-protocol", items[0].ID)
	}
	for _, item := range items {
		if item.Name == "" {
			t.Fatalf("template %q has empty name", item.ID)
		}
	}
}

func TestListFontsIncludesFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/fonts", nil)

	h.ListFonts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []fontItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 8 {
		t.Fatalf("got %d fonts, want 8", len(items))
	}
	found := false
	for _, item := range items {
		if item.ID == "archivo" {
			found = true
			if item.StylesheetURL == "" || item.Stack == "" {
				t.Fatalf("archivo entry incomplete: %+v", item)
			}
		}
	}
	if !found {
		t.Fatal("fallback font missing from list")
	}
}
