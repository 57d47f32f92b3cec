package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvlab/internal/fonts"
	"cvlab/internal/templates"
)

// CatalogHandler serves the static choices behind the builder's selectors.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

type templateItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fontItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Stack         string `json:"stack"`
	StylesheetURL string `json:"stylesheet_url"`
}

// ListTemplates returns every layout in selector order.
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	kinds := templates.Kinds()
	items := make([]templateItem, 0, len(kinds))
	for _, k := range kinds {
		items = append(items, templateItem{ID: k.ID(), Name: k.Name()})
	}
	c.JSON(http.StatusOK, items)
}

// ListFonts returns the embeddable font registry.
func (h *CatalogHandler) ListFonts(c *gin.Context) {
	list := fonts.List()
	items := make([]fontItem, 0, len(list))
	for _, f := range list {
		items = append(items, fontItem{
			ID:            f.ID,
			Name:          f.Name,
			Stack:         f.Stack,
			StylesheetURL: f.StylesheetURL,
		})
	}
	c.JSON(http.StatusOK, items)
}
