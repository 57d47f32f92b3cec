package store

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cvlab/internal/database"
	"cvlab/internal/resume"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.Resume{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(db)
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := s.Create(ctx, 1, "My Resume", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.ID == 0 {
		t.Fatal("create did not assign an id")
	}
	if !doc.Content.IsZero() {
		t.Error("new document should start with empty content")
	}

	got, err := s.Get(ctx, doc.ID, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "My Resume" || got.TemplateID != "lab-protocol" || got.FontFamily != "inter" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get(context.Background(), 999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestOwnershipIsEnforced(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := s.Create(ctx, 1, "Mine", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Get(ctx, doc.ID, 2); !errors.Is(err, ErrNotOwned) {
		t.Errorf("get foreign doc: err = %v, want ErrNotOwned", err)
	}
	title := "stolen"
	if err := s.Update(ctx, doc.ID, 2, Update{Title: &title}); !errors.Is(err, ErrNotOwned) {
		t.Errorf("update foreign doc: err = %v, want ErrNotOwned", err)
	}
	if err := s.Delete(ctx, doc.ID, 2); !errors.Is(err, ErrNotOwned) {
		t.Errorf("delete foreign doc: err = %v, want ErrNotOwned", err)
	}

	// The rightful owner is unaffected.
	got, err := s.Get(ctx, doc.ID, 1)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Title != "Mine" {
		t.Errorf("title = %q after failed foreign update", got.Title)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := s.Create(ctx, 1, "Draft", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	content := resume.Content{
		Experience: []resume.Experience{{ID: "e1", Position: "Engineer", Company: "Acme", Current: true, Highlights: []string{"Shipped X"}}},
	}
	tmpl := "mono-stack"
	if err := s.Update(ctx, doc.ID, 1, Update{TemplateID: &tmpl, Content: &content}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Get(ctx, doc.ID, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Draft" {
		t.Errorf("untouched title changed to %q", got.Title)
	}
	if got.TemplateID != "mono-stack" {
		t.Errorf("template = %q, want mono-stack", got.TemplateID)
	}
	if len(got.Content.Experience) != 1 || got.Content.Experience[0].Highlights[0] != "Shipped X" {
		t.Errorf("content round trip mismatch: %+v", got.Content)
	}
}

func TestListByOwnerScopesAndOrders(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Create(ctx, 1, "First", "lab-protocol", "inter"); err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := s.Create(ctx, 1, "Second", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, 2, "Other", "lab-protocol", "inter"); err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Second v2"
	if err := s.Update(ctx, second.ID, 1, Update{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}

	docs, err := s.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("list len = %d, want 2", len(docs))
	}
	for _, d := range docs {
		if d.OwnerID != 1 {
			t.Errorf("foreign document leaked into listing: %+v", d)
		}
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := s.Create(ctx, 1, "Gone", "lab-protocol", "inter")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Delete(ctx, doc.ID, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, doc.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v after delete, want ErrNotFound", err)
	}
}
