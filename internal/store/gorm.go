package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cvlab/internal/database"
	"cvlab/internal/resume"
)

// gormStore implements Store on top of the shared GORM connection.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db in the persistence gateway.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, ownerID uint, title, templateID, fontFamily string) (*Document, error) {
	content := resume.Content{}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal empty content: %w", err)
	}

	row := database.Resume{
		Title:      title,
		TemplateID: templateID,
		FontFamily: fontFamily,
		Content:    datatypes.JSON(raw),
		UserID:     ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return toDocument(row)
}

func (s *gormStore) Get(ctx context.Context, id, ownerID uint) (*Document, error) {
	row, err := s.fetchOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return toDocument(*row)
}

func (s *gormStore) Update(ctx context.Context, id, ownerID uint, upd Update) error {
	row, err := s.fetchOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.TemplateID != nil {
		updates["template_id"] = *upd.TemplateID
	}
	if upd.FontFamily != nil {
		updates["font_family"] = *upd.FontFamily
	}
	if upd.Content != nil {
		raw, err := json.Marshal(*upd.Content)
		if err != nil {
			return fmt.Errorf("marshal content: %w", err)
		}
		updates["content"] = datatypes.JSON(raw)
	}
	if upd.PdfObjectKey != nil {
		updates["pdf_object_key"] = *upd.PdfObjectKey
	}
	if upd.PreviewImageURL != nil {
		updates["preview_image_url"] = *upd.PreviewImageURL
	}
	if upd.PreviewObjectKey != nil {
		updates["preview_object_key"] = *upd.PreviewObjectKey
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		return fmt.Errorf("update resume %d: %w", id, err)
	}
	return nil
}

func (s *gormStore) ListByOwner(ctx context.Context, ownerID uint) ([]Document, error) {
	var rows []database.Resume
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := toDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (s *gormStore) Delete(ctx context.Context, id, ownerID uint) error {
	row, err := s.fetchOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&database.Resume{}, row.ID).Error; err != nil {
		return fmt.Errorf("delete resume %d: %w", id, err)
	}
	return nil
}

// fetchOwned loads the row by primary key and then checks ownership, so a
// foreign document is reported as ErrNotOwned rather than ErrNotFound.
func (s *gormStore) fetchOwned(ctx context.Context, id, ownerID uint) (*database.Resume, error) {
	var row database.Resume
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query resume %d: %w", id, err)
	}
	if row.UserID != ownerID {
		return nil, ErrNotOwned
	}
	return &row, nil
}

func toDocument(row database.Resume) (*Document, error) {
	var content resume.Content
	if len(row.Content) > 0 {
		if err := json.Unmarshal(row.Content, &content); err != nil {
			return nil, fmt.Errorf("decode resume %d content: %w", row.ID, err)
		}
	}
	return &Document{
		ID:               row.ID,
		OwnerID:          row.UserID,
		Title:            row.Title,
		TemplateID:       row.TemplateID,
		FontFamily:       row.FontFamily,
		Content:          content,
		PdfObjectKey:     row.PdfObjectKey,
		PreviewImageURL:  row.PreviewImageURL,
		PreviewObjectKey: row.PreviewObjectKey,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}
