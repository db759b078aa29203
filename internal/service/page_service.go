package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nmewiki/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPageNotFound = errors.New("page not found")

// PageService owns the stored markup for every wiki page.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// Get fetches the record stored for name.
func (s *PageService) Get(ctx context.Context, name string) (*db.PageContent, error) {
	var page db.PageContent
	if err := s.db.WithContext(ctx).Where("page = ?", name).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("load page %q: %w", name, err)
	}
	return &page, nil
}

// Content returns the raw markup for name. A page that was never saved has
// empty content and no error.
func (s *PageService) Content(ctx context.Context, name string) (string, error) {
	page, err := s.Get(ctx, name)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return "", nil
		}
		return "", err
	}
	return page.Content, nil
}

// Upsert stores content for name in a single statement, creating the page on
// first save and replacing its content afterwards.
func (s *PageService) Upsert(ctx context.Context, name, content string) (*db.PageContent, error) {
	page := db.PageContent{Page: name, Content: content}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "page"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
			"deleted_at": nil,
		}),
	}).Create(&page).Error
	if err != nil {
		return nil, fmt.Errorf("upsert page %q: %w", name, err)
	}
	return &page, nil
}

// Ping checks that the underlying database is reachable.
func (s *PageService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("database handle unavailable: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
