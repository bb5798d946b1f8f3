package store

import (
	"context"

	"github.com/Gong130/Server-of-iNews/models"
	"gorm.io/gorm"
)

// NewsStore reads news items. The only write path is the idempotent seed.
type NewsStore struct {
	db *gorm.DB
}

func NewNewsStore(db *gorm.DB) *NewsStore {
	return &NewsStore{db: db}
}

// ListRecent returns up to limit items, newest first. Ties on created_at are
// broken by id descending so insert order stays deterministic.
func (s *NewsStore) ListRecent(ctx context.Context, limit int) ([]models.News, error) {
	var items []models.News
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SeedIfEmpty inserts items only when the table has no rows, so restarting
// the server never duplicates demo data.
func (s *NewsStore) SeedIfEmpty(ctx context.Context, items []models.News) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.News{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}

// DeleteAll wipes the news table. Used by cmd/cleanup only.
func (s *NewsStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.News{}).Error
}

// DemoNews returns the first-run demo rows.
func DemoNews() []models.News {
	return []models.News{
		{Title: "今日头条：iNews 系统已上线", Content: "欢迎使用 iNews，体验简洁的新闻系统。", Author: "系统"},
		{Title: "技术快讯：JWT 登录打通", Content: "后端已支持基于 JWT 的安全登录与鉴权。", Author: "后端"},
		{Title: "产品更新：新闻数据接入数据库", Content: "新闻列表现在从数据库读取，支持更稳定的展示。", Author: "产品"},
	}
}
