//go:generate mockery --name ArticleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository インターフェース
type ArticleRepository interface {
	// UpsertByURL はURLをキーに記事を作成または丸ごと上書きします。
	// 既存レコードがあった場合、article.ArticleID には既存のIDが入ります。
	UpsertByURL(ctx context.Context, tx *gorm.DB, article *model.Article) error
	// ReplaceCounts は記事の頻度表を入れ替えます (削除してから挿入)。
	ReplaceCounts(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, freq map[string]int) error
	FindByID(ctx context.Context, db *gorm.DB, articleID uuid.UUID) (*model.Article, error)
	FindByURL(ctx context.Context, db *gorm.DB, url string) (*model.Article, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Article, error)
	// FindWithAnyKanji は頻度表に kanjiSet の漢字を1つ以上含む記事を、
	// KanjiCounts をプリロードした状態で返します。
	FindWithAnyKanji(ctx context.Context, db *gorm.DB, kanjiSet []string) ([]*model.Article, error)
}

type gormArticleRepository struct{}

func NewGormArticleRepository() ArticleRepository {
	return &gormArticleRepository{}
}

func (r *gormArticleRepository) UpsertByURL(ctx context.Context, tx *gorm.DB, article *model.Article) error {
	logger := middleware.GetLogger(ctx)

	var existing model.Article
	result := tx.WithContext(ctx).Where("url = ?", article.URL).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if article.ArticleID == uuid.Nil {
				article.ArticleID = uuid.New()
			}
			if err := tx.WithContext(ctx).Create(article).Error; err != nil {
				logger.Error("Error creating article in DB",
					"error", err,
					"url", article.URL,
				)
				return fmt.Errorf("gormArticleRepository.UpsertByURL: %w", err)
			}
			return nil
		}
		logger.Error("Error finding article by URL in DB",
			"error", result.Error,
			"url", article.URL,
		)
		return fmt.Errorf("gormArticleRepository.UpsertByURL: %w", result.Error)
	}

	// 既存記事は内容を丸ごと上書き (last-writer-wins)
	article.ArticleID = existing.ArticleID
	updates := map[string]interface{}{
		"title":       article.Title,
		"content":     article.Content,
		"kanji_total": article.KanjiTotal,
	}
	if err := tx.WithContext(ctx).Model(&model.Article{}).
		Where("article_id = ?", existing.ArticleID).
		Updates(updates).Error; err != nil {
		logger.Error("Error updating article in DB",
			"error", err,
			"article_id", existing.ArticleID.String(),
			"url", article.URL,
		)
		return fmt.Errorf("gormArticleRepository.UpsertByURL: %w", err)
	}
	return nil
}

func (r *gormArticleRepository) ReplaceCounts(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, freq map[string]int) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Where("article_id = ?", articleID).Delete(&model.KanjiCount{})
	if result.Error != nil {
		logger.Error("Error deleting kanji counts in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return fmt.Errorf("gormArticleRepository.ReplaceCounts: %w", result.Error)
	}

	if len(freq) == 0 {
		return nil
	}

	counts := make([]model.KanjiCount, 0, len(freq))
	for char, total := range freq {
		counts = append(counts, model.KanjiCount{
			KanjiCountID: uuid.New(),
			ArticleID:    articleID,
			Kanji:        char,
			Total:        total,
		})
	}
	if err := tx.WithContext(ctx).Create(&counts).Error; err != nil {
		logger.Error("Error inserting kanji counts in DB",
			"error", err,
			"article_id", articleID.String(),
			"count", len(counts),
		)
		return fmt.Errorf("gormArticleRepository.ReplaceCounts: %w", err)
	}
	return nil
}

func (r *gormArticleRepository) FindByID(ctx context.Context, db *gorm.DB, articleID uuid.UUID) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var article model.Article
	result := db.WithContext(ctx).Preload("KanjiCounts").Where("article_id = ?", articleID).First(&article)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding article by ID in DB",
			"error", result.Error,
			"article_id", articleID.String(),
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByID: %w", result.Error)
	}
	return &article, nil
}

func (r *gormArticleRepository) FindByURL(ctx context.Context, db *gorm.DB, url string) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var article model.Article
	result := db.WithContext(ctx).Preload("KanjiCounts").Where("url = ?", url).First(&article)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding article by URL in DB",
			"error", result.Error,
			"url", url,
		)
		return nil, fmt.Errorf("gormArticleRepository.FindByURL: %w", result.Error)
	}
	return &article, nil
}

func (r *gormArticleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	var articles []*model.Article
	result := db.WithContext(ctx).Order("created_at DESC").Find(&articles)
	if result.Error != nil {
		logger.Error("Error finding articles in DB", "error", result.Error)
		return nil, fmt.Errorf("gormArticleRepository.FindAll: %w", result.Error)
	}
	return articles, nil
}

func (r *gormArticleRepository) FindWithAnyKanji(ctx context.Context, db *gorm.DB, kanjiSet []string) ([]*model.Article, error) {
	logger := middleware.GetLogger(ctx)
	if len(kanjiSet) == 0 {
		return nil, nil
	}

	sub := db.Model(&model.KanjiCount{}).
		Select("article_id").
		Where("kanji IN ?", kanjiSet)

	var articles []*model.Article
	result := db.WithContext(ctx).
		Preload("KanjiCounts").
		Where("article_id IN (?)", sub).
		Find(&articles)
	if result.Error != nil {
		logger.Error("Error finding articles by kanji set in DB",
			"error", result.Error,
			"kanji_set_size", len(kanjiSet),
		)
		return nil, fmt.Errorf("gormArticleRepository.FindWithAnyKanji: %w", result.Error)
	}
	return articles, nil
}
