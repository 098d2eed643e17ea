// internal/service/article_service.go
package service

import (
	"context"
	"errors"

	"kanji_keep/internal/extractor"
	"kanji_keep/internal/fetcher"
	"kanji_keep/internal/kanji"
	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"
	"kanji_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleService interface {
	// ProcessArticle はURLのページを取得して漢字を数え、記事として保存します。
	// 同じURLを再処理すると記事と頻度表は丸ごと上書きされます。
	ProcessArticle(ctx context.Context, url string) (*model.Article, error)
	GetArticle(ctx context.Context, articleID uuid.UUID) (*model.Article, error)
	ListArticles(ctx context.Context) ([]*model.Article, error)
}

type articleService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	articleRepo repository.ArticleRepository
	fetcher     fetcher.ContentFetcher
	extractor   extractor.HTMLExtractor
}

func NewArticleService(db *gorm.DB, articleRepo repository.ArticleRepository, f fetcher.ContentFetcher, e extractor.HTMLExtractor) ArticleService {
	return &articleService{
		db:          db,
		articleRepo: articleRepo,
		fetcher:     f,
		extractor:   e,
	}
}

func (s *articleService) ProcessArticle(ctx context.Context, url string) (*model.Article, error) {
	logger := middleware.GetLogger(ctx)

	if url == "" {
		return nil, model.ErrInvalidInput
	}

	// 1. ページ取得 (失敗したら何も保存しない)
	content, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("Failed to fetch article content", "url", url, "error", err)
		return nil, model.ErrFetchFailed
	}

	// 2. タイトル抽出 (タイトルが無いのはエラーではなく空文字)
	title, err := s.extractor.Title(content)
	if err != nil {
		logger.Warn("Failed to extract title", "url", url, "error", err)
		return nil, model.ErrParseFailed
	}

	// 3. 本文抽出 (bodyが無いなど構造異常は中断)
	text, err := s.extractor.Text(content)
	if err != nil {
		logger.Warn("Failed to extract body text", "url", url, "error", err)
		return nil, model.ErrParseFailed
	}

	// 4. 漢字の頻度集計
	freq, total := kanji.Count(text)

	article := &model.Article{
		URL:        url,
		Title:      title,
		Content:    string(content),
		KanjiTotal: total,
	}

	// 5. 記事と頻度表を1トランザクションで保存。
	// 削除+挿入をまとめてコミットするので、同一URLの同時再処理でも
	// 中途半端な頻度表は残らない (last-writer-wins)。
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.articleRepo.UpsertByURL(ctx, tx, article); err != nil {
			return err
		}
		if err := s.articleRepo.ReplaceCounts(ctx, tx, article.ArticleID, freq); err != nil {
			return err
		}
		return nil // コミット
	})
	if err != nil {
		logger.Error("Transaction failed for ProcessArticle", "url", url, "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Article processed",
		"url", url,
		"article_id", article.ArticleID.String(),
		"kanji_total", total,
		"distinct_kanji", len(freq),
	)
	return article, nil
}

func (s *articleService) GetArticle(ctx context.Context, articleID uuid.UUID) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, s.db, articleID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return article, nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]*model.Article, error) {
	articles, err := s.articleRepo.FindAll(ctx, s.db)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		middleware.GetLogger(ctx).Error("Error listing articles", "error", err)
		return nil, model.ErrInternalServer
	}
	return articles, nil
}
