// internal/service/ranking_service.go
package service

import (
	"context"
	"sort"

	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"
	"kanji_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RankingService interface {
	// GetRankedArticles はテナントの既知漢字に基づいて記事を理解度順に返します。
	GetRankedArticles(ctx context.Context, tenantID uuid.UUID) ([]model.RankedArticle, error)
}

type rankingService struct {
	db          *gorm.DB
	articleRepo repository.ArticleRepository
	knownRepo   repository.KnownKanjiRepository
}

func NewRankingService(db *gorm.DB, articleRepo repository.ArticleRepository, knownRepo repository.KnownKanjiRepository) RankingService {
	return &rankingService{
		db:          db,
		articleRepo: articleRepo,
		knownRepo:   knownRepo,
	}
}

func (s *rankingService) GetRankedArticles(ctx context.Context, tenantID uuid.UUID) ([]model.RankedArticle, error) {
	logger := middleware.GetLogger(ctx)

	knownRows, err := s.knownRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Error loading known kanji for ranking", "tenant_id", tenantID.String(), "error", err)
		return nil, model.ErrInternalServer
	}
	if len(knownRows) == 0 {
		return []model.RankedArticle{}, nil
	}

	known := make(map[string]struct{}, len(knownRows))
	chars := make([]string, 0, len(knownRows))
	for _, row := range knownRows {
		known[row.Kanji] = struct{}{}
		chars = append(chars, row.Kanji)
	}

	articles, err := s.articleRepo.FindWithAnyKanji(ctx, s.db, chars)
	if err != nil {
		logger.Error("Error loading articles for ranking", "tenant_id", tenantID.String(), "error", err)
		return nil, model.ErrInternalServer
	}

	return rankByRatio(known, articles), nil
}

// rankByRatio は理解度 (既知漢字の延べ出現数 / 記事の延べ漢字数) を計算し、
// 理解度の降順で並べた一覧を返します。純粋な計算で副作用はありません。
//   - 既知漢字を1つも含まない記事は比率0で載せるのではなく除外します。
//   - KanjiTotal が 0 の記事はゼロ除算を避けるため除外します。
//   - 同率の場合はURLの昇順で順序を決定的にします。
func rankByRatio(known map[string]struct{}, articles []*model.Article) []model.RankedArticle {
	ranked := make([]model.RankedArticle, 0, len(articles))

	for _, article := range articles {
		if article.KanjiTotal <= 0 {
			continue
		}

		knownTotal := 0
		for _, kc := range article.KanjiCounts {
			if _, ok := known[kc.Kanji]; ok {
				knownTotal += kc.Total
			}
		}
		if knownTotal == 0 {
			continue
		}

		ranked = append(ranked, model.RankedArticle{
			ArticleID:  article.ArticleID,
			URL:        article.URL,
			Title:      article.Title,
			KanjiTotal: article.KanjiTotal,
			Ratio:      float64(knownTotal) / float64(article.KanjiTotal),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Ratio != ranked[j].Ratio {
			return ranked[i].Ratio > ranked[j].Ratio
		}
		return ranked[i].URL < ranked[j].URL
	})

	return ranked
}
