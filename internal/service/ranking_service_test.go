// internal/service/ranking_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"kanji_keep/internal/model"
	"kanji_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// テスト用の記事を組み立てるヘルパー
func makeArticle(url string, counts map[string]int) *model.Article {
	article := &model.Article{
		ArticleID: uuid.New(),
		URL:       url,
	}
	for k, c := range counts {
		article.KanjiCounts = append(article.KanjiCounts, model.KanjiCount{
			ArticleID: article.ArticleID,
			Kanji:     k,
			Total:     c,
		})
		article.KanjiTotal += c
	}
	return article
}

func Test_rankByRatio(t *testing.T) {
	known := map[string]struct{}{"一": {}, "二": {}}

	t.Run("比率 = 既知漢字の延べ出現数 / 延べ漢字数", func(t *testing.T) {
		// 一x3 + 二x2 = 5 / 10 = 0.5
		article := makeArticle("https://example.com/a", map[string]int{"一": 3, "二": 2, "三": 5})

		ranked := rankByRatio(known, []*model.Article{article})

		require.Len(t, ranked, 1)
		assert.InDelta(t, 0.5, ranked[0].Ratio, 1e-9)
		assert.Equal(t, 10, ranked[0].KanjiTotal)
		assert.Equal(t, article.ArticleID, ranked[0].ArticleID)
	})

	t.Run("既知漢字を全く含まない記事は除外される", func(t *testing.T) {
		match := makeArticle("https://example.com/match", map[string]int{"一": 1, "三": 1})
		noMatch := makeArticle("https://example.com/none", map[string]int{"四": 2, "五": 3})

		ranked := rankByRatio(known, []*model.Article{match, noMatch})

		require.Len(t, ranked, 1)
		assert.Equal(t, match.ArticleID, ranked[0].ArticleID)
	})

	t.Run("延べ漢字数が0の記事は除外される", func(t *testing.T) {
		empty := makeArticle("https://example.com/empty", nil)

		ranked := rankByRatio(known, []*model.Article{empty})

		assert.Empty(t, ranked)
	})

	t.Run("理解度の降順で並ぶ", func(t *testing.T) {
		low := makeArticle("https://example.com/low", map[string]int{"一": 1, "三": 9})     // 0.1
		high := makeArticle("https://example.com/high", map[string]int{"一": 9, "三": 1})   // 0.9
		middle := makeArticle("https://example.com/mid", map[string]int{"一": 5, "三": 5}) // 0.5

		ranked := rankByRatio(known, []*model.Article{low, high, middle})

		require.Len(t, ranked, 3)
		assert.Equal(t, high.ArticleID, ranked[0].ArticleID)
		assert.Equal(t, middle.ArticleID, ranked[1].ArticleID)
		assert.Equal(t, low.ArticleID, ranked[2].ArticleID)
		for i := 0; i < len(ranked)-1; i++ {
			assert.GreaterOrEqual(t, ranked[i].Ratio, ranked[i+1].Ratio)
		}
	})

	t.Run("同率の場合はURLの昇順", func(t *testing.T) {
		b := makeArticle("https://example.com/b", map[string]int{"一": 1, "三": 1})
		a := makeArticle("https://example.com/a", map[string]int{"二": 1, "三": 1})

		ranked := rankByRatio(known, []*model.Article{b, a})

		require.Len(t, ranked, 2)
		assert.Equal(t, "https://example.com/a", ranked[0].URL)
		assert.Equal(t, "https://example.com/b", ranked[1].URL)
	})

	t.Run("全漢字が既知なら比率は1.0", func(t *testing.T) {
		article := makeArticle("https://example.com/full", map[string]int{"一": 7, "二": 3})

		ranked := rankByRatio(known, []*model.Article{article})

		require.Len(t, ranked, 1)
		assert.InDelta(t, 1.0, ranked[0].Ratio, 1e-9)
	})
}

func Test_rankingService_GetRankedArticles(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: 既知漢字を含む記事だけが候補として取得される", func(t *testing.T) {
		db := setupTestDB()
		mockArticleRepo := new(mocks.ArticleRepository)
		mockKnownRepo := new(mocks.KnownKanjiRepository)
		svc := NewRankingService(db, mockArticleRepo, mockKnownRepo)

		knownRows := []*model.KnownKanji{
			{KnownKanjiID: uuid.New(), TenantID: tenantID, Kanji: "一"},
			{KnownKanjiID: uuid.New(), TenantID: tenantID, Kanji: "二"},
		}
		article := makeArticle("https://example.com/a", map[string]int{"一": 3, "二": 2, "三": 5})

		mockKnownRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(knownRows, nil).Once()
		// 候補の絞り込みには既知漢字の一覧がそのまま渡る
		mockArticleRepo.On("FindWithAnyKanji", ctx, mock.AnythingOfType("*gorm.DB"), []string{"一", "二"}).
			Return([]*model.Article{article}, nil).Once()

		ranked, err := svc.GetRankedArticles(ctx, tenantID)

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.InDelta(t, 0.5, ranked[0].Ratio, 1e-9)
		mockKnownRepo.AssertExpectations(t)
		mockArticleRepo.AssertExpectations(t)
	})

	t.Run("正常系: 既知漢字が無ければ空のランキング", func(t *testing.T) {
		db := setupTestDB()
		mockArticleRepo := new(mocks.ArticleRepository)
		mockKnownRepo := new(mocks.KnownKanjiRepository)
		svc := NewRankingService(db, mockArticleRepo, mockKnownRepo)

		mockKnownRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return([]*model.KnownKanji{}, nil).Once()

		ranked, err := svc.GetRankedArticles(ctx, tenantID)

		require.NoError(t, err)
		assert.Empty(t, ranked)
		// 記事の検索自体が不要
		mockArticleRepo.AssertNotCalled(t, "FindWithAnyKanji")
	})

	t.Run("異常系: 既知漢字の取得に失敗", func(t *testing.T) {
		db := setupTestDB()
		mockArticleRepo := new(mocks.ArticleRepository)
		mockKnownRepo := new(mocks.KnownKanjiRepository)
		svc := NewRankingService(db, mockArticleRepo, mockKnownRepo)

		mockKnownRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(nil, errors.New("db error")).Once()

		_, err := svc.GetRankedArticles(ctx, tenantID)

		assert.ErrorIs(t, err, model.ErrInternalServer)
	})

	t.Run("異常系: 記事の取得に失敗", func(t *testing.T) {
		db := setupTestDB()
		mockArticleRepo := new(mocks.ArticleRepository)
		mockKnownRepo := new(mocks.KnownKanjiRepository)
		svc := NewRankingService(db, mockArticleRepo, mockKnownRepo)

		knownRows := []*model.KnownKanji{
			{KnownKanjiID: uuid.New(), TenantID: tenantID, Kanji: "一"},
		}
		mockKnownRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(knownRows, nil).Once()
		mockArticleRepo.On("FindWithAnyKanji", ctx, mock.AnythingOfType("*gorm.DB"), []string{"一"}).
			Return(nil, errors.New("db error")).Once()

		_, err := svc.GetRankedArticles(ctx, tenantID)

		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}
