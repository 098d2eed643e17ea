// internal/service/known_kanji_service_test.go
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

func Test_knownKanjiService_AddKnownKanji(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: 既知漢字が登録される", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.KnownKanji")).
			Run(func(args mock.Arguments) {
				known := args.Get(2).(*model.KnownKanji)
				assert.Equal(t, tenantID, known.TenantID)
				assert.Equal(t, "水", known.Kanji)
				assert.NotEqual(t, uuid.Nil, known.KnownKanjiID)
			}).Return(nil).Once()

		known, err := svc.AddKnownKanji(ctx, tenantID, "水")

		require.NoError(t, err)
		require.NotNil(t, known)
		assert.Equal(t, "水", known.Kanji)
		mockRepo.AssertExpectations(t)
	})

	t.Run("正常系: 拡張A領域の漢字も登録できる", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.KnownKanji")).
			Return(nil).Once()

		known, err := svc.AddKnownKanji(ctx, tenantID, string(rune(0x3400)))

		require.NoError(t, err)
		assert.Equal(t, string(rune(0x3400)), known.Kanji)
	})

	t.Run("異常系: 複数文字は受け付けない", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		_, err := svc.AddKnownKanji(ctx, tenantID, "日本")

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_KANJI", appErr.Detail.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 空文字列は受け付けない", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		_, err := svc.AddKnownKanji(ctx, tenantID, "")

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 漢字以外の文字は受け付けない", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		for _, char := range []string{"あ", "カ", "A", "1", "。"} {
			_, err := svc.AddKnownKanji(ctx, tenantID, char)

			assert.ErrorIs(t, err, model.ErrInvalidInput, "char=%s", char)
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "NOT_A_KANJI", appErr.Detail.Code)
		}
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: 登録済みの漢字はConflict", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.KnownKanji")).
			Return(model.ErrConflict).Once()

		_, err := svc.AddKnownKanji(ctx, tenantID, "水")

		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: その他のDBエラー", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.KnownKanji")).
			Return(errors.New("db error")).Once()

		_, err := svc.AddKnownKanji(ctx, tenantID, "水")

		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}

func Test_knownKanjiService_ListKnownKanji(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		want := []*model.KnownKanji{
			{KnownKanjiID: uuid.New(), TenantID: tenantID, Kanji: "一"},
			{KnownKanjiID: uuid.New(), TenantID: tenantID, Kanji: "二"},
		}
		mockRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(want, nil).Once()

		got, err := svc.ListKnownKanji(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.KnownKanjiRepository)
		svc := NewKnownKanjiService(db, mockRepo)

		mockRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(nil, errors.New("db error")).Once()

		_, err := svc.ListKnownKanji(ctx, tenantID)

		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}
