// internal/service/known_kanji_service.go
package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"kanji_keep/internal/kanji"
	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"
	"kanji_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnownKanjiService interface {
	// AddKnownKanji はテナントの既知漢字に1文字追加します。
	// 入力はちょうど1文字の漢字でなければなりません。
	AddKnownKanji(ctx context.Context, tenantID uuid.UUID, char string) (*model.KnownKanji, error)
	ListKnownKanji(ctx context.Context, tenantID uuid.UUID) ([]*model.KnownKanji, error)
}

type knownKanjiService struct {
	db        *gorm.DB
	knownRepo repository.KnownKanjiRepository
}

func NewKnownKanjiService(db *gorm.DB, knownRepo repository.KnownKanjiRepository) KnownKanjiService {
	return &knownKanjiService{db: db, knownRepo: knownRepo}
}

func (s *knownKanjiService) AddKnownKanji(ctx context.Context, tenantID uuid.UUID, char string) (*model.KnownKanji, error) {
	logger := middleware.GetLogger(ctx)

	// 事前条件: ちょうど1文字
	if utf8.RuneCountInString(char) != 1 {
		return nil, model.NewAppError("INVALID_KANJI", "漢字は1文字だけ指定してください。", "kanji", model.ErrInvalidInput)
	}
	r, _ := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError || !kanji.IsKanji(r) {
		return nil, model.NewAppError("NOT_A_KANJI", "指定された文字は漢字ではありません。", "kanji", model.ErrInvalidInput)
	}

	known := &model.KnownKanji{
		KnownKanjiID: uuid.New(),
		TenantID:     tenantID,
		Kanji:        char,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.knownRepo.Create(ctx, tx, known); err != nil {
			return err
		}
		return nil // コミット
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 登録済みの漢字
			return nil, model.ErrConflict
		}
		logger.Error("Transaction failed for AddKnownKanji",
			"tenant_id", tenantID.String(),
			"kanji", char,
			"error", err,
		)
		return nil, model.ErrInternalServer
	}

	return known, nil
}

func (s *knownKanjiService) ListKnownKanji(ctx context.Context, tenantID uuid.UUID) ([]*model.KnownKanji, error) {
	known, err := s.knownRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing known kanji", "tenant_id", tenantID.String(), "error", err)
		return nil, model.ErrInternalServer
	}
	return known, nil
}
