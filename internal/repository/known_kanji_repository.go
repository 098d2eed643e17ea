//go:generate mockery --name KnownKanjiRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// KnownKanjiRepository インターフェース
type KnownKanjiRepository interface {
	Create(ctx context.Context, tx *gorm.DB, known *model.KnownKanji) error
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.KnownKanji, error)
}

type gormKnownKanjiRepository struct{}

func NewGormKnownKanjiRepository() KnownKanjiRepository {
	return &gormKnownKanjiRepository{}
}

func (r *gormKnownKanjiRepository) Create(ctx context.Context, tx *gorm.DB, known *model.KnownKanji) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(known)
	if result.Error != nil {
		// (tenant_id, kanji) の複合ユニーク制約違反は登録済みとして扱う
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}

		logger.Error("Error creating known kanji in DB",
			"error", result.Error,
			"tenant_id", known.TenantID.String(),
			"kanji", known.Kanji,
		)
		return fmt.Errorf("gormKnownKanjiRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormKnownKanjiRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.KnownKanji, error) {
	logger := middleware.GetLogger(ctx)
	var known []*model.KnownKanji
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at ASC").Find(&known)
	if result.Error != nil {
		logger.Error("Error finding known kanji by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormKnownKanjiRepository.FindByTenant: %w", result.Error)
	}
	return known, nil
}
