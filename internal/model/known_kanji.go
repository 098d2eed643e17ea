// internal/model/known_kanji.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// KnownKanji はユーザー(テナント)が「知っている」と登録した漢字1文字です。
// 旧実装のユーザー↔漢字の多対多を (テナント, 漢字) の行として明示的に
// 持ちます。追加のみで削除操作はありません。
type KnownKanji struct {
	KnownKanjiID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index:idx_tenant_kanji,unique" json:"-"`
	Kanji        string    `gorm:"type:varchar(4);not null;index:idx_tenant_kanji,unique" json:"kanji"`
	CreatedAt    time.Time `json:"created_at"`
}

func (KnownKanji) TableName() string {
	return "known_kanji"
}

// 既知漢字登録リクエストDTO
type PostKnownKanjiRequest struct {
	Kanji string `json:"kanji" validate:"required"`
}
