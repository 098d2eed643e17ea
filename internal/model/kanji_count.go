// internal/model/kanji_count.go
package model

import (
	"github.com/google/uuid"
)

// KanjiCount は1記事内での1漢字の出現回数を表します。
// (記事, 漢字) の組で一意。出現しなかった漢字の行は作らない疎な表現で、
// Total は常に1以上です。記事の再処理時に丸ごと入れ替えられます。
type KanjiCount struct {
	KanjiCountID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ArticleID    uuid.UUID `gorm:"type:uuid;not null;index:idx_article_kanji,unique" json:"-"`
	Kanji        string    `gorm:"type:varchar(4);not null;index:idx_article_kanji,unique" json:"kanji"`
	Total        int       `gorm:"not null" json:"total"`
}

func (KanjiCount) TableName() string {
	return "kanji_counts"
}
