// internal/model/article.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article は取り込み済みのWebページを表します。
// URLごとに1レコードで、再処理のたびに Title / Content / KanjiTotal を
// 丸ごと上書きします (追記ではなく last-writer-wins)。
type Article struct {
	ArticleID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"article_id"`
	URL        string         `gorm:"unique;not null" json:"url"`
	Title      string         `json:"title"` // <title>が無いページは空文字
	Content    string         `gorm:"type:text" json:"-"`
	KanjiTotal int            `gorm:"not null;default:0" json:"kanji_total"` // 全漢字の延べ出現数
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	KanjiCounts []KanjiCount `gorm:"foreignKey:ArticleID;references:ArticleID" json:"-"`
}

func (Article) TableName() string {
	return "articles"
}

// 記事取り込みリクエストDTO
type PostArticleRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// FrequencyTable は KanjiCounts を 漢字→出現回数 のマップに変換します。
func (a *Article) FrequencyTable() map[string]int {
	freq := make(map[string]int, len(a.KanjiCounts))
	for _, kc := range a.KanjiCounts {
		freq[kc.Kanji] = kc.Total
	}
	return freq
}

// RankedArticle は理解度つきの記事です。
// Ratio は記事中の延べ漢字数のうち、ユーザーが知っている漢字が占める割合
// (KanjiTotal > 0 のとき [0,1]) です。
type RankedArticle struct {
	ArticleID  uuid.UUID `json:"article_id"`
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	KanjiTotal int       `json:"kanji_total"`
	Ratio      float64   `json:"ratio"`
}
