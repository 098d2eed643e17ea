// internal/kanji/kanji.go
package kanji

// 漢字のUnicodeコードポイント範囲
// 出典: http://www.rikai.com/library/kanjitables/kanji_codes.unicode.shtml
// 上限はどちらの範囲も「含む」(inclusive) で統一する
const (
	FirstCommonKanji rune = 0x4E00 // 一
	LastCommonKanji  rune = 0x9FA5 // 龥
	FirstRareKanji   rune = 0x3400 // 㐀
	LastRareKanji    rune = 0x4DB5 // 䶵
)

// IsKanji は1文字が漢字かどうかを判定します。
// 常用範囲 (U+4E00〜U+9FA5) と希少範囲 (U+3400〜U+4DB5) のどちらかに
// 含まれる場合に true を返します。副作用のない純粋関数です。
func IsKanji(r rune) bool {
	return (r >= FirstCommonKanji && r <= LastCommonKanji) ||
		(r >= FirstRareKanji && r <= LastRareKanji)
}

// Count はテキスト中の漢字の出現回数を数え、
// 文字ごとの頻度表と総出現数を返します。
// 頻度表は疎な表現で、1回以上出現した漢字だけがキーになります。
// total は必ず頻度表の値の合計と一致します。
func Count(text string) (map[string]int, int) {
	freq := make(map[string]int)
	total := 0
	for _, r := range text {
		if !IsKanji(r) {
			continue
		}
		freq[string(r)]++
		total++
	}
	return freq, total
}

// Table は全漢字コードポイントを事前展開した membership キャッシュです。
// 旧実装ではDBに全行を生成していましたが、範囲演算だけで等価なので
// 永続化はせず、必要な場合にメモリ上で構築します。
// IsKanji と全コードポイントで一致することをテストで保証しています。
type Table struct {
	set map[rune]struct{}
}

// NewTable は2つの範囲の全コードポイントを展開した Table を作成します。
func NewTable() *Table {
	set := make(map[rune]struct{}, (LastCommonKanji-FirstCommonKanji+1)+(LastRareKanji-FirstRareKanji+1))
	for r := FirstCommonKanji; r <= LastCommonKanji; r++ {
		set[r] = struct{}{}
	}
	for r := FirstRareKanji; r <= LastRareKanji; r++ {
		set[r] = struct{}{}
	}
	return &Table{set: set}
}

// Contains は r が漢字かどうかを返します。IsKanji と同じ結果になります。
func (t *Table) Contains(r rune) bool {
	_, ok := t.set[r]
	return ok
}

// Len は収録している漢字の数を返します。
func (t *Table) Len() int {
	return len(t.set)
}
