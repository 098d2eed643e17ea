// internal/kanji/kanji_test.go
package kanji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKanji(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"常用範囲の下限 (一)", 0x4E00, true},
		{"常用範囲の上限 (龥) は含む", 0x9FA5, true},
		{"常用範囲の上限の次", 0x9FA6, false},
		{"常用範囲の中間", 0x4DFF, true},
		{"希少範囲の下限 (㐀)", 0x3400, true},
		{"希少範囲の上限 (䶵) は含む", 0x4DB5, true},
		{"希少範囲の上限の次", 0x4DB6, false},
		{"希少範囲の直前", 0x3399, false},
		{"ASCII文字", 'A', false},
		{"ひらがな", 'あ', false},
		{"カタカナ", 'カ', false},
		{"漢字 (水)", '水', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKanji(tt.r))
			// 純粋関数なので繰り返し呼んでも結果は変わらない
			assert.Equal(t, tt.want, IsKanji(tt.r))
		})
	}
}

func TestCount(t *testing.T) {
	t.Run("漢字・かな・ASCII混在のテキスト", func(t *testing.T) {
		freq, total := Count("日本語の日はGo言語の語とは違う。ABC")

		assert.Equal(t, map[string]int{
			"日": 2,
			"本": 1,
			"語": 3,
			"言": 1,
			"違": 1,
		}, freq)
		assert.Equal(t, 8, total)
	})

	t.Run("漢字が1つもないテキスト", func(t *testing.T) {
		freq, total := Count("hello こんにちは 123")
		assert.Empty(t, freq)
		assert.Equal(t, 0, total)
	})

	t.Run("空文字列", func(t *testing.T) {
		freq, total := Count("")
		assert.Empty(t, freq)
		assert.Equal(t, 0, total)
	})

	t.Run("同じ入力なら結果は常に同じ (冪等性)", func(t *testing.T) {
		const text = "東京都の東の空"
		freq1, total1 := Count(text)
		freq2, total2 := Count(text)
		assert.Equal(t, freq1, freq2)
		assert.Equal(t, total1, total2)
	})

	t.Run("total は頻度表の合計と一致する", func(t *testing.T) {
		freq, total := Count("春はあけぼの。やうやう白くなりゆく山ぎは、すこしあかりて、紫だちたる雲のほそくたなびきたる。")
		sum := 0
		for _, c := range freq {
			assert.Positive(t, c)
			sum += c
		}
		assert.Equal(t, sum, total)
	})
}

func TestTable(t *testing.T) {
	table := NewTable()

	// 収録数 = 両範囲のコードポイント数 (上限を含む)
	wantLen := int(LastCommonKanji-FirstCommonKanji+1) + int(LastRareKanji-FirstRareKanji+1)
	require.Equal(t, wantLen, table.Len())

	// 事前展開テーブルと範囲演算は全コードポイントで一致する
	for r := rune(0); r <= 0xFFFF; r++ {
		if table.Contains(r) != IsKanji(r) {
			t.Fatalf("Table and IsKanji disagree at U+%04X", r)
		}
	}
}
