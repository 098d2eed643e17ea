// internal/extractor/extractor_test.go
package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoqueryExtractor_Title(t *testing.T) {
	e := NewGoqueryExtractor()

	t.Run("正常系: titleを抽出する", func(t *testing.T) {
		html := `<html><head><title>今日のニュース</title></head><body>本文</body></html>`
		title, err := e.Title([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "今日のニュース", title)
	})

	t.Run("正常系: titleの前後の空白は除去する", func(t *testing.T) {
		html := "<html><head><title>\n  見出し  \n</title></head><body></body></html>"
		title, err := e.Title([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "見出し", title)
	})

	t.Run("正常系: titleが無いページはエラーにせず空文字", func(t *testing.T) {
		html := `<html><head></head><body>タイトルなし</body></html>`
		title, err := e.Title([]byte(html))
		require.NoError(t, err)
		assert.Equal(t, "", title)
	})
}

func TestGoqueryExtractor_Text(t *testing.T) {
	e := NewGoqueryExtractor()

	t.Run("正常系: body配下のテキストだけを返す", func(t *testing.T) {
		html := `<html><head><title>無視される</title></head>` +
			`<body><h1>見出し</h1><p>日本語の<b>本文</b>です。</p></body></html>`
		text, err := e.Text([]byte(html))
		require.NoError(t, err)
		assert.Contains(t, text, "見出し")
		assert.Contains(t, text, "日本語の本文です。")
		assert.NotContains(t, text, "無視される")
	})

	t.Run("正常系: scriptとstyleの中身は含めない", func(t *testing.T) {
		html := `<html><body><p>残る文</p>` +
			`<script>var 漢 = "数えない";</script>` +
			`<style>.x { content: "型"; }</style></body></html>`
		text, err := e.Text([]byte(html))
		require.NoError(t, err)
		assert.Contains(t, text, "残る文")
		assert.NotContains(t, text, "数えない")
		assert.NotContains(t, text, "型")
	})

	t.Run("正常系: 同じ入力なら同じ出力 (冪等性)", func(t *testing.T) {
		html := `<html><body><p>東京タワー</p></body></html>`
		text1, err1 := e.Text([]byte(html))
		text2, err2 := e.Text([]byte(html))
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, text1, text2)
	})
}
