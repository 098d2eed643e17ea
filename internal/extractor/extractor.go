//go:generate mockery --name HTMLExtractor --output ./mocks --outpkg mocks --case=underscore
package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseError はHTMLの構造が想定と異なり解析できなかったことを表します。
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse html: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse html: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// HTMLExtractor はHTMLからタイトルと本文テキストを抽出するインターフェースです。
type HTMLExtractor interface {
	// Title は<title>の文字列を返します。タイトルが無いページはエラーに
	// せず空文字を返します。
	Title(content []byte) (string, error)
	// Text は<body>配下のプレーンテキストを返します。
	// <body>が無い場合は *ParseError を返します。
	Text(content []byte) (string, error)
}

type goqueryExtractor struct{}

// NewGoqueryExtractor はgoqueryベースの HTMLExtractor を作成します。
func NewGoqueryExtractor() HTMLExtractor {
	return &goqueryExtractor{}
}

func (e *goqueryExtractor) Title(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", &ParseError{Reason: "invalid document", Err: err}
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}

func (e *goqueryExtractor) Text(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", &ParseError{Reason: "invalid document", Err: err}
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", &ParseError{Reason: "document has no body element"}
	}

	// script / style の中身は本文ではないので数えない
	body.Find("script, style").Remove()

	return body.Text(), nil
}
