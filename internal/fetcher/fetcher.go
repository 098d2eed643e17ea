//go:generate mockery --name ContentFetcher --output ./mocks --outpkg mocks --case=underscore
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// FetchError はページ取得の失敗を表します。
// HTTPステータス異常の場合は StatusCode にそのコードが入ります
// (ネットワークエラーの場合は 0)。
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ContentFetcher はURLの生のページ内容を取得するインターフェースです。
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct {
	client     *http.Client
	userAgent  string
	maxRetries uint64
}

// NewHTTPFetcher はHTTP経由の ContentFetcher を作成します。
// 5xx とネットワークエラーは指数バックオフで maxRetries 回まで再試行し、
// 4xx は再試行せず即座に失敗させます。
func NewHTTPFetcher(timeout time.Duration, userAgent string, maxRetries int) ContentFetcher {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &httpFetcher{
		client:     &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		maxRetries: uint64(maxRetries),
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			// URLが不正な場合は再試行しても無駄
			return backoff.Permanent(err)
		}
		if f.userAgent != "" {
			req.Header.Set("User-Agent", f.userAgent)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return &FetchError{URL: url, StatusCode: resp.StatusCode}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(&FetchError{URL: url, StatusCode: resp.StatusCode})
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.maxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return nil, fetchErr
		}
		return nil, &FetchError{URL: url, Err: err}
	}

	return body, nil
}
