// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "kanji-keep"
	AppVersion = "0.1.0"
)

// デフォルト設定値
const (
	DefaultServerPort          = ":8080"
	DefaultLogLevel            = "info"
	DefaultFetchTimeoutSeconds = 10
	DefaultFetchMaxRetries     = 2
	DefaultUserAgent           = AppName + "/" + AppVersion
)
