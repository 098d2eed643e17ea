// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"kanji_keep/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}

	// エラーの根本原因に基づいてHTTPステータスコードを決定
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	// エラーがカスタムエラー型 AppError かどうかを判定
	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		switch {
		case errors.Is(err, model.ErrNotFound):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "リソースが見つかりません。",
			}}
		case errors.Is(err, model.ErrConflict):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{
				Code:    "CONFLICT",
				Message: "リソースが既に存在します。",
			}}
		case errors.Is(err, model.ErrInvalidInput):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: "入力内容が正しくありません。",
			}}
		case errors.Is(err, model.ErrFetchFailed):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{
				Code:    "FETCH_FAILED",
				Message: "ページの取得に失敗しました。",
			}}
		case errors.Is(err, model.ErrParseFailed):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{
				Code:    "PARSE_FAILED",
				Message: "ページの解析に失敗しました。",
			}}
		default:
			// 予期せぬエラー。ログには詳細を、クライアントには汎用メッセージを返す
			logger.Error("Unhandled error", slog.Any("error", err))
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "サーバー内部でエラーが発生しました。",
			}}
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict // 409 Conflict
	case errors.Is(err, model.ErrForbidden) || errors.Is(err, model.ErrTenantNotFound):
		return http.StatusForbidden
	case errors.Is(err, model.ErrFetchFailed):
		return http.StatusBadGateway // 502: 取得先のページが原因
	case errors.Is(err, model.ErrParseFailed):
		return http.StatusUnprocessableEntity // 422: 取得はできたが解析不能
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR", "message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
