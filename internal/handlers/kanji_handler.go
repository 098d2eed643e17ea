// internal/handlers/kanji_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"
	"kanji_keep/internal/service"
	"kanji_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type KanjiHandler struct {
	service service.KnownKanjiService
	logger  *slog.Logger
}

func NewKanjiHandler(s service.KnownKanjiService, logger *slog.Logger) *KanjiHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &KanjiHandler{
		service: s,
		logger:  logger,
	}
}

// PostKnownKanji は既知漢字を1文字登録するためのハンドラ
func (h *KanjiHandler) PostKnownKanji(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostKnownKanji"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.PostKnownKanjiRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	known, err := h.service.AddKnownKanji(r.Context(), tenantID, req.Kanji)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Known kanji already registered", slog.String("kanji", req.Kanji))
		} else {
			logger.Error("Error adding known kanji in service", slog.Any("error", err), slog.String("kanji", req.Kanji))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Known kanji added successfully", slog.String("kanji", known.Kanji))
	webutil.RespondWithJSON(w, http.StatusCreated, known, logger)
}

// GetKnownKanji はテナントの既知漢字一覧を取得するためのハンドラ
func (h *KanjiHandler) GetKnownKanji(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetKnownKanji"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	known, err := h.service.ListKnownKanji(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing known kanji in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if known == nil {
		known = []*model.KnownKanji{}
	}
	logger.Info("Known kanji listed successfully", slog.Int("count", len(known)))
	webutil.RespondWithJSON(w, http.StatusOK, known, logger)
}
