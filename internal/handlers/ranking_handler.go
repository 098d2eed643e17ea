// internal/handlers/ranking_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"kanji_keep/internal/middleware"
	"kanji_keep/internal/model"
	"kanji_keep/internal/service"
	"kanji_keep/internal/webutil"
)

type RankingHandler struct {
	service service.RankingService
	logger  *slog.Logger
}

func NewRankingHandler(s service.RankingService, logger *slog.Logger) *RankingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RankingHandler{
		service: s,
		logger:  logger,
	}
}

// GetRankedArticles は既知漢字に基づく理解度順の記事一覧を返すハンドラ。
// 既知漢字を1つも含まない記事は結果に含まれません。
func (h *RankingHandler) GetRankedArticles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRankedArticles"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	ranked, err := h.service.GetRankedArticles(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error ranking articles in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if ranked == nil {
		ranked = []model.RankedArticle{}
	}
	logger.Info("Ranked articles listed successfully", slog.Int("count", len(ranked)))
	webutil.RespondWithJSON(w, http.StatusOK, ranked, logger)
}
