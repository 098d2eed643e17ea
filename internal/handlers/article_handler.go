// internal/handlers/article_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"kanji_keep/internal/model"
	"kanji_keep/internal/service"
	"kanji_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ArticleHandler struct {
	service service.ArticleService
	logger  *slog.Logger
}

func NewArticleHandler(s service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		service: s,
		logger:  logger,
	}
}

// PostArticle はURLのページを取り込み、漢字を集計して記事として保存するハンドラ。
// 同じURLを再POSTすると記事は再処理され上書きされます。
func (h *ArticleHandler) PostArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostArticle"))

	var req model.PostArticleRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
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

	article, err := h.service.ProcessArticle(r.Context(), req.URL)
	if err != nil {
		logger.Error("Error processing article in service", slog.Any("error", err), slog.String("url", req.URL))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Article processed successfully",
		slog.String("article_id", article.ArticleID.String()),
		slog.Int("kanji_total", article.KanjiTotal),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, article, logger)
}

// GetArticles は取り込み済み記事の一覧を取得するためのハンドラ
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticles"))

	articles, err := h.service.ListArticles(r.Context())
	if err != nil {
		logger.Error("Error listing articles in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if articles == nil {
		articles = []*model.Article{}
	}
	logger.Info("Articles listed successfully", slog.Int("count", len(articles)))
	webutil.RespondWithJSON(w, http.StatusOK, articles, logger)
}

// GetArticle は特定の記事を頻度表つきで取得するためのハンドラ
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArticle"))

	articleIDStr := chi.URLParam(r, "article_id")
	articleID, err := uuid.Parse(articleIDStr)
	if err != nil {
		logger.Warn("Invalid article ID format in URL", slog.String("article_id_str", articleIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "article_idの形式が正しくありません。", "article_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("article_id", articleID.String()))

	article, err := h.service.GetArticle(r.Context(), articleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Article not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting article from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	// 頻度表はマップ形式で返す
	resp := struct {
		*model.Article
		FrequencyTable map[string]int `json:"frequency_table"`
	}{
		Article:        article,
		FrequencyTable: article.FrequencyTable(),
	}

	logger.Info("Article retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
