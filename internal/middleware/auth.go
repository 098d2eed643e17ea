// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"

	"kanji_keep/internal/model"
	"kanji_keep/internal/webutil"

	"github.com/google/uuid"
)

// TenantGetter は認証に必要な最小限のサービスインターフェースです。
// (serviceパッケージを直接importすると循環参照になるためここで定義)
type TenantGetter interface {
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
}

// TenantAuthenticator はテナントIDの妥当性を検証します。
type TenantAuthenticator interface {
	Authenticate(ctx context.Context, tenantID uuid.UUID) error
}

type serviceTenantAuthenticator struct {
	svc TenantGetter
}

// NewServiceTenantAuthenticator はTenantServiceを使ってDB上の存在と
// 有効フラグを確認する Authenticator を作成します。
func NewServiceTenantAuthenticator(svc TenantGetter) TenantAuthenticator {
	return &serviceTenantAuthenticator{svc: svc}
}

func (a *serviceTenantAuthenticator) Authenticate(ctx context.Context, tenantID uuid.UUID) error {
	tenant, err := a.svc.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrTenantNotFound
		}
		return err
	}
	if !tenant.IsActive {
		return model.ErrTenantNotFound
	}
	return nil
}

// TenantAuthMiddleware は X-Tenant-ID ヘッダーを検証し、
// テナントIDをコンテキストにセットするミドルウェアです。
func TenantAuthMiddleware(authenticator TenantAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tenantIDStr := r.Header.Get("X-Tenant-ID")
			if tenantIDStr == "" {
				logger.Warn("Tenant auth failed: X-Tenant-ID header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "X-Tenant-IDヘッダーが必要です。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			tenantID, err := uuid.Parse(tenantIDStr)
			if err != nil {
				logger.Warn("Tenant auth failed: Invalid X-Tenant-ID format", "tenant_id_str", tenantIDStr)
				appErr := model.NewAppError("UNAUTHORIZED", "X-Tenant-IDの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			if err := authenticator.Authenticate(r.Context(), tenantID); err != nil {
				logger.Warn("Tenant auth failed: Invalid tenant", "tenant_id", tenantID.String(), "error", err)
				appErr := model.NewAppError("UNAUTHORIZED", "テナントが存在しないか無効です。", "", model.ErrTenantNotFound)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// コンテキストにテナントIDをセット
			ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.TenantIDKey).(uuid.UUID)
	if !ok {
		// コンテキストにテナントIDが見つからない（ミドルウェアが正しく動作していない等の内部エラー）
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
