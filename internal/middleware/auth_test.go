// internal/middleware/auth_test.go
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"kanji_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	err error
}

func (a *stubAuthenticator) Authenticate(ctx context.Context, tenantID uuid.UUID) error {
	return a.err
}

func TestTenantAuthMiddleware(t *testing.T) {
	tenantID := uuid.New()

	// ミドルウェア通過後にコンテキストのテナントIDを検証するハンドラ
	newHandler := func(t *testing.T, wantCalled bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !wantCalled {
				t.Fatal("next handler should not be called")
			}
			got, err := GetTenantIDFromContext(r.Context())
			require.NoError(t, err)
			assert.Equal(t, tenantID, got)
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("正常系: 有効なX-Tenant-IDで通過する", func(t *testing.T) {
		mw := TenantAuthMiddleware(&stubAuthenticator{err: nil})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
		req.Header.Set("X-Tenant-ID", tenantID.String())
		rec := httptest.NewRecorder()

		mw(newHandler(t, true)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("異常系: ヘッダーが無ければ403", func(t *testing.T) {
		mw := TenantAuthMiddleware(&stubAuthenticator{err: nil})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
		rec := httptest.NewRecorder()

		mw(newHandler(t, false)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("異常系: UUIDでないヘッダーは403", func(t *testing.T) {
		mw := TenantAuthMiddleware(&stubAuthenticator{err: nil})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
		req.Header.Set("X-Tenant-ID", "not-a-uuid")
		rec := httptest.NewRecorder()

		mw(newHandler(t, false)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("異常系: 無効なテナントは403", func(t *testing.T) {
		mw := TenantAuthMiddleware(&stubAuthenticator{err: model.ErrTenantNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
		req.Header.Set("X-Tenant-ID", tenantID.String())
		rec := httptest.NewRecorder()

		mw(newHandler(t, false)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServiceTenantAuthenticator(t *testing.T) {
	tenantID := uuid.New()

	t.Run("有効なテナント", func(t *testing.T) {
		auth := NewServiceTenantAuthenticator(&stubTenantGetter{
			tenant: &model.Tenant{TenantID: tenantID, IsActive: true},
		})
		assert.NoError(t, auth.Authenticate(context.Background(), tenantID))
	})

	t.Run("無効化されたテナント", func(t *testing.T) {
		auth := NewServiceTenantAuthenticator(&stubTenantGetter{
			tenant: &model.Tenant{TenantID: tenantID, IsActive: false},
		})
		assert.ErrorIs(t, auth.Authenticate(context.Background(), tenantID), model.ErrTenantNotFound)
	})

	t.Run("存在しないテナント", func(t *testing.T) {
		auth := NewServiceTenantAuthenticator(&stubTenantGetter{err: model.ErrNotFound})
		assert.ErrorIs(t, auth.Authenticate(context.Background(), tenantID), model.ErrTenantNotFound)
	})
}

type stubTenantGetter struct {
	tenant *model.Tenant
	err    error
}

func (s *stubTenantGetter) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tenant, nil
}
