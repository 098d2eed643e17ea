// internal/service/tenant_service_test.go
package service

import (
	"context"
	"testing"

	"kanji_keep/internal/model"
	"kanji_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_tenantService_CreateTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: テナントが作成される", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.TenantRepository)
		svc := NewTenantService(db, mockRepo)

		req := &model.RegisterRequest{Name: "テストユーザー", Email: "test@example.com"}
		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
			Run(func(args mock.Arguments) {
				tenant := args.Get(2).(*model.Tenant)
				assert.NotEqual(t, uuid.Nil, tenant.TenantID)
				assert.Equal(t, req.Name, tenant.Name)
				assert.Equal(t, req.Email, tenant.Email)
				assert.True(t, tenant.IsActive)
			}).Return(nil).Once()

		tenant, err := svc.CreateTenant(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, tenant)
		assert.True(t, tenant.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: 名前またはメールアドレスが空", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.TenantRepository)
		svc := NewTenantService(db, mockRepo)

		_, err := svc.CreateTenant(ctx, &model.RegisterRequest{Name: "", Email: "test@example.com"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		_, err = svc.CreateTenant(ctx, &model.RegisterRequest{Name: "テストユーザー", Email: ""})
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("異常系: メールアドレスが重複", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.TenantRepository)
		svc := NewTenantService(db, mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Tenant")).
			Return(model.ErrConflict).Once()

		_, err := svc.CreateTenant(ctx, &model.RegisterRequest{Name: "テストユーザー", Email: "dup@example.com"})

		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func Test_tenantService_GetTenant(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.TenantRepository)
		svc := NewTenantService(db, mockRepo)

		want := &model.Tenant{TenantID: tenantID, Name: "テストユーザー", IsActive: true}
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).Return(want, nil).Once()

		got, err := svc.GetTenant(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("異常系: 見つからない", func(t *testing.T) {
		db := setupTestDB()
		mockRepo := new(mocks.TenantRepository)
		svc := NewTenantService(db, mockRepo)

		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetTenant(ctx, tenantID)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
