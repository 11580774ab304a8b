package services_test

import (
	"context"
	"testing"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStoreRepository is a mock implementation of repositories.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetAll(ctx context.Context) ([]*models.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Add(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEvent(eventType string, payload map[string]interface{}) error {
	args := m.Called(eventType, payload)
	return args.Error(0)
}

func TestInventoryService_CreateStore(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("Add", mock.Anything, mock.AnythingOfType("*models.Store")).Return(nil)
	service := services.NewInventoryService(mockRepo, nil)

	store, err := service.CreateStore(context.Background(), "Acme")

	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
	assert.Equal(t, "Acme", store.Name)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_CreateStore_BlankName(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewInventoryService(mockRepo, nil)

	_, err := service.CreateStore(context.Background(), "   ")

	assert.True(t, models.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestInventoryService_AddProduct_StoreNotFound(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	mockRepo.On("GetByID", mock.Anything, "missing").
		Return(nil, models.NotFoundErrorf("store with id missing not found"))
	service := services.NewInventoryService(mockRepo, nil)

	_, err := service.AddProduct(context.Background(), "missing", "Widget", "WID-1", 9.99, 10)

	assert.True(t, models.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInventoryService_AddProduct_ValidatesBeforeFetch(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewInventoryService(mockRepo, nil)

	_, err := service.AddProduct(context.Background(), "store-1", "", "WID-1", 9.99, 10)

	assert.True(t, models.IsValidation(err))
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestInventoryService_AddProduct_PublishesEvent(t *testing.T) {
	store, err := models.NewStore("store-1", "Acme")
	require.NoError(t, err)

	mockRepo := new(MockStoreRepository)
	mockRepo.On("GetByID", mock.Anything, "store-1").Return(store, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.Store")).Return(nil)

	mockEvents := new(MockEventPublisher)
	mockEvents.On("PublishEvent", services.EventProductAdded, mock.Anything).Return(nil)

	service := services.NewInventoryService(mockRepo, mockEvents)

	product, err := service.AddProduct(context.Background(), "store-1", "Widget", "WID-1", 9.99, 10)

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestInventoryService_UpdateProduct_ProductNotFound(t *testing.T) {
	store, err := models.NewStore("store-1", "Acme")
	require.NoError(t, err)

	mockRepo := new(MockStoreRepository)
	mockRepo.On("GetByID", mock.Anything, "store-1").Return(store, nil)
	service := services.NewInventoryService(mockRepo, nil)

	err = service.UpdateProduct(context.Background(), "store-1", "missing", "Widget", 1, 1)

	assert.True(t, models.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
