package partner

import (
	"context"
	"testing"
	"time"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFollowUpRepository is a mock implementation of FollowUpRepository
type MockFollowUpRepository struct {
	mock.Mock
}

func (m *MockFollowUpRepository) Create(ctx context.Context, followUp *partner.CustomerFollowUp) error {
	args := m.Called(ctx, followUp)
	return args.Error(0)
}

func (m *MockFollowUpRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]partner.CustomerFollowUp, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]partner.CustomerFollowUp), args.Error(1)
}

func (m *MockFollowUpRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		svc := NewCustomerService(customerRepo, new(MockFollowUpRepository))

		customerRepo.On("Create", ctx, mock.AnythingOfType("*partner.Customer")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*partner.Customer).Code = "KH0001"
			}).
			Return(nil)

		resp, err := svc.Create(ctx, CreateCustomerRequest{Name: "Binh", Phone: "0901"})
		require.NoError(t, err)
		assert.Equal(t, "KH0001", resp.Code)
		assert.Equal(t, "Binh", resp.Name)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc := NewCustomerService(new(MockCustomerRepository), new(MockFollowUpRepository))

		_, err := svc.Create(ctx, CreateCustomerRequest{Name: ""})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
	})
}

func TestCustomerService_AddFollowUp(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a live customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		followUpRepo := new(MockFollowUpRepository)
		svc := NewCustomerService(customerRepo, followUpRepo)
		id := uuid.New()

		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.AddFollowUp(ctx, id, CreateFollowUpRequest{Note: "call back", DueDate: time.Now()})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		followUpRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("schedules against a live customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		followUpRepo := new(MockFollowUpRepository)
		svc := NewCustomerService(customerRepo, followUpRepo)

		customer, err := partner.NewCustomer("Binh", "", "")
		require.NoError(t, err)
		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		followUpRepo.On("Create", ctx, mock.AnythingOfType("*partner.CustomerFollowUp")).Return(nil)

		resp, err := svc.AddFollowUp(ctx, customer.ID, CreateFollowUpRequest{
			Note:    "send quote",
			DueDate: time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, customer.ID, resp.CustomerID)
		assert.False(t, resp.Done)
	})
}
