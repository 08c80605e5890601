package project

import (
	"context"
	"testing"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/project"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]project.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderItemRepository is a mock implementation of OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) Create(ctx context.Context, item *project.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.OrderItem, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]project.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkshopJobRepository is a mock implementation of WorkshopJobRepository
type MockWorkshopJobRepository struct {
	mock.Mock
}

func (m *MockWorkshopJobRepository) Create(ctx context.Context, job *project.WorkshopJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockWorkshopJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.WorkshopJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.WorkshopJob), args.Error(1)
}

func (m *MockWorkshopJobRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.WorkshopJob, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]project.WorkshopJob), args.Error(1)
}

func (m *MockWorkshopJobRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkshopJobItemRepository is a mock implementation of WorkshopJobItemRepository
type MockWorkshopJobItemRepository struct {
	mock.Mock
}

func (m *MockWorkshopJobItemRepository) Create(ctx context.Context, item *project.WorkshopJobItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWorkshopJobItemRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]project.WorkshopJobItem, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]project.WorkshopJobItem), args.Error(1)
}

func (m *MockWorkshopJobItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
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

// MockWorkshopRepository is a mock implementation of partner.WorkshopRepository
type MockWorkshopRepository struct {
	mock.Mock
}

func (m *MockWorkshopRepository) Create(ctx context.Context, workshop *partner.Workshop) error {
	args := m.Called(ctx, workshop)
	return args.Error(0)
}

func (m *MockWorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Workshop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Workshop), args.Error(1)
}

func (m *MockWorkshopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Workshop, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Workshop), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkshopRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type projectServiceMocks struct {
	projectRepo   *MockProjectRepository
	orderItemRepo *MockOrderItemRepository
	jobRepo       *MockWorkshopJobRepository
	jobItemRepo   *MockWorkshopJobItemRepository
	customerRepo  *MockCustomerRepository
	workshopRepo  *MockWorkshopRepository
}

func newProjectService() (*ProjectService, *projectServiceMocks) {
	m := &projectServiceMocks{
		projectRepo:   new(MockProjectRepository),
		orderItemRepo: new(MockOrderItemRepository),
		jobRepo:       new(MockWorkshopJobRepository),
		jobItemRepo:   new(MockWorkshopJobItemRepository),
		customerRepo:  new(MockCustomerRepository),
		workshopRepo:  new(MockWorkshopRepository),
	}
	svc := NewProjectService(
		m.projectRepo, m.orderItemRepo, m.jobRepo, m.jobItemRepo, m.customerRepo, m.workshopRepo,
	)
	return svc, m
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a project for a live customer", func(t *testing.T) {
		svc, m := newProjectService()
		customer, err := partner.NewCustomer("Binh", "", "")
		require.NoError(t, err)

		m.customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		m.projectRepo.On("Create", ctx, mock.AnythingOfType("*project.Project")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*project.Project).Code = "DA0001"
			}).
			Return(nil)

		resp, err := svc.Create(ctx, CreateProjectRequest{CustomerID: customer.ID, Name: "Dining table"})
		require.NoError(t, err)
		assert.Equal(t, "DA0001", resp.Code)
		assert.Equal(t, "OPEN", resp.Status)
	})

	t.Run("a deleted customer is a validation failure", func(t *testing.T) {
		svc, m := newProjectService()
		customerID := uuid.New()

		m.customerRepo.On("FindByID", ctx, customerID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateProjectRequest{CustomerID: customerID, Name: "Dining table"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
		m.projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProjectService_AddWorkshopJob(t *testing.T) {
	ctx := context.Background()

	t.Run("requires both a live project and a live workshop", func(t *testing.T) {
		svc, m := newProjectService()
		customerID := uuid.New()
		p, err := project.NewProject(customerID, "Dining table")
		require.NoError(t, err)
		workshopID := uuid.New()

		m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
		m.workshopRepo.On("FindByID", ctx, workshopID).Return(nil, shared.ErrNotFound)

		_, err = svc.AddWorkshopJob(ctx, p.ID, CreateWorkshopJobRequest{
			WorkshopID: workshopID,
			Name:       "Carpentry",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
	})
}

func TestProjectService_AddOrderItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a line and computes the total", func(t *testing.T) {
		svc, m := newProjectService()
		p, err := project.NewProject(uuid.New(), "Dining table")
		require.NoError(t, err)

		m.projectRepo.On("FindByID", ctx, p.ID).Return(p, nil)
		m.orderItemRepo.On("Create", ctx, mock.AnythingOfType("*project.OrderItem")).Return(nil)

		resp, err := svc.AddOrderItem(ctx, p.ID, CreateOrderItemRequest{
			Description: "Oak chairs",
			Quantity:    4,
			UnitPrice:   decimal.NewFromInt(120),
		})
		require.NoError(t, err)
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(480)), resp.Total.String())
	})
}
