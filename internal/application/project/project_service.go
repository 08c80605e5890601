package project

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/atelier/backend/internal/domain/project"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectService manages customer projects, their ordered lines and the work
// farmed out to workshops.
type ProjectService struct {
	projectRepo   project.ProjectRepository
	orderItemRepo project.OrderItemRepository
	jobRepo       project.WorkshopJobRepository
	jobItemRepo   project.WorkshopJobItemRepository
	customerRepo  partner.CustomerRepository
	workshopRepo  partner.WorkshopRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.ProjectRepository,
	orderItemRepo project.OrderItemRepository,
	jobRepo project.WorkshopJobRepository,
	jobItemRepo project.WorkshopJobItemRepository,
	customerRepo partner.CustomerRepository,
	workshopRepo partner.WorkshopRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		orderItemRepo: orderItemRepo,
		jobRepo:       jobRepo,
		jobItemRepo:   jobItemRepo,
		customerRepo:  customerRepo,
		workshopRepo:  workshopRepo,
	}
}

// Create opens a project for a live customer. The DA-code is allocated inside
// the insert transaction.
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, translateReference(err, "customer_id", "Customer is not live")
	}

	p, err := project.NewProject(req.CustomerID, req.Name)
	if err != nil {
		return nil, err
	}
	p.Note = req.Note

	if err := s.projectRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return ToProjectResponse(p), nil
}

// GetByID retrieves a live project by ID
func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(p), nil
}

// List retrieves projects matching the filter
func (s *ProjectService) List(ctx context.Context, filter shared.Filter) ([]ProjectResponse, int64, error) {
	projects, total, err := s.projectRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *ToProjectResponse(&projects[i])
	}
	return responses, total, nil
}

// Update changes the mutable project fields. The code never changes.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewValidationError("name", "Project name is required")
		}
		p.Name = *req.Name
	}
	if req.Status != nil {
		status := project.ProjectStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewValidationError("status", "Project status must be OPEN, COMPLETED or CANCELLED")
		}
		p.Status = status
	}
	if req.Note != nil {
		p.Note = *req.Note
	}

	if err := s.projectRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToProjectResponse(p), nil
}

// AddOrderItem adds an ordered line to a live project
func (s *ProjectService) AddOrderItem(ctx context.Context, projectID uuid.UUID, req CreateOrderItemRequest) (*OrderItemResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	item, err := project.NewOrderItem(projectID, req.Description, req.Quantity, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if err := s.orderItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ToOrderItemResponse(item), nil
}

// ListOrderItems retrieves the live order items of a project
func (s *ProjectService) ListOrderItems(ctx context.Context, projectID uuid.UUID) ([]OrderItemResponse, error) {
	items, err := s.orderItemRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]OrderItemResponse, len(items))
	for i := range items {
		responses[i] = *ToOrderItemResponse(&items[i])
	}
	return responses, nil
}

// AddWorkshopJob outsources part of a live project to a live workshop. The
// CV-code is allocated inside the insert transaction.
func (s *ProjectService) AddWorkshopJob(ctx context.Context, projectID uuid.UUID, req CreateWorkshopJobRequest) (*WorkshopJobResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, err
	}
	if _, err := s.workshopRepo.FindByID(ctx, req.WorkshopID); err != nil {
		return nil, translateReference(err, "workshop_id", "Workshop is not live")
	}

	job, err := project.NewWorkshopJob(projectID, req.WorkshopID, req.Name)
	if err != nil {
		return nil, err
	}
	job.Note = req.Note

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return ToWorkshopJobResponse(job), nil
}

// ListWorkshopJobs retrieves the live workshop jobs of a project
func (s *ProjectService) ListWorkshopJobs(ctx context.Context, projectID uuid.UUID) ([]WorkshopJobResponse, error) {
	jobs, err := s.jobRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	responses := make([]WorkshopJobResponse, len(jobs))
	for i := range jobs {
		responses[i] = *ToWorkshopJobResponse(&jobs[i])
	}
	return responses, nil
}

// AddJobItem adds a costed line to a live workshop job
func (s *ProjectService) AddJobItem(ctx context.Context, jobID uuid.UUID, req CreateJobItemRequest) (*JobItemResponse, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		return nil, err
	}

	item, err := project.NewWorkshopJobItem(jobID, req.Description, req.Quantity, req.UnitCost)
	if err != nil {
		return nil, err
	}
	if err := s.jobItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ToJobItemResponse(item), nil
}

// ListJobItems retrieves the live items of a workshop job
func (s *ProjectService) ListJobItems(ctx context.Context, jobID uuid.UUID) ([]JobItemResponse, error) {
	items, err := s.jobItemRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	responses := make([]JobItemResponse, len(items))
	for i := range items {
		responses[i] = *ToJobItemResponse(&items[i])
	}
	return responses, nil
}

func translateReference(err error, field, message string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewValidationError(field, message)
	}
	return err
}
