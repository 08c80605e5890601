package project

import (
	"context"

	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository persists projects
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, int64, error)
	Save(ctx context.Context, p *Project) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// OrderItemRepository persists order items
type OrderItemRepository interface {
	Create(ctx context.Context, item *OrderItem) error
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]OrderItem, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// WorkshopJobRepository persists workshop jobs
type WorkshopJobRepository interface {
	Create(ctx context.Context, job *WorkshopJob) error
	FindByID(ctx context.Context, id uuid.UUID) (*WorkshopJob, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]WorkshopJob, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// WorkshopJobItemRepository persists workshop job items
type WorkshopJobItemRepository interface {
	Create(ctx context.Context, item *WorkshopJobItem) error
	FindByJob(ctx context.Context, jobID uuid.UUID) ([]WorkshopJobItem, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
