package persistence

import (
	"context"
	"errors"

	"github.com/atelier/backend/internal/domain/ledger"
	"github.com/atelier/backend/internal/domain/project"
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/atelier/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create allocates the next DA-code and inserts the project atomically
func (r *GormProjectRepository) Create(ctx context.Context, p *project.Project) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.ProjectModel{}, ledger.CodePrefix(project.ProjectCodePrefix))
		if err != nil {
			return err
		}
		p.Code = code
		return tx.Create(models.ProjectModelFromDomain(p)).Error
	})
}

// FindByID finds a live project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds projects matching the filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]project.Project, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProjectModel{})
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(code) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projectModels []models.ProjectModel
	if err := applyListOptions(query, filter, "code ASC").Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]project.Project, len(projectModels))
	for i, model := range projectModels {
		projects[i] = *model.ToDomain()
	}
	return projects, total, nil
}

// Save updates an existing project
func (r *GormProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Save(models.ProjectModelFromDomain(p)).Error
}

// SoftDelete marks the project deleted
func (r *GormProjectRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.ProjectModel{}, id)
}

// GormOrderItemRepository implements OrderItemRepository using GORM
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GormOrderItemRepository
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// Create inserts a new order item
func (r *GormOrderItemRepository) Create(ctx context.Context, item *project.OrderItem) error {
	return r.db.WithContext(ctx).Create(models.OrderItemModelFromDomain(item)).Error
}

// FindByProject finds the live order items of a project
func (r *GormOrderItemRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.OrderItem, error) {
	var itemModels []models.OrderItemModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]project.OrderItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// SoftDelete marks the order item deleted
func (r *GormOrderItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.OrderItemModel{}, id)
}

// GormWorkshopJobRepository implements WorkshopJobRepository using GORM
type GormWorkshopJobRepository struct {
	db *gorm.DB
}

// NewGormWorkshopJobRepository creates a new GormWorkshopJobRepository
func NewGormWorkshopJobRepository(db *gorm.DB) *GormWorkshopJobRepository {
	return &GormWorkshopJobRepository{db: db}
}

// Create allocates the next CV-code and inserts the job atomically
func (r *GormWorkshopJobRepository) Create(ctx context.Context, job *project.WorkshopJob) error {
	return withCodeRetry(ctx, r.db, func(tx *gorm.DB) error {
		code, err := nextCode(tx, &models.WorkshopJobModel{}, ledger.CodePrefix(project.WorkshopJobCodePrefix))
		if err != nil {
			return err
		}
		job.Code = code
		return tx.Create(models.WorkshopJobModelFromDomain(job)).Error
	})
}

// FindByID finds a live workshop job by its ID
func (r *GormWorkshopJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.WorkshopJob, error) {
	var model models.WorkshopJobModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject finds the live jobs of a project
func (r *GormWorkshopJobRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.WorkshopJob, error) {
	var jobModels []models.WorkshopJobModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("code ASC").
		Find(&jobModels).Error; err != nil {
		return nil, err
	}

	jobs := make([]project.WorkshopJob, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = *model.ToDomain()
	}
	return jobs, nil
}

// SoftDelete marks the workshop job deleted
func (r *GormWorkshopJobRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.WorkshopJobModel{}, id)
}

// GormWorkshopJobItemRepository implements WorkshopJobItemRepository using GORM
type GormWorkshopJobItemRepository struct {
	db *gorm.DB
}

// NewGormWorkshopJobItemRepository creates a new GormWorkshopJobItemRepository
func NewGormWorkshopJobItemRepository(db *gorm.DB) *GormWorkshopJobItemRepository {
	return &GormWorkshopJobItemRepository{db: db}
}

// Create inserts a new workshop job item
func (r *GormWorkshopJobItemRepository) Create(ctx context.Context, item *project.WorkshopJobItem) error {
	return r.db.WithContext(ctx).Create(models.WorkshopJobItemModelFromDomain(item)).Error
}

// FindByJob finds the live items of a workshop job
func (r *GormWorkshopJobItemRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]project.WorkshopJobItem, error) {
	var itemModels []models.WorkshopJobItemModel
	if err := r.db.WithContext(ctx).
		Where("workshop_job_id = ?", jobID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]project.WorkshopJobItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// SoftDelete marks the workshop job item deleted
func (r *GormWorkshopJobItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return softDeleteRow(ctx, r.db, &models.WorkshopJobItemModel{}, id)
}

// Ensure the repositories implement their domain interfaces
var (
	_ project.ProjectRepository         = (*GormProjectRepository)(nil)
	_ project.OrderItemRepository       = (*GormOrderItemRepository)(nil)
	_ project.WorkshopJobRepository     = (*GormWorkshopJobRepository)(nil)
	_ project.WorkshopJobItemRepository = (*GormWorkshopJobItemRepository)(nil)
)
