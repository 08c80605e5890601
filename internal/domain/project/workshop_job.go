package project

import (
	"github.com/atelier/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkshopJob is a production task executed by a workshop for a project.
// Its items and any transactions referencing it must be purged first.
type WorkshopJob struct {
	shared.BaseAggregateRoot
	Code       string    `json:"code"`
	ProjectID  uuid.UUID `json:"project_id"`
	WorkshopID uuid.UUID `json:"workshop_id"`
	Name       string    `json:"name"`
	Note       string    `json:"note"`
}

// NewWorkshopJob creates a job under a project, assigned to a workshop
func NewWorkshopJob(projectID, workshopID uuid.UUID, name string) (*WorkshopJob, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewValidationError("project_id", "Project is required")
	}
	if workshopID == uuid.Nil {
		return nil, shared.NewValidationError("workshop_id", "Workshop is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("name", "Job name is required")
	}
	return &WorkshopJob{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectID:         projectID,
		WorkshopID:        workshopID,
		Name:              name,
	}, nil
}

// WorkshopJobItem is a cost line item belonging to a workshop job
type WorkshopJobItem struct {
	shared.BaseAggregateRoot
	WorkshopJobID uuid.UUID       `json:"workshop_job_id"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// NewWorkshopJobItem creates a cost line under a workshop job
func NewWorkshopJobItem(jobID uuid.UUID, description string, quantity int, unitCost decimal.Decimal) (*WorkshopJobItem, error) {
	if jobID == uuid.Nil {
		return nil, shared.NewValidationError("workshop_job_id", "Workshop job is required")
	}
	if description == "" {
		return nil, shared.NewValidationError("description", "Description is required")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("quantity", "Quantity must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewValidationError("unit_cost", "Unit cost must be non-negative")
	}
	return &WorkshopJobItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WorkshopJobID:     jobID,
		Description:       description,
		Quantity:          quantity,
		UnitCost:          unitCost,
	}, nil
}
