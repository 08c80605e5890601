package project

import (
	"time"

	"github.com/atelier/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest represents a request to open a customer project
type CreateProjectRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Name       string    `json:"name" binding:"required,min=1,max=200"`
	Note       string    `json:"note" binding:"max=2000"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=200"`
	Status *string `json:"status" binding:"omitempty,oneof=OPEN COMPLETED CANCELLED"`
	Note   *string `json:"note" binding:"omitempty,max=2000"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToProjectResponse converts a domain project to its API representation
func ToProjectResponse(p *project.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:         p.ID,
		Code:       p.Code,
		CustomerID: p.CustomerID,
		Name:       p.Name,
		Status:     string(p.Status),
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// CreateOrderItemRequest represents one ordered line on a project
type CreateOrderItemRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// OrderItemResponse represents an order item in API responses
type OrderItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProjectID   uuid.UUID       `json:"project_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// ToOrderItemResponse converts a domain order item to its API representation
func ToOrderItemResponse(i *project.OrderItem) *OrderItemResponse {
	return &OrderItemResponse{
		ID:          i.ID,
		ProjectID:   i.ProjectID,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		Total:       i.Total(),
	}
}

// CreateWorkshopJobRequest represents a request to outsource work
type CreateWorkshopJobRequest struct {
	WorkshopID uuid.UUID `json:"workshop_id" binding:"required"`
	Name       string    `json:"name" binding:"required,min=1,max=200"`
	Note       string    `json:"note" binding:"max=2000"`
}

// WorkshopJobResponse represents a workshop job in API responses
type WorkshopJobResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	ProjectID  uuid.UUID `json:"project_id"`
	WorkshopID uuid.UUID `json:"workshop_id"`
	Name       string    `json:"name"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToWorkshopJobResponse converts a domain workshop job to its API representation
func ToWorkshopJobResponse(j *project.WorkshopJob) *WorkshopJobResponse {
	return &WorkshopJobResponse{
		ID:         j.ID,
		Code:       j.Code,
		ProjectID:  j.ProjectID,
		WorkshopID: j.WorkshopID,
		Name:       j.Name,
		Note:       j.Note,
		CreatedAt:  j.CreatedAt,
	}
}

// CreateJobItemRequest represents one costed line on a workshop job
type CreateJobItemRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitCost    decimal.Decimal `json:"unit_cost" binding:"required"`
}

// JobItemResponse represents a workshop job item in API responses
type JobItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	WorkshopJobID uuid.UUID       `json:"workshop_job_id"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// ToJobItemResponse converts a domain job item to its API representation
func ToJobItemResponse(i *project.WorkshopJobItem) *JobItemResponse {
	return &JobItemResponse{
		ID:            i.ID,
		WorkshopJobID: i.WorkshopJobID,
		Description:   i.Description,
		Quantity:      i.Quantity,
		UnitCost:      i.UnitCost,
	}
}
