package models

import (
	"github.com/atelier/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectModel is the persistence model for the Project domain entity.
type ProjectModel struct {
	AggregateModel
	Code       string                `gorm:"type:varchar(20);not null;uniqueIndex:idx_project_code"`
	CustomerID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Name       string                `gorm:"type:varchar(200);not null"`
	Status     project.ProjectStatus `gorm:"type:varchar(20);not null;default:'OPEN'"`
	Note       string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	p := &project.Project{
		Code:       m.Code,
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Status:     m.Status,
		Note:       m.Note,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.CustomerID = p.CustomerID
	m.Name = p.Name
	m.Status = p.Status
	m.Note = p.Note
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// OrderItemModel is the persistence model for the OrderItem domain entity.
type OrderItemModel struct {
	AggregateModel
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *project.OrderItem {
	i := &project.OrderItem{
		ProjectID:   m.ProjectID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
	m.PopulateAggregateRoot(&i.BaseAggregateRoot)
	return i
}

// OrderItemModelFromDomain creates a new persistence model from a domain entity.
func OrderItemModelFromDomain(i *project.OrderItem) *OrderItemModel {
	m := &OrderItemModel{}
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.ProjectID = i.ProjectID
	m.Description = i.Description
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	return m
}

// WorkshopJobModel is the persistence model for the WorkshopJob domain entity.
type WorkshopJobModel struct {
	AggregateModel
	Code       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_workshop_job_code"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkshopID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Note       string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WorkshopJobModel) TableName() string {
	return "workshop_jobs"
}

// ToDomain converts the persistence model to a domain WorkshopJob entity.
func (m *WorkshopJobModel) ToDomain() *project.WorkshopJob {
	j := &project.WorkshopJob{
		Code:       m.Code,
		ProjectID:  m.ProjectID,
		WorkshopID: m.WorkshopID,
		Name:       m.Name,
		Note:       m.Note,
	}
	m.PopulateAggregateRoot(&j.BaseAggregateRoot)
	return j
}

// WorkshopJobModelFromDomain creates a new persistence model from a domain entity.
func WorkshopJobModelFromDomain(j *project.WorkshopJob) *WorkshopJobModel {
	m := &WorkshopJobModel{}
	m.FromDomainAggregateRoot(j.BaseAggregateRoot)
	m.Code = j.Code
	m.ProjectID = j.ProjectID
	m.WorkshopID = j.WorkshopID
	m.Name = j.Name
	m.Note = j.Note
	return m
}

// WorkshopJobItemModel is the persistence model for the WorkshopJobItem domain entity.
type WorkshopJobItemModel struct {
	AggregateModel
	WorkshopJobID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:varchar(500);not null"`
	Quantity      int             `gorm:"not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (WorkshopJobItemModel) TableName() string {
	return "workshop_job_items"
}

// ToDomain converts the persistence model to a domain WorkshopJobItem entity.
func (m *WorkshopJobItemModel) ToDomain() *project.WorkshopJobItem {
	i := &project.WorkshopJobItem{
		WorkshopJobID: m.WorkshopJobID,
		Description:   m.Description,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost,
	}
	m.PopulateAggregateRoot(&i.BaseAggregateRoot)
	return i
}

// WorkshopJobItemModelFromDomain creates a new persistence model from a domain entity.
func WorkshopJobItemModelFromDomain(i *project.WorkshopJobItem) *WorkshopJobItemModel {
	m := &WorkshopJobItemModel{}
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.WorkshopJobID = i.WorkshopJobID
	m.Description = i.Description
	m.Quantity = i.Quantity
	m.UnitCost = i.UnitCost
	return m
}
