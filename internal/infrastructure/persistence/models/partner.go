package models

import (
	"time"

	"github.com/atelier/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	Code    string `gorm:"type:varchar(20);not null;uniqueIndex:idx_customer_code"`
	Name    string `gorm:"type:varchar(200);not null"`
	Phone   string `gorm:"type:varchar(50);index"`
	Address string `gorm:"type:text"`
	Note    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		Code:    m.Code,
		Name:    m.Name,
		Phone:   m.Phone,
		Address: m.Address,
		Note:    m.Note,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.Phone = c.Phone
	m.Address = c.Address
	m.Note = c.Note
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// CustomerFollowUpModel is the persistence model for the CustomerFollowUp domain entity.
type CustomerFollowUpModel struct {
	AggregateModel
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Note       string    `gorm:"type:text;not null"`
	DueDate    time.Time `gorm:"not null"`
	Done       bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CustomerFollowUpModel) TableName() string {
	return "customer_follow_ups"
}

// ToDomain converts the persistence model to a domain CustomerFollowUp entity.
func (m *CustomerFollowUpModel) ToDomain() *partner.CustomerFollowUp {
	f := &partner.CustomerFollowUp{
		CustomerID: m.CustomerID,
		Note:       m.Note,
		DueDate:    m.DueDate.UTC(),
		Done:       m.Done,
	}
	m.PopulateAggregateRoot(&f.BaseAggregateRoot)
	return f
}

// CustomerFollowUpModelFromDomain creates a new persistence model from a domain entity.
func CustomerFollowUpModelFromDomain(f *partner.CustomerFollowUp) *CustomerFollowUpModel {
	m := &CustomerFollowUpModel{}
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.CustomerID = f.CustomerID
	m.Note = f.Note
	m.DueDate = f.DueDate
	m.Done = f.Done
	return m
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	AggregateModel
	Code  string `gorm:"type:varchar(20);not null;uniqueIndex:idx_supplier_code"`
	Name  string `gorm:"type:varchar(200);not null"`
	Phone string `gorm:"type:varchar(50)"`
	Note  string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	s := &partner.Supplier{
		Code:  m.Code,
		Name:  m.Name,
		Phone: m.Phone,
		Note:  m.Note,
	}
	m.PopulateAggregateRoot(&s.BaseAggregateRoot)
	return s
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Code = s.Code
	m.Name = s.Name
	m.Phone = s.Phone
	m.Note = s.Note
	return m
}

// WorkshopModel is the persistence model for the Workshop domain entity.
type WorkshopModel struct {
	AggregateModel
	Code string `gorm:"type:varchar(20);not null;uniqueIndex:idx_workshop_code"`
	Name string `gorm:"type:varchar(200);not null"`
	Note string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (WorkshopModel) TableName() string {
	return "workshops"
}

// ToDomain converts the persistence model to a domain Workshop entity.
func (m *WorkshopModel) ToDomain() *partner.Workshop {
	w := &partner.Workshop{
		Code: m.Code,
		Name: m.Name,
		Note: m.Note,
	}
	m.PopulateAggregateRoot(&w.BaseAggregateRoot)
	return w
}

// WorkshopModelFromDomain creates a new persistence model from a domain Workshop entity.
func WorkshopModelFromDomain(w *partner.Workshop) *WorkshopModel {
	m := &WorkshopModel{}
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	m.Code = w.Code
	m.Name = w.Name
	m.Note = w.Note
	return m
}
