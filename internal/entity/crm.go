package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Company struct {
	ID      uuid.UUID `json:"id,omitempty"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
}

type Client struct {
	ID        uuid.UUID `json:"id,omitempty"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
}

type LeadStatus = string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

type Lead struct {
	ID        uuid.UUID  `json:"id,omitempty"`
	CompanyID uuid.UUID  `json:"company_id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	Status    LeadStatus `json:"status,omitempty"`
}

type Supplier struct {
	ID        uuid.UUID `json:"id,omitempty"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
}
