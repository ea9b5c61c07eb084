package model

type Customer struct {
	DTO
	CompanyID      uint          `gorm:"index" json:"companyId"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Street         string        `json:"street"`
	Number         string        `json:"number"`
	Complement     string        `json:"complement"`
	NeighborhoodID *uint         `json:"neighborhoodId"`
	Neighborhood   *Neighborhood `json:"neighborhood,omitempty"`
	Notes          string        `json:"notes"`
	Active         bool          `gorm:"default:true" json:"active"`
}

type CreateCustomerInput struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	Phone          string `json:"phone" validate:"required,min=8,max=20"`
	Street         string `json:"street"`
	Number         string `json:"number"`
	Complement     string `json:"complement"`
	NeighborhoodID *uint  `json:"neighborhoodId"`
	Notes          string `json:"notes"`
}

type UpdateCustomerInput struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=120"`
	Phone          *string `json:"phone" validate:"omitempty,min=8,max=20"`
	Street         *string `json:"street"`
	Number         *string `json:"number"`
	Complement     *string `json:"complement"`
	NeighborhoodID *uint   `json:"neighborhoodId"`
	Notes          *string `json:"notes"`
	Active         *bool   `json:"active"`
}

type CustomerFilter struct {
	Pagination
	Search *string `query:"search"` // nome ou telefone
	Active *bool   `query:"active"`
}
