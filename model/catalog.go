package model

type Product struct {
	DTO
	CompanyID uint    `gorm:"index" json:"companyId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	ImageUrl  *string `json:"imageUrl"`
	Active    bool    `gorm:"default:true" json:"active"`
}

// Item é um complemento/adicional vendido junto ao produto.
type Item struct {
	DTO
	CompanyID uint    `gorm:"index" json:"companyId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Active    bool    `gorm:"default:true" json:"active"`
}

type Neighborhood struct {
	DTO
	CompanyID   uint    `gorm:"index" json:"companyId"`
	Name        string  `json:"name"`
	DeliveryFee float64 `json:"deliveryFee"`
	Active      bool    `gorm:"default:true" json:"active"`
}

type PaymentMethod struct {
	DTO
	CompanyID    uint   `gorm:"index" json:"companyId"`
	Name         string `json:"name"`
	AllowsChange bool   `json:"allowsChange"` // dinheiro aceita troco
	Active       bool   `gorm:"default:true" json:"active"`
}

type CreateProductInput struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Category string  `json:"category"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	ImageUrl *string `json:"imageUrl"`
}

type UpdateProductInput struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageUrl *string  `json:"imageUrl"`
	Active   *bool    `json:"active"`
}

type CreateItemInput struct {
	Name  string  `json:"name" validate:"required,min=2,max=120"`
	Price float64 `json:"price" validate:"required,gte=0"`
}

type UpdateItemInput struct {
	Name   *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Price  *float64 `json:"price" validate:"omitempty,gte=0"`
	Active *bool    `json:"active"`
}

type CreateNeighborhoodInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	DeliveryFee float64 `json:"deliveryFee" validate:"gte=0"`
}

type UpdateNeighborhoodInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=120"`
	DeliveryFee *float64 `json:"deliveryFee" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
}

type CreatePaymentMethodInput struct {
	Name         string `json:"name" validate:"required,min=2,max=60"`
	AllowsChange bool   `json:"allowsChange"`
}

type UpdatePaymentMethodInput struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=60"`
	AllowsChange *bool   `json:"allowsChange"`
	Active       *bool   `json:"active"`
}

type CatalogFilter struct {
	Pagination
	Search *string `query:"search"`
	Active *bool   `query:"active"`
}
