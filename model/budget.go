package model

import "time"

const (
	BudgetOpen     = "aberto"
	BudgetApproved = "aprovado"
	BudgetExpired  = "expirado"
)

type PurchaseBudget struct {
	DTO
	CompanyID    uint                 `gorm:"index" json:"companyId"`
	SupplierName string               `json:"supplierName"`
	Status       string               `gorm:"default:aberto" json:"status"`
	ValidUntil   *time.Time           `json:"validUntil"`
	TotalAmount  float64              `json:"totalAmount"`
	Notes        string               `json:"notes"`
	Items        []PurchaseBudgetItem `gorm:"foreignKey:PurchaseBudgetID;constraint:OnDelete:CASCADE" json:"items"`
}

type PurchaseBudgetItem struct {
	DTO
	PurchaseBudgetID uint    `gorm:"index" json:"purchaseBudgetId"`
	Description      string  `json:"description"`
	Quantity         float64 `json:"quantity"`
	UnitPrice        float64 `json:"unitPrice"`
	TotalPrice       float64 `json:"totalPrice"`
}

type PurchaseBudgetItemInput struct {
	Description string  `json:"description" validate:"required,min=2,max=200"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"required,gte=0"`
}

type CreatePurchaseBudgetInput struct {
	SupplierName string                    `json:"supplierName" validate:"required,min=2,max=120"`
	ValidUntil   *string                   `json:"validUntil"` // 2006-01-02
	Notes        string                    `json:"notes"`
	Items        []PurchaseBudgetItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdatePurchaseBudgetInput struct {
	SupplierName *string `json:"supplierName" validate:"omitempty,min=2,max=120"`
	Status       *string `json:"status" validate:"omitempty,oneof=aberto aprovado expirado"`
	ValidUntil   *string `json:"validUntil"`
	Notes        *string `json:"notes"`
}
