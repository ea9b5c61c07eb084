package model

import "time"

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

// FinancialEntry é uma linha do livro caixa. A entrada automática de receita
// carrega OrderID; o índice único (order_id, entry_type) garante no máximo
// uma receita por pedido finalizado.
type FinancialEntry struct {
	DTO
	CompanyID         uint             `gorm:"index" json:"companyId"`
	Description       string           `json:"description"`
	Amount            float64          `json:"amount"`
	EntryDate         time.Time        `json:"entryDate"`
	EntryTime         string           `json:"entryTime"` // HH:MM
	EntryType         string           `gorm:"uniqueIndex:idx_entry_order_type;size:10" json:"entryType"`
	OrderID           *uint            `gorm:"uniqueIndex:idx_entry_order_type" json:"orderId"`
	CostCenterID      *uint            `json:"costCenterId"`
	CostCenter        *CostCenter      `json:"costCenter,omitempty"`
	ExpenseCategoryID *uint            `json:"expenseCategoryId"`
	ExpenseCategory   *ExpenseCategory `json:"expenseCategory,omitempty"`
	Notes             string           `json:"notes"`
}

type CostCenter struct {
	DTO
	CompanyID uint   `gorm:"index" json:"companyId"`
	Name      string `json:"name"`
	Active    bool   `gorm:"default:true" json:"active"`
}

type ExpenseCategory struct {
	DTO
	CompanyID uint   `gorm:"index" json:"companyId"`
	Name      string `json:"name"`
	Active    bool   `gorm:"default:true" json:"active"`
}

type CreateFinancialEntryInput struct {
	Description       string  `json:"description" validate:"required,min=2,max=200"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
	EntryDate         string  `json:"entryDate" validate:"required"` // 2006-01-02
	EntryTime         string  `json:"entryTime"`
	EntryType         string  `json:"entryType" validate:"required,oneof=income expense"`
	CostCenterID      *uint   `json:"costCenterId"`
	ExpenseCategoryID *uint   `json:"expenseCategoryId"`
	Notes             string  `json:"notes"`
}

type UpdateFinancialEntryInput struct {
	Description       *string  `json:"description" validate:"omitempty,min=2,max=200"`
	Amount            *float64 `json:"amount" validate:"omitempty,gt=0"`
	EntryDate         *string  `json:"entryDate"`
	EntryTime         *string  `json:"entryTime"`
	CostCenterID      *uint    `json:"costCenterId"`
	ExpenseCategoryID *uint    `json:"expenseCategoryId"`
	Notes             *string  `json:"notes"`
}

type FinancialEntryFilter struct {
	Pagination
	EntryType *string `query:"entryType"`
	DateStart *string `query:"dateStart"`
	DateEnd   *string `query:"dateEnd"`
}

type CreateNamedInput struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

type UpdateNamedInput struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=120"`
	Active *bool   `json:"active"`
}

type CashFlowDay struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type CashFlowSummary struct {
	TotalIncome  float64       `json:"totalIncome"`
	TotalExpense float64       `json:"totalExpense"`
	Balance      float64       `json:"balance"`
	Days         []CashFlowDay `json:"days"`
}
