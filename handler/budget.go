package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetPurchaseBudgets(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.PurchaseBudget{}).Where("company_id = ?", companyId)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var budgets []model.PurchaseBudget
	if err := db.Preload("Items").Order("created_at desc").Find(&budgets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os orçamentos", err)
	}

	response := &model.ResponseCustom{
		Rows:       budgets,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetPurchaseBudgetById(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	budgetId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var budget model.PurchaseBudget
	if err := database.DB.Preload("Items").Where("company_id = ?", companyId).First(&budget, budgetId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Orçamento não encontrado", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, budget)
}

func CreatePurchaseBudget(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreatePurchaseBudgetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	budget := model.PurchaseBudget{
		CompanyID:    companyId,
		SupplierName: input.SupplierName,
		Status:       model.BudgetOpen,
		Notes:        input.Notes,
	}
	if input.ValidUntil != nil {
		if parsed, err := utils.ParseDate(*input.ValidUntil); err == nil {
			budget.ValidUntil = &parsed
		}
	}

	for _, it := range input.Items {
		line := model.PurchaseBudgetItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.Quantity * it.UnitPrice,
		}
		budget.TotalAmount += line.TotalPrice
		budget.Items = append(budget.Items, line)
	}

	if err := database.DB.Create(&budget).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o orçamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, budget)
}

func UpdatePurchaseBudget(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	budgetId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdatePurchaseBudgetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var budget model.PurchaseBudget
	if err := database.DB.Where("company_id = ?", companyId).First(&budget, budgetId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Orçamento não encontrado", err)
	}

	if input.SupplierName != nil {
		budget.SupplierName = *input.SupplierName
	}
	if input.Status != nil {
		budget.Status = *input.Status
	}
	if input.Notes != nil {
		budget.Notes = *input.Notes
	}
	if input.ValidUntil != nil {
		if parsed, err := utils.ParseDate(*input.ValidUntil); err == nil {
			budget.ValidUntil = &parsed
		}
	}

	if err := database.DB.Save(&budget).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o orçamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, budget)
}

func DeletePurchaseBudgets(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("purchase_budget_id IN (SELECT id FROM purchase_budgets WHERE company_id = ? AND id IN ?)", companyId, input.IDs).
			Delete(&model.PurchaseBudgetItem{}).Error; err != nil {
			return err
		}
		return tx.
			Where("company_id = ? AND id IN ?", companyId, input.IDs).
			Delete(&model.PurchaseBudget{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir os orçamentos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Orçamentos removidos"})
}
