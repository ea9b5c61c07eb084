package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetFinancialEntries(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.FinancialEntryFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.FinancialEntry{}).Where("company_id = ?", companyId)
	if filter.EntryType != nil && *filter.EntryType != "" {
		db = db.Where("entry_type = ?", *filter.EntryType)
	}
	if filter.DateStart != nil {
		if start, err := utils.ParseDate(*filter.DateStart); err == nil {
			db = db.Where("entry_date >= ?", start)
		}
	}
	if filter.DateEnd != nil {
		if end, err := utils.ParseDate(*filter.DateEnd); err == nil {
			db = db.Where("entry_date < ?", end.AddDate(0, 0, 1))
		}
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var entries []model.FinancialEntry
	if err := db.
		Preload("CostCenter").
		Preload("ExpenseCategory").
		Order("entry_date desc, id desc").
		Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os lançamentos", err)
	}

	response := &model.ResponseCustom{
		Rows:       entries,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateFinancialEntry(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateFinancialEntryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	entryDate, err := utils.ParseDate(input.EntryDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Data do lançamento inválida", err)
	}

	entryTime := input.EntryTime
	if entryTime == "" {
		entryTime = time.Now().Format("15:04")
	}

	newEntry := model.FinancialEntry{
		CompanyID:         companyId,
		Description:       input.Description,
		Amount:            input.Amount,
		EntryDate:         entryDate,
		EntryTime:         entryTime,
		EntryType:         input.EntryType,
		CostCenterID:      input.CostCenterID,
		ExpenseCategoryID: input.ExpenseCategoryID,
		Notes:             input.Notes,
	}

	if err := database.DB.Create(&newEntry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o lançamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEntry)
}

func UpdateFinancialEntry(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	entryId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateFinancialEntryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var entry model.FinancialEntry
	if err := database.DB.Where("company_id = ?", companyId).First(&entry, entryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Lançamento não encontrado", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// receita automática de pedido finalizado não é editável
	if entry.OrderID != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ENTRY_LOCKED, errors.New("entry linked to order"))
	}

	copier.CopyWithOption(&entry, &input, copier.Option{IgnoreEmpty: true})
	if input.EntryDate != nil {
		if parsed, err := utils.ParseDate(*input.EntryDate); err == nil {
			entry.EntryDate = parsed
		}
	}

	if err := database.DB.Save(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o lançamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, entry)
}

func DeleteFinancialEntries(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	// lançamentos vinculados a pedidos ficam fora da exclusão
	if err := database.DB.
		Where("company_id = ? AND id IN ? AND order_id IS NULL", companyId, input.IDs).
		Delete(&model.FinancialEntry{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir os lançamentos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Lançamentos removidos"})
}

// GetCashFlow agrega o livro caixa por dia dentro do intervalo pedido.
func GetCashFlow(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	dateStart := c.Query("dateStart")
	dateEnd := c.Query("dateEnd")

	end := time.Now()
	if dateEnd != "" {
		if parsed, err := utils.ParseDate(dateEnd); err == nil {
			end = parsed
		}
	}
	start := end.AddDate(0, 0, -30)
	if dateStart != "" {
		if parsed, err := utils.ParseDate(dateStart); err == nil {
			start = parsed
		}
	}

	var entries []model.FinancialEntry
	if err := database.DB.
		Where("company_id = ? AND entry_date >= ? AND entry_date < ?", companyId, start, end.AddDate(0, 0, 1)).
		Order("entry_date asc").
		Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível montar o fluxo de caixa", err)
	}

	summary := model.CashFlowSummary{Days: []model.CashFlowDay{}}
	byDay := map[string]*model.CashFlowDay{}
	order := []string{}

	for _, entry := range entries {
		key := entry.EntryDate.Format("2006-01-02")
		day, exists := byDay[key]
		if !exists {
			day = &model.CashFlowDay{Date: key}
			byDay[key] = day
			order = append(order, key)
		}
		if entry.EntryType == model.EntryTypeIncome {
			day.Income += entry.Amount
			summary.TotalIncome += entry.Amount
		} else {
			day.Expense += entry.Amount
			summary.TotalExpense += entry.Amount
		}
	}

	for _, key := range order {
		day := byDay[key]
		day.Balance = day.Income - day.Expense
		summary.Days = append(summary.Days, *day)
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

func GetCostCenters(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	var centers []model.CostCenter
	if err := database.DB.
		Where("company_id = ?", companyId).
		Order("name asc").
		Find(&centers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os centros de custo", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, centers)
}

func CreateCostCenter(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateNamedInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newCenter := model.CostCenter{CompanyID: companyId, Name: input.Name, Active: true}
	if err := database.DB.Create(&newCenter).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o centro de custo", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCenter)
}

func UpdateCostCenter(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	centerId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateNamedInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var center model.CostCenter
	if err := database.DB.Where("company_id = ?", companyId).First(&center, centerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Centro de custo não encontrado", err)
	}

	if input.Name != nil {
		center.Name = *input.Name
	}
	if input.Active != nil {
		center.Active = *input.Active
	}

	if err := database.DB.Save(&center).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o centro de custo", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, center)
}

func GetExpenseCategories(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	var categories []model.ExpenseCategory
	if err := database.DB.
		Where("company_id = ?", companyId).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar as categorias de despesa", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateExpenseCategory(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateNamedInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newCategory := model.ExpenseCategory{CompanyID: companyId, Name: input.Name, Active: true}
	if err := database.DB.Create(&newCategory).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a categoria", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCategory)
}

func UpdateExpenseCategory(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	categoryId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateNamedInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.ExpenseCategory
	if err := database.DB.Where("company_id = ?", companyId).First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Categoria não encontrada", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a categoria", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}
