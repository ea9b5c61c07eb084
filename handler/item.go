package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetItems(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.CatalogFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Item{}).Where("company_id = ?", companyId)
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		db = db.Where("LOWER(name) LIKE ?", pattern)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var items []model.Item
	if err := db.Order("name asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os complementos", err)
	}

	response := &model.ResponseCustom{
		Rows:       items,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateItem(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newItem := new(model.Item)
	copier.Copy(&newItem, &input)
	newItem.CompanyID = companyId
	newItem.Active = true

	if err := database.DB.Create(&newItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o complemento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newItem)
}

func UpdateItem(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var item model.Item
	if err := database.DB.Where("company_id = ?", companyId).First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Complemento não encontrado", err)
	}

	copier.CopyWithOption(&item, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o complemento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteItems(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Model(&model.Item{}).
		Where("company_id = ? AND id IN ?", companyId, input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir os complementos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Complementos removidos"})
}
