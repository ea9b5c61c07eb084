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

func GetNeighborhoods(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.CatalogFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Neighborhood{}).Where("company_id = ?", companyId)
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

	var neighborhoods []model.Neighborhood
	if err := db.Order("name asc").Find(&neighborhoods).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os bairros", err)
	}

	response := &model.ResponseCustom{
		Rows:       neighborhoods,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateNeighborhood(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateNeighborhoodInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newNeighborhood := new(model.Neighborhood)
	copier.Copy(&newNeighborhood, &input)
	newNeighborhood.CompanyID = companyId
	newNeighborhood.Active = true

	if err := database.DB.Create(&newNeighborhood).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o bairro", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newNeighborhood)
}

func UpdateNeighborhood(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	neighborhoodId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateNeighborhoodInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var neighborhood model.Neighborhood
	if err := database.DB.Where("company_id = ?", companyId).First(&neighborhood, neighborhoodId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Bairro não encontrado", err)
	}

	copier.CopyWithOption(&neighborhood, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		neighborhood.Active = *input.Active
	}
	if input.DeliveryFee != nil {
		neighborhood.DeliveryFee = *input.DeliveryFee
	}

	if err := database.DB.Save(&neighborhood).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o bairro", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, neighborhood)
}

func DeleteNeighborhoods(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Model(&model.Neighborhood{}).
		Where("company_id = ? AND id IN ?", companyId, input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir os bairros", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Bairros removidos"})
}
