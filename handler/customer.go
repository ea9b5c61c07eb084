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
	"gorm.io/gorm"
)

func GetCustomers(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.CustomerFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Customer{}).Where("company_id = ?", companyId)
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		db = db.Where("LOWER(name) LIKE ? OR phone LIKE ?", pattern, pattern)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var customers []model.Customer
	if err := db.Preload("Neighborhood").Order("name asc").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os clientes", err)
	}

	response := &model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCustomerById(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	customerId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var customer model.Customer
	if err := database.DB.Preload("Neighborhood").Where("company_id = ?", companyId).First(&customer, customerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cliente não encontrado", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func CreateCustomer(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newCustomer := new(model.Customer)
	copier.Copy(&newCustomer, &input)
	newCustomer.CompanyID = companyId
	newCustomer.Active = true

	if err := database.DB.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o cliente", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCustomer)
}

func UpdateCustomer(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	customerId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var customer model.Customer
	if err := database.DB.Where("company_id = ?", companyId).First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Cliente não encontrado", err)
	}

	copier.CopyWithOption(&customer, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		customer.Active = *input.Active
	}

	if err := database.DB.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o cliente", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func DeleteCustomers(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	// soft delete: clientes saem das listagens mas os pedidos antigos ficam
	if err := database.DB.Model(&model.Customer{}).
		Where("company_id = ? AND id IN ?", companyId, input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir os clientes", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Clientes removidos"})
}
