package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPaymentMethods(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.CatalogFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.PaymentMethod{}).Where("company_id = ?", companyId)
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var methods []model.PaymentMethod
	if err := db.Order("name asc").Find(&methods).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar as formas de pagamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, methods)
}

func CreatePaymentMethod(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreatePaymentMethodInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newMethod := new(model.PaymentMethod)
	copier.Copy(&newMethod, &input)
	newMethod.CompanyID = companyId
	newMethod.Active = true

	if err := database.DB.Create(&newMethod).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a forma de pagamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newMethod)
}

func UpdatePaymentMethod(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	methodId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdatePaymentMethodInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var method model.PaymentMethod
	if err := database.DB.Where("company_id = ?", companyId).First(&method, methodId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Forma de pagamento não encontrada", err)
	}

	copier.CopyWithOption(&method, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		method.Active = *input.Active
	}
	if input.AllowsChange != nil {
		method.AllowsChange = *input.AllowsChange
	}

	if err := database.DB.Save(&method).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a forma de pagamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, method)
}

func DeletePaymentMethods(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Model(&model.PaymentMethod{}).
		Where("company_id = ? AND id IN ?", companyId, input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir as formas de pagamento", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Formas de pagamento removidas"})
}
