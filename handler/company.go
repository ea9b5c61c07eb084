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

func GetCompanies(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var companies []model.Company
	if err := database.DB.Order("name asc").Find(&companies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar as empresas", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, companies)
}

func CreateCompany(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("createInput").(model.CreateCompanyInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newCompany := new(model.Company)
	copier.Copy(&newCompany, &input)
	newCompany.Slug = helper.GenerateUniqueCompanySlug(database.DB, input.Name)
	newCompany.Active = true

	if err := database.DB.Create(&newCompany).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a empresa", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCompany)
}

func UpdateCompany(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	companyId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateCompanyInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var company model.Company
	if err := database.DB.First(&company, companyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Empresa não encontrada", err)
	}

	// o slug não muda com o nome: links de rastreio já impressos continuam válidos
	copier.CopyWithOption(&company, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		company.Active = *input.Active
	}

	if err := database.DB.Save(&company).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a empresa", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, company)
}
