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

func GetPrioritySettings(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	var settings []model.PrioritySetting
	if err := database.DB.
		Where("company_id = ?", companyId).
		Order("status asc, minutes_threshold asc").
		Find(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar as regras de prioridade", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

func CreatePrioritySetting(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreatePrioritySettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newSetting := new(model.PrioritySetting)
	copier.Copy(&newSetting, &input)
	newSetting.CompanyID = companyId

	if err := database.DB.Create(&newSetting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a regra de prioridade", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newSetting)
}

func UpdatePrioritySetting(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	settingId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdatePrioritySettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var setting model.PrioritySetting
	if err := database.DB.Where("company_id = ?", companyId).First(&setting, settingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Regra de prioridade não encontrada", err)
	}

	copier.CopyWithOption(&setting, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a regra de prioridade", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

func DeletePrioritySettings(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.
		Where("company_id = ? AND id IN ?", companyId, input.IDs).
		Delete(&model.PrioritySetting{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir as regras de prioridade", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Regras removidas"})
}
