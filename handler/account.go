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

func Me(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	var account model.Account
	if err := database.DB.Preload("Company").First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Conta não encontrada", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var accounts []model.Account
	if err := database.DB.Preload("Company").Order("id DESC").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar as contas", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("createInput").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	newAccount := new(model.Account)
	copier.Copy(&newAccount, &input)
	newAccount.Password = hash
	newAccount.Active = true

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar a conta", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newAccount)
}

func ChangePassword(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	var input model.ChangePassword
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.NewPassword == "" || input.NewPassword != input.RepeatPassword {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "As senhas não conferem", nil)
	}

	var account model.Account
	if err := database.DB.First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Conta não encontrada", err)
	}
	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, nil)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	account.Password = hash
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a senha", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Senha alterada com sucesso"})
}

func ActiveAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	accountId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Conta não encontrada", err)
	}

	account.Active = !account.Active
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a conta", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
