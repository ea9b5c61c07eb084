package validate

import (
	"acai_pdv/constants"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateFinancialEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFinancialEntryInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if _, err := utils.ParseDate(input.EntryDate); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Data do lançamento inválida", err)
		}

		// categoria de despesa só vale para despesas
		if input.EntryType == model.EntryTypeIncome && input.ExpenseCategoryID != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Receita não usa categoria de despesa", errors.New("category on income"))
		}

		// Save input to context locals
		c.Locals("createInput", input)

		// Continue to next handler
		return c.Next()
	}
}

func UpdateFinancialEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateFinancialEntryInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.EntryDate != nil {
			if _, err := utils.ParseDate(*input.EntryDate); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Data do lançamento inválida", err)
			}
		}

		// Save input to context locals
		c.Locals("updateInput", input)

		// Continue to next handler
		return c.Next()
	}
}

func CreateNamed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateNamedInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// Save input to context locals
		c.Locals("createInput", input)

		// Continue to next handler
		return c.Next()
	}
}

func UpdateNamed() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateNamedInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// Save input to context locals
		c.Locals("updateInput", input)

		// Continue to next handler
		return c.Next()
	}
}
