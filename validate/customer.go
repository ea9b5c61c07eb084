package validate

import (
	"acai_pdv/constants"
	"acai_pdv/model"
	"acai_pdv/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomerInput

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

func UpdateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateCustomerInput

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
