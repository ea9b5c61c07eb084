package validate

import (
	"acai_pdv/constants"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		// troco só faz sentido com valor informado
		if input.NeedsChange && (input.ChangeFor == nil || *input.ChangeFor <= 0) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Informe o valor para troco", errors.New("changeFor required"))
		}

		// Save input to context locals
		c.Locals("createInput", input)

		// Continue to next handler
		return c.Next()
	}
}

func TransitionOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.TransitionOrderInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !model.IsValidStatus(input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, errors.New("unknown status"))
		}

		// Save input to context locals
		c.Locals("transitionInput", input)

		// Continue to next handler
		return c.Next()
	}
}

func KanbanMove() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.KanbanMoveInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if !model.IsValidStatus(input.Status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, errors.New("unknown status"))
		}

		// Save input to context locals
		c.Locals("moveInput", input)

		// Continue to next handler
		return c.Next()
	}
}
