package validate

import (
	"acai_pdv/constants"
	"acai_pdv/model"
	"acai_pdv/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput

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

func UpdateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateProductInput

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

func CreateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateItemInput

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

func UpdateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateItemInput

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

func CreateNeighborhood() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateNeighborhoodInput

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

func UpdateNeighborhood() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateNeighborhoodInput

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

func CreatePaymentMethod() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentMethodInput

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

func UpdatePaymentMethod() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePaymentMethodInput

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
