package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetKanbanBoard devolve os pedidos da empresa particionados nas seis
// colunas fixas do quadro.
func GetKanbanBoard(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	board, err := helper.BuildKanbanBoard(companyId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível montar o quadro", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

// MoveKanbanCard é o controlador do arrasto entre colunas: soltar na mesma
// coluna é um no-op sem escrita; colunas distintas delegam à transição.
func MoveKanbanCard(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("moveInput").(model.KanbanMoveInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var order model.Order
	if err := database.DB.First(&order, input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if order.CompanyID != companyId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ORDER_WRONG_COMPANY, errors.New("company mismatch"))
	}

	if order.Status == input.Status {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message": "Pedido já está nesta coluna",
			"moved":   false,
		})
	}

	updated, err := helper.TransitionOrder(companyId, order.ID, input.Status, input.Reason)
	if err != nil {
		return transitionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Pedido movido",
		"moved":   true,
		"order":   updated,
	})
}
