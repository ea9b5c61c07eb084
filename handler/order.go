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

func GetOrders(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.OrderFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{}).Where("company_id = ?", companyId)
	if filter.Status != nil && *filter.Status != "" {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.CustomerID != nil {
		db = db.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.DateStart != nil {
		if start, err := utils.ParseDate(*filter.DateStart); err == nil {
			db = db.Where("created_at >= ?", start)
		}
	}
	if filter.DateEnd != nil {
		if end, err := utils.ParseDate(*filter.DateEnd); err == nil {
			db = db.Where("created_at < ?", end.AddDate(0, 0, 1))
		}
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var orders []model.Order
	if err := db.
		Preload("Customer").
		Preload("Neighborhood").
		Preload("PaymentMethod").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os pedidos", err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	order, err := helper.LoadOrderForNotification(uint(orderId))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if order.CompanyID != companyId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ORDER_WRONG_COMPANY, errors.New("company mismatch"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func CreateOrder(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var order model.Order
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var items []model.OrderItem
		total := float64(0)
		for _, it := range input.Items {
			var product model.Product
			if err := tx.Where("id = ? AND company_id = ?", it.ProductID, companyId).First(&product).Error; err != nil {
				return errors.New("produto não encontrado")
			}
			line := model.OrderItem{
				ProductID:  product.ID,
				Quantity:   it.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: product.Price * float64(it.Quantity),
			}
			total += line.TotalPrice
			items = append(items, line)
		}

		deliveryFee := float64(0)
		if input.DeliveryFee != nil {
			deliveryFee = *input.DeliveryFee
		} else if input.NeighborhoodID != nil {
			var neighborhood model.Neighborhood
			if err := tx.Where("id = ? AND company_id = ?", *input.NeighborhoodID, companyId).First(&neighborhood).Error; err == nil {
				deliveryFee = neighborhood.DeliveryFee
			}
		}

		number, err := helper.NextOrderNumber(tx, companyId)
		if err != nil {
			return err
		}

		order = model.Order{
			PublicCode:      helper.GeneratePublicCode(),
			CompanyID:       companyId,
			CustomerID:      input.CustomerID,
			NeighborhoodID:  input.NeighborhoodID,
			PaymentMethodID: input.PaymentMethodID,
			Status:          model.StatusPending,
			OrderNumber:     number,
			TotalAmount:     total,
			DeliveryFee:     deliveryFee,
			Notes:           input.Notes,
			NeedsChange:     input.NeedsChange,
			ChangeFor:       input.ChangeFor,
			Items:           items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o pedido", err)
	}

	go helper.PublishBoard(companyId)

	created, loadErr := helper.LoadOrderForNotification(order.ID)
	if loadErr != nil {
		return utils.SuccessResponse(c, fiber.StatusCreated, order)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

// TransitionOrderStatus é a operação central do ciclo de vida: valida a
// transição, grava status + receita de finalização e dispara a notificação.
func TransitionOrderStatus(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("transitionInput").(model.TransitionOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	order, err := helper.TransitionOrder(companyId, uint(orderId), input.Status, input.Reason)
	if err != nil {
		return transitionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func transitionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, helper.ErrOrderNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	case errors.Is(err, helper.ErrWrongCompany):
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ORDER_WRONG_COMPANY, err)
	case errors.Is(err, helper.ErrReasonRequired):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.REASON_REQUIRED, err)
	case errors.Is(err, helper.ErrInvalidTransition):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
}

func BulkFinalizeOrders(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	transitioned, err := helper.BulkFinalizeOrders(companyId, input.IDs)
	if err != nil {
		return transitionErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    "Pedidos finalizados",
		"finalized":  len(transitioned),
		"totalCount": len(input.IDs),
	})
}

func DeleteOrder(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	if order.CompanyID != companyId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ORDER_WRONG_COMPANY, errors.New("company mismatch"))
	}

	// exclusão em cascata dos itens do pedido
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir o pedido", err)
	}

	go helper.PublishBoard(companyId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Pedido excluído"})
}
