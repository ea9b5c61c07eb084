package handler

import (
	"acai_pdv/database"
	"acai_pdv/model"
	"acai_pdv/utils"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetOrderTracking é a consulta pública de acompanhamento do pedido,
// acessada pelo cliente final via slug da empresa + código do pedido.
func GetOrderTracking(c *fiber.Ctx) error {
	companySlug := c.Params("companySlug")
	publicCode := c.Params("publicCode")

	var company model.Company
	if err := database.DB.Where("slug = ? AND active = ?", companySlug, true).First(&company).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Empresa não encontrada", err)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Where("public_code = ? AND company_id = ?", publicCode, company.ID).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Pedido não encontrado", err)
	}

	items := []string{}
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, fmt.Sprintf("%dx %s", item.Quantity, name))
	}

	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	qrBase64 := ""
	if err != nil {
		log.Printf("erro ao gerar QR do pedido %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.OrderTracking{
		PublicCode:  order.PublicCode,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		DeliveryFee: order.DeliveryFee,
		Items:       items,
		CreatedAt:   order.CreatedAt,
		QRCode:      qrBase64,
	})
}
