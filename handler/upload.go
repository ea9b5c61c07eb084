package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature assina os parâmetros para o painel enviar a imagem
// direto ao cloudinary sem passar o arquivo pelo backend.
func GenerateUploadSignature(c *fiber.Ctx) error {
	if _, err := helper.CompanyFromToken(c); err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if apiSecret == "" || apiKey == "" || cloudName == "" {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload de imagem não configurado", errors.New("cloudinary env missing"))
	}

	timestamp := time.Now().Unix()
	folder := "products"

	toSign := fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, apiSecret)
	digest := sha1.Sum([]byte(toSign))

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"signature": hex.EncodeToString(digest[:]),
		"timestamp": timestamp,
		"apiKey":    apiKey,
		"cloudName": cloudName,
		"folder":    folder,
	})
}

// UploadProductImage recebe o arquivo via multipart, sobe para o cloudinary e
// grava a URL no produto.
func UploadProductImage(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.Where("company_id = ?", companyId).First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Envie o arquivo no campo image", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Não foi possível ler o arquivo", err)
	}
	defer file.Close()

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload de imagem não configurado", err)
	}

	result, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:   "products",
		PublicID: fmt.Sprintf("product_%d_%d", product.ID, time.Now().Unix()),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Falha no envio da imagem", err)
	}

	oldImage := product.ImageUrl
	product.ImageUrl = &result.SecureURL
	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o produto", err)
	}

	if oldImage != nil && *oldImage != "" {
		go destroyProductImage(*oldImage)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}
