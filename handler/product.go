package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetProducts(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	filter := new(model.CatalogFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Product{}).Where("company_id = ?", companyId)
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var products []model.Product
	if err := db.Order("name asc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível listar os produtos", err)
	}

	response := &model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetProductById(c *fiber.Ctx) error {
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("createInput").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	newProduct := new(model.Product)
	copier.Copy(&newProduct, &input)
	newProduct.CompanyID = companyId
	newProduct.Active = true

	if err := database.DB.Create(&newProduct).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível criar o produto", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newProduct)
}

func UpdateProduct(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("updateInput").(model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.Where("company_id = ?", companyId).First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Produto não encontrado", err)
	}

	oldImage := product.ImageUrl

	copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true})
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar o produto", err)
	}

	// imagem trocada: descarta a antiga no cloudinary
	if input.ImageUrl != nil && oldImage != nil && *oldImage != *input.ImageUrl {
		go destroyProductImage(*oldImage)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProducts(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	// soft delete: os itens de pedidos antigos continuam referenciando o produto
	if err := database.DB.Model(&model.Product{}).
		Where("company_id = ? AND id IN ?", companyId, input.IDs).
		Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível excluir os produtos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Produtos removidos"})
}

func destroyProductImage(imageUrl string) {
	cld, err := helper.InitCloudinary()
	if err != nil {
		log.Printf("cloudinary indisponível: %v", err)
		return
	}
	publicID := helper.ExtractPublicID(imageUrl)
	if publicID == "" {
		return
	}
	_, err = cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Printf("erro ao remover imagem %s: %v", publicID, err)
	}
}
