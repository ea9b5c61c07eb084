package handler

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jordan-wright/email"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.UserName == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	accountModel, err := helper.GetAccountByUsername(loginInput.UserName)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if accountModel == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, accountModel.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !accountModel.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		AccountId: accountModel.ID,
		Username:  accountModel.Username,
		CompanyId: accountModel.CompanyID,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login realizado",
		"account": fiber.Map{
			"id":        accountModel.ID,
			"username":  accountModel.Username,
			"role":      accountModel.Role,
			"companyId": accountModel.CompanyID,
		},
		"tokens": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		type RefreshTokenRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req RefreshTokenRequest
		if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Refresh token ausente", err)
		}
		refresh = req.RefreshToken
	}

	token, err := helper.ParseToken(refresh)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token inválido", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token inválido", errors.New("invalid claims"))
	}

	accountId := uint(claims["accountId"].(float64))
	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Conta não existe", err)
	}

	newToken, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		CompanyId: account.CompanyID,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newToken,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: newToken, RefreshToken: refresh})
}

func ForgotPassword(c *fiber.Ctx) error {
	type EmailRequest struct {
		Email string `json:"email"`
	}
	var input EmailRequest
	if err := c.BodyParser(&input); err != nil || !helper.ValidEmail(input.Email) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email inválido", err)
	}

	db := database.DB
	var account model.Account
	if err := db.Where("email = ?", input.Email).First(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Conta não encontrada", err)
	}

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível gerar o token", err)
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		AccountId: account.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível salvar o token", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{input.Email}
	e.Subject = "Recuperação de senha"
	e.Text = []byte(fmt.Sprintf("Clique no link para redefinir sua senha: %s", resetLink))
	addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	if err := e.Send(addr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível enviar o email", err)
	}

	return c.JSON(fiber.Map{"message": "Link de recuperação enviado para o email"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("resetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", input.Token, time.Now()).First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token inválido ou expirado", err)
	}

	var account model.Account
	if err := db.First(&account, resetToken.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Conta não encontrada", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	account.Password = hash
	if err := db.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Não foi possível atualizar a senha", err)
	}

	db.Delete(&resetToken)

	return c.JSON(fiber.Map{"message": "Senha redefinida com sucesso"})
}
