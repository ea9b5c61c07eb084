package helper

import (
	"acai_pdv/constants"
	"acai_pdv/database"
	"acai_pdv/model"
	"acai_pdv/utils"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	if tokenClaim.CompanyId != nil {
		claims["companyId"] = *tokenClaim.CompanyId
	}
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetInfoAccountFromToken recarrega a conta do token e devolve o claim com a
// empresa do chamador. Toda consulta de negócio é filtrada por esse companyId.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}
	tokenClaim := token.Claims.(jwt.MapClaims)
	accountIdFloat, ok := tokenClaim["accountId"].(float64)
	if !ok {
		return model.TokenClaim{}, false, false
	}
	accountId := uint(accountIdFloat)
	username, _ := tokenClaim["username"].(string)

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Account not found: id=%d", accountId)
			utils.ErrorResponse(c, fiber.StatusUnauthorized, "Conta não existe", err)
		} else {
			log.Printf("Database query error for account: id=%d, error=%v", accountId, err)
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false, false
	}

	accountInfo := model.TokenClaim{
		AccountId: accountId,
		Username:  username,
		CompanyId: account.CompanyID,
	}

	return accountInfo,
		account.Role == constants.ROLE_ADMIN,
		account.Role == constants.ROLE_OPERATOR
}

// CompanyFromToken resolve a empresa obrigatória do chamador; admins de
// plataforma podem informar ?companyId= para operar sobre uma empresa.
func CompanyFromToken(c *fiber.Ctx) (uint, error) {
	claim, isAdmin, _ := GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return 0, errors.New("unauthenticated")
	}
	if claim.CompanyId != nil {
		return *claim.CompanyId, nil
	}
	if isAdmin {
		companyId := uint(c.QueryInt("companyId", 0))
		if companyId > 0 {
			return companyId, nil
		}
	}
	return 0, errors.New("conta sem empresa vinculada")
}
