package testutil

import (
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/router"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSchema = "test_acai_pdv"
	JWTSecret  = "acai-pdv-test-secret"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupTestDB abre uma conexão com um schema descartável e aponta o global
// database.DB para ela. Sem Postgres disponível o teste é pulado.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	godotenv.Load("../.env")
	os.Setenv("JWT_SECRET", JWTSecret)

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "acai_pdv")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", testSchema, time.Now().UnixNano()%1000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("postgres indisponível: %v", err)
	}
	if sqlDB, err := setupDB.DB(); err == nil {
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			t.Skipf("postgres indisponível: %v", err)
		}
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao conectar no schema de teste: %v", err)
	}

	err = db.AutoMigrate(
		&model.Company{},
		&model.Account{},
		&model.PasswordResetToken{},
		&model.Customer{},
		&model.Product{},
		&model.Item{},
		&model.Neighborhood{},
		&model.PaymentMethod{},
		&model.Order{},
		&model.OrderItem{},
		&model.FinancialEntry{},
		&model.CostCenter{},
		&model.ExpenseCategory{},
		&model.PrioritySetting{},
		&model.PurchaseBudget{},
		&model.PurchaseBudgetItem{},
	)
	if err != nil {
		t.Fatalf("falha ao migrar tabelas de teste: %v", err)
	}

	prevDB := database.DB
	database.DB = db

	t.Cleanup(func() {
		database.DB = prevDB
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// NewApp monta a aplicação Fiber com as rotas reais.
func NewApp() *fiber.App {
	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

// SeedCompany cria uma empresa ativa para os testes.
func SeedCompany(t *testing.T, db *gorm.DB, name, slug string) *model.Company {
	t.Helper()
	company := &model.Company{Name: name, Slug: slug, Active: true}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("falha ao criar empresa de teste: %v", err)
	}
	return company
}

// SeedAccount cria uma conta vinculada à empresa e devolve o token de acesso.
func SeedAccount(t *testing.T, db *gorm.DB, companyID uint, username, role string) (*model.Account, string) {
	t.Helper()
	hash, err := helper.HashPassword("123456pdv")
	if err != nil {
		t.Fatalf("falha ao gerar hash: %v", err)
	}
	account := &model.Account{
		Username:  username,
		Password:  hash,
		Role:      role,
		CompanyID: &companyID,
		Active:    true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("falha ao criar conta de teste: %v", err)
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		CompanyId: account.CompanyID,
	})
	if err != nil {
		t.Fatalf("falha ao gerar token de teste: %v", err)
	}
	return account, token
}

// DoRequest executa a requisição contra a aplicação de teste.
func DoRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("falha na requisição %s %s: %v", method, path, err)
	}
	return resp
}

// ParseResponse decodifica o corpo JSON da resposta.
func ParseResponse(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("falha ao ler resposta: %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("resposta não é JSON válido: %v (%s)", err, raw)
	}
	return result
}
