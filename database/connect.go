package database

import (
	"acai_pdv/config"
	"acai_pdv/model"
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	// TranslateError: violação de chave única vira gorm.ErrDuplicatedKey,
	// usada pela guarda de lançamento financeiro do pedido.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
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
	fmt.Println("Database Migrated")

	SeedData(DB)
}
