package database

import (
	"acai_pdv/constants"
	"acai_pdv/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456pdv"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456pdv"
	}

	company := model.Company{Name: "Açaí do Centro", Slug: "acai-do-centro", Email: "contato@acaidocentro.com.br", Phone: "11999990000", Active: true}
	if err := db.Where(model.Company{Slug: company.Slug}).FirstOrCreate(&company).Error; err != nil {
		log.Println("failed to seed company:", err)
	}

	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
		{Username: "operador", Password: HashPassword, Active: true, Role: constants.ROLE_OPERATOR, CompanyID: &company.ID},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	paymentMethods := []model.PaymentMethod{
		{CompanyID: company.ID, Name: "Dinheiro", AllowsChange: true, Active: true},
		{CompanyID: company.ID, Name: "Pix", Active: true},
		{CompanyID: company.ID, Name: "Cartão de Crédito", Active: true},
		{CompanyID: company.ID, Name: "Cartão de Débito", Active: true},
	}
	for _, pm := range paymentMethods {
		if err := db.Where(model.PaymentMethod{CompanyID: company.ID, Name: pm.Name}).FirstOrCreate(&pm).Error; err != nil {
			log.Println("failed to seed payment method:", pm.Name, "error:", err)
		}
	}

	neighborhoods := []model.Neighborhood{
		{CompanyID: company.ID, Name: "Centro", DeliveryFee: 5, Active: true},
		{CompanyID: company.ID, Name: "Jardim América", DeliveryFee: 8, Active: true},
	}
	for _, n := range neighborhoods {
		if err := db.Where(model.Neighborhood{CompanyID: company.ID, Name: n.Name}).FirstOrCreate(&n).Error; err != nil {
			log.Println("failed to seed neighborhood:", n.Name, "error:", err)
		}
	}

	// Tabela de escalonamento padrão: pedidos parados viram atenção/atraso.
	prioritySettings := []model.PrioritySetting{
		{CompanyID: company.ID, Status: model.StatusPending, MinutesThreshold: 10, PriorityLevel: 1, PriorityLabel: "Atenção"},
		{CompanyID: company.ID, Status: model.StatusPending, MinutesThreshold: 30, PriorityLevel: 2, PriorityLabel: "Atrasado"},
		{CompanyID: company.ID, Status: model.StatusEmProducao, MinutesThreshold: 20, PriorityLevel: 1, PriorityLabel: "Atenção"},
		{CompanyID: company.ID, Status: model.StatusACaminho, MinutesThreshold: 40, PriorityLevel: 2, PriorityLabel: "Atrasado"},
	}
	for _, ps := range prioritySettings {
		if err := db.Where(model.PrioritySetting{CompanyID: company.ID, Status: ps.Status, MinutesThreshold: ps.MinutesThreshold}).FirstOrCreate(&ps).Error; err != nil {
			log.Println("failed to seed priority setting:", ps.Status, ps.MinutesThreshold, "error:", err)
		}
	}
}
