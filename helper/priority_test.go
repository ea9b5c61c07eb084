package helper_test

import (
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/testutil"
	"testing"
	"time"
)

func TestPickPriorityRule(t *testing.T) {
	rules := []model.PrioritySetting{
		{Status: model.StatusPending, MinutesThreshold: 10, PriorityLevel: 1, PriorityLabel: "Atenção"},
		{Status: model.StatusPending, MinutesThreshold: 30, PriorityLevel: 2, PriorityLabel: "Atrasado"},
		{Status: model.StatusEmProducao, MinutesThreshold: 20, PriorityLevel: 1, PriorityLabel: "Atenção"},
	}

	if rule := helper.PickPriorityRule(rules, model.StatusPending, 5); rule != nil {
		t.Errorf("abaixo do menor limiar não deveria escalar, veio %+v", rule)
	}

	rule := helper.PickPriorityRule(rules, model.StatusPending, 15)
	if rule == nil || rule.MinutesThreshold != 10 {
		t.Fatalf("15 min em pending deveria aplicar a regra de 10, veio %+v", rule)
	}

	// com dois limiares atingidos vence o maior
	rule = helper.PickPriorityRule(rules, model.StatusPending, 45)
	if rule == nil || rule.MinutesThreshold != 30 || rule.PriorityLevel != 2 {
		t.Fatalf("45 min em pending deveria aplicar a regra de 30, veio %+v", rule)
	}

	if rule := helper.PickPriorityRule(rules, model.StatusACaminho, 120); rule != nil {
		t.Errorf("status sem regra não deveria escalar, veio %+v", rule)
	}

	if rule := helper.PickPriorityRule(nil, model.StatusPending, 120); rule != nil {
		t.Errorf("sem regras não deveria escalar, veio %+v", rule)
	}
}

func TestEscalateOrderPriorities(t *testing.T) {
	db := testutil.SetupTestDB(t)
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")

	settings := []model.PrioritySetting{
		{CompanyID: company.ID, Status: model.StatusPending, MinutesThreshold: 10, PriorityLevel: 1, PriorityLabel: "Atenção"},
		{CompanyID: company.ID, Status: model.StatusPending, MinutesThreshold: 30, PriorityLevel: 2, PriorityLabel: "Atrasado"},
	}
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("falha ao criar regras: %v", err)
	}

	old := model.Order{
		PublicCode:  helper.GeneratePublicCode(),
		CompanyID:   company.ID,
		Status:      model.StatusPending,
		OrderNumber: 1,
	}
	fresh := model.Order{
		PublicCode:  helper.GeneratePublicCode(),
		CompanyID:   company.ID,
		Status:      model.StatusPending,
		OrderNumber: 2,
	}
	stamped := model.Order{
		PublicCode:    helper.GeneratePublicCode(),
		CompanyID:     company.ID,
		Status:        model.StatusPending,
		OrderNumber:   3,
		PriorityLevel: intPtr(1),
		PriorityLabel: strPtr("Atenção"),
	}
	closed := model.Order{
		PublicCode:  helper.GeneratePublicCode(),
		CompanyID:   company.ID,
		Status:      model.StatusFinalizado,
		OrderNumber: 4,
	}
	for _, o := range []*model.Order{&old, &fresh, &stamped, &closed} {
		if err := db.Create(o).Error; err != nil {
			t.Fatalf("falha ao criar pedido: %v", err)
		}
	}
	backdate := time.Now().Add(-45 * time.Minute)
	for _, id := range []uint{old.ID, stamped.ID, closed.ID} {
		db.Model(&model.Order{}).Where("id = ?", id).Update("created_at", backdate)
	}

	helper.EscalateOrderPriorities()

	var got model.Order
	db.First(&got, old.ID)
	if got.PriorityLevel == nil || *got.PriorityLevel != 2 {
		t.Errorf("pedido antigo deveria estar no nível 2, veio %v", got.PriorityLevel)
	}
	if got.PriorityLabel == nil || *got.PriorityLabel != "Atrasado" {
		t.Errorf("pedido antigo deveria ter rótulo Atrasado, veio %v", got.PriorityLabel)
	}

	db.First(&got, fresh.ID)
	if got.PriorityLevel != nil {
		t.Errorf("pedido recente não deveria ser escalado, veio nível %v", *got.PriorityLevel)
	}

	// prioridade é carimbo único: quem já tem nível não é rebaixado nem elevado
	db.First(&got, stamped.ID)
	if got.PriorityLevel == nil || *got.PriorityLevel != 1 {
		t.Errorf("pedido já carimbado deveria manter nível 1, veio %v", got.PriorityLevel)
	}

	db.First(&got, closed.ID)
	if got.PriorityLevel != nil {
		t.Errorf("pedido finalizado não deveria ser escalado, veio nível %v", *got.PriorityLevel)
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
