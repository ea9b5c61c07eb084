package helper_test

import (
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/testutil"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, companyID uint, status string, number int, total, fee float64) *model.Order {
	t.Helper()
	order := &model.Order{
		PublicCode:  helper.GeneratePublicCode(),
		CompanyID:   companyID,
		Status:      status,
		OrderNumber: number,
		TotalAmount: total,
		DeliveryFee: fee,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("falha ao criar pedido: %v", err)
	}
	return order
}

func TestTransitionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	other := testutil.SeedCompany(t, db, "Outra Loja", "outra-loja")

	order := seedOrder(t, db, company.ID, model.StatusPending, 1, 30, 5)

	updated, err := helper.TransitionOrder(company.ID, order.ID, model.StatusEmProducao, nil)
	if err != nil {
		t.Fatalf("pending -> em_producao deveria passar: %v", err)
	}
	if updated.Status != model.StatusEmProducao {
		t.Errorf("status: %q", updated.Status)
	}

	// regressão não é permitida
	if _, err := helper.TransitionOrder(company.ID, order.ID, model.StatusPending, nil); !errors.Is(err, helper.ErrInvalidTransition) {
		t.Errorf("em_producao -> pending deveria falhar, veio %v", err)
	}

	// pedido de outra empresa é invisível para a transição
	if _, err := helper.TransitionOrder(other.ID, order.ID, model.StatusACaminho, nil); !errors.Is(err, helper.ErrWrongCompany) {
		t.Errorf("empresa errada deveria falhar, veio %v", err)
	}

	if _, err := helper.TransitionOrder(company.ID, 99999, model.StatusACaminho, nil); !errors.Is(err, helper.ErrOrderNotFound) {
		t.Errorf("pedido inexistente deveria falhar, veio %v", err)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	order := seedOrder(t, db, company.ID, model.StatusPending, 1, 20, 0)

	if _, err := helper.TransitionOrder(company.ID, order.ID, model.StatusCancelado, nil); !errors.Is(err, helper.ErrReasonRequired) {
		t.Fatalf("cancelamento sem motivo deveria falhar, veio %v", err)
	}
	empty := "   "
	if _, err := helper.TransitionOrder(company.ID, order.ID, model.StatusCancelado, &empty); !errors.Is(err, helper.ErrReasonRequired) {
		t.Fatalf("motivo em branco deveria falhar, veio %v", err)
	}

	reason := "cliente desistiu"
	updated, err := helper.TransitionOrder(company.ID, order.ID, model.StatusCancelado, &reason)
	if err != nil {
		t.Fatalf("cancelamento com motivo deveria passar: %v", err)
	}
	if updated.CancellationReason == nil || *updated.CancellationReason != reason {
		t.Errorf("motivo não gravado: %v", updated.CancellationReason)
	}

	// cancelado é terminal
	if _, err := helper.TransitionOrder(company.ID, order.ID, model.StatusFinalizado, nil); !errors.Is(err, helper.ErrInvalidTransition) {
		t.Errorf("cancelado -> finalizado deveria falhar, veio %v", err)
	}
}

func TestFinalizeCreatesSingleIncomeEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	order := seedOrder(t, db, company.ID, model.StatusEntregue, 9, 42.5, 7.5)

	if _, err := helper.TransitionOrder(company.ID, order.ID, model.StatusFinalizado, nil); err != nil {
		t.Fatalf("finalização deveria passar: %v", err)
	}

	var entries []model.FinancialEntry
	db.Where("order_id = ?", order.ID).Find(&entries)
	if len(entries) != 1 {
		t.Fatalf("esperava 1 lançamento, veio %d", len(entries))
	}
	if entries[0].Amount != 50 {
		t.Errorf("receita deveria somar entrega: %v", entries[0].Amount)
	}
	if entries[0].EntryType != model.EntryTypeIncome {
		t.Errorf("entryType: %q", entries[0].EntryType)
	}

	// refinalizar pelo lote não duplica a receita
	if _, err := helper.BulkFinalizeOrders(company.ID, []uint{order.ID}); err != nil {
		t.Fatalf("lote deveria passar: %v", err)
	}
	var count int64
	db.Model(&model.FinancialEntry{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("esperava 1 lançamento após o lote, veio %d", count)
	}
}

func TestBulkFinalizeOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")

	open := seedOrder(t, db, company.ID, model.StatusPending, 1, 10, 0)
	delivered := seedOrder(t, db, company.ID, model.StatusEntregue, 2, 20, 5)
	cancelled := seedOrder(t, db, company.ID, model.StatusCancelado, 3, 30, 0)

	transitioned, err := helper.BulkFinalizeOrders(company.ID, []uint{open.ID, delivered.ID, cancelled.ID})
	if err != nil {
		t.Fatalf("lote deveria passar: %v", err)
	}
	if len(transitioned) != 2 {
		t.Fatalf("esperava 2 finalizados, veio %d", len(transitioned))
	}

	var got model.Order
	db.First(&got, cancelled.ID)
	if got.Status != model.StatusCancelado {
		t.Errorf("cancelado não pode ser finalizado pelo lote, veio %q", got.Status)
	}
	db.First(&got, open.ID)
	if got.Status != model.StatusFinalizado {
		t.Errorf("pendente deveria finalizar, veio %q", got.Status)
	}

	var count int64
	db.Model(&model.FinancialEntry{}).Where("company_id = ?", company.ID).Count(&count)
	if count != 2 {
		t.Errorf("esperava 2 receitas, veio %d", count)
	}

	// id inexistente derruba o lote inteiro
	if _, err := helper.BulkFinalizeOrders(company.ID, []uint{open.ID, 99999}); !errors.Is(err, helper.ErrOrderNotFound) {
		t.Errorf("lote com id inexistente deveria falhar, veio %v", err)
	}
}

func TestNextOrderNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	other := testutil.SeedCompany(t, db, "Outra Loja", "outra-loja")

	n, err := helper.NextOrderNumber(db, company.ID)
	if err != nil || n != 1 {
		t.Fatalf("primeira sequência deveria ser 1, veio %d (%v)", n, err)
	}

	seedOrder(t, db, company.ID, model.StatusPending, 1, 10, 0)
	seedOrder(t, db, company.ID, model.StatusPending, 2, 10, 0)
	seedOrder(t, db, other.ID, model.StatusPending, 7, 10, 0)

	n, _ = helper.NextOrderNumber(db, company.ID)
	if n != 3 {
		t.Errorf("sequência da empresa deveria ser 3, veio %d", n)
	}
	n, _ = helper.NextOrderNumber(db, other.ID)
	if n != 8 {
		t.Errorf("sequência da outra empresa deveria ser 8, veio %d", n)
	}
}

func TestGeneratePublicCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := helper.GeneratePublicCode()
		if len(code) != 12 || code[:4] != "PED-" {
			t.Fatalf("formato inesperado: %q", code)
		}
		if seen[code] {
			t.Fatalf("código repetido: %q", code)
		}
		seen[code] = true
	}
}
