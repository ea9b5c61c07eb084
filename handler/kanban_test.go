package handler_test

import (
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/testutil"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func seedBoardOrder(t *testing.T, db *gorm.DB, companyID uint, status string, number int) *model.Order {
	t.Helper()
	order := &model.Order{
		PublicCode:  helper.GeneratePublicCode(),
		CompanyID:   companyID,
		Status:      status,
		OrderNumber: number,
		TotalAmount: 25,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("falha ao criar pedido: %v", err)
	}
	return order
}

func TestGetKanbanBoard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	_, token := testutil.SeedAccount(t, db, company.ID, "operador", "OPERATOR")

	seedBoardOrder(t, db, company.ID, model.StatusPending, 1)
	seedBoardOrder(t, db, company.ID, model.StatusEmProducao, 2)

	resp := testutil.DoRequest(t, app, "GET", "/api/v1/kanban/", nil, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	body := testutil.ParseResponse(t, resp)
	columns, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("resposta sem colunas: %v", body)
	}
	if len(columns) != 6 {
		t.Fatalf("quadro deveria ter 6 colunas, veio %d", len(columns))
	}

	first := columns[0].(map[string]interface{})
	if first["status"] != model.StatusPending {
		t.Errorf("primeira coluna deveria ser pending, veio %v", first["status"])
	}
	if orders := first["orders"].([]interface{}); len(orders) != 1 {
		t.Errorf("coluna pending deveria ter 1 pedido, veio %d", len(orders))
	}

	// coluna vazia serializa como lista vazia, não null
	last := columns[5].(map[string]interface{})
	if last["orders"] == nil {
		t.Errorf("coluna vazia não pode ser null")
	}
}

func TestMoveKanbanCardSameColumnIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	_, token := testutil.SeedAccount(t, db, company.ID, "operador", "OPERATOR")

	order := seedBoardOrder(t, db, company.ID, model.StatusPending, 1)
	var before model.Order
	db.First(&before, order.ID)

	resp := testutil.DoRequest(t, app, "POST", "/api/v1/kanban/move", map[string]interface{}{
		"orderId": order.ID,
		"status":  model.StatusPending,
	}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	body := testutil.ParseResponse(t, resp)
	data := body["data"].(map[string]interface{})
	if data["moved"] != false {
		t.Errorf("soltar na mesma coluna deveria ser no-op, veio %v", data["moved"])
	}

	var got model.Order
	db.First(&got, order.ID)
	if got.Status != model.StatusPending {
		t.Errorf("status não deveria mudar, veio %q", got.Status)
	}
	if !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("no-op não deveria tocar o pedido")
	}
}

func TestMoveKanbanCard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	_, token := testutil.SeedAccount(t, db, company.ID, "operador", "OPERATOR")

	order := seedBoardOrder(t, db, company.ID, model.StatusPending, 1)

	resp := testutil.DoRequest(t, app, "POST", "/api/v1/kanban/move", map[string]interface{}{
		"orderId": order.ID,
		"status":  model.StatusEmProducao,
	}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	body := testutil.ParseResponse(t, resp)
	data := body["data"].(map[string]interface{})
	if data["moved"] != true {
		t.Errorf("movimento válido deveria aplicar, veio %v", data["moved"])
	}

	var got model.Order
	db.First(&got, order.ID)
	if got.Status != model.StatusEmProducao {
		t.Errorf("status deveria ser em_producao, veio %q", got.Status)
	}

	// arrasto ilegal volta 400 e não toca o pedido
	resp = testutil.DoRequest(t, app, "POST", "/api/v1/kanban/move", map[string]interface{}{
		"orderId": order.ID,
		"status":  model.StatusPending,
	}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("regressão deveria voltar 400, veio %d", resp.StatusCode)
	}
}
