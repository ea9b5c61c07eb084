package handler_test

import (
	"acai_pdv/model"
	"acai_pdv/testutil"
	"fmt"
	"net/http"
	"testing"
)

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	_, token := testutil.SeedAccount(t, db, company.ID, "operador", "OPERATOR")

	product := model.Product{CompanyID: company.ID, Name: "Açaí 500ml", Price: 18, Active: true}
	db.Create(&product)
	neighborhood := model.Neighborhood{CompanyID: company.ID, Name: "Centro", DeliveryFee: 6, Active: true}
	db.Create(&neighborhood)

	resp := testutil.DoRequest(t, app, "POST", "/api/v1/order/", map[string]interface{}{
		"neighborhoodId": neighborhood.ID,
		"items": []map[string]interface{}{
			{"productId": product.ID, "quantity": 2},
		},
	}, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status %d", resp.StatusCode)
	}

	body := testutil.ParseResponse(t, resp)
	data := body["data"].(map[string]interface{})
	if data["orderNumber"] != float64(1) {
		t.Errorf("primeiro pedido deveria ser #1, veio %v", data["orderNumber"])
	}
	if data["totalAmount"] != float64(36) {
		t.Errorf("total deveria ser 36, veio %v", data["totalAmount"])
	}
	if data["deliveryFee"] != float64(6) {
		t.Errorf("taxa deveria vir do bairro, veio %v", data["deliveryFee"])
	}
	if data["status"] != model.StatusPending {
		t.Errorf("pedido novo deveria nascer pending, veio %v", data["status"])
	}

	// mudar o preço do produto não altera pedidos já criados
	db.Model(&product).Update("price", 25)
	var item model.OrderItem
	db.Where("product_id = ?", product.ID).First(&item)
	if item.UnitPrice != 18 {
		t.Errorf("preço do item deveria ser snapshot 18, veio %v", item.UnitPrice)
	}
}

func TestTransitionEndpointCancelWithoutReason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	_, token := testutil.SeedAccount(t, db, company.ID, "operador", "OPERATOR")

	order := seedBoardOrder(t, db, company.ID, model.StatusPending, 1)

	path := fmt.Sprintf("/api/v1/order/%d/status", order.ID)
	resp := testutil.DoRequest(t, app, "PATCH", path, map[string]interface{}{
		"status": model.StatusCancelado,
	}, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("cancelamento sem motivo deveria voltar 400, veio %d", resp.StatusCode)
	}

	resp = testutil.DoRequest(t, app, "PATCH", path, map[string]interface{}{
		"status": model.StatusCancelado,
		"reason": "endereço não encontrado",
	}, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancelamento com motivo deveria passar, veio %d", resp.StatusCode)
	}

	var got model.Order
	db.First(&got, order.ID)
	if got.Status != model.StatusCancelado || got.CancellationReason == nil {
		t.Errorf("cancelamento não gravado: %q %v", got.Status, got.CancellationReason)
	}
}

func TestOrderEndpointsRequireAuth(t *testing.T) {
	testutil.SetupTestDB(t)
	app := testutil.NewApp()

	resp := testutil.DoRequest(t, app, "GET", "/api/v1/order/", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("sem token deveria voltar 401, veio %d", resp.StatusCode)
	}
}

func TestGetOrderFromAnotherCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")
	other := testutil.SeedCompany(t, db, "Outra Loja", "outra-loja")
	_, token := testutil.SeedAccount(t, db, company.ID, "operador", "OPERATOR")

	order := seedBoardOrder(t, db, other.ID, model.StatusPending, 1)

	resp := testutil.DoRequest(t, app, "GET", fmt.Sprintf("/api/v1/order/%d", order.ID), nil, token)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("pedido de outra empresa deveria voltar 403, veio %d", resp.StatusCode)
	}
}
