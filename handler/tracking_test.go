package handler_test

import (
	"acai_pdv/model"
	"acai_pdv/testutil"
	"net/http"
	"strings"
	"testing"
)

func TestGetOrderTracking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := testutil.NewApp()
	company := testutil.SeedCompany(t, db, "Loja Teste", "loja-teste")

	order := seedBoardOrder(t, db, company.ID, model.StatusACaminho, 3)

	resp := testutil.DoRequest(t, app, "GET", "/api/v1/rastreio/loja-teste/"+order.PublicCode, nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	body := testutil.ParseResponse(t, resp)
	data := body["data"].(map[string]interface{})
	if data["publicCode"] != order.PublicCode {
		t.Errorf("publicCode: %v", data["publicCode"])
	}
	if data["status"] != model.StatusACaminho {
		t.Errorf("status: %v", data["status"])
	}
	if qr, _ := data["qrCode"].(string); !strings.HasPrefix(qr, "data:image/png;base64,") {
		t.Errorf("qrCode deveria vir em base64, veio %.40v", data["qrCode"])
	}

	resp = testutil.DoRequest(t, app, "GET", "/api/v1/rastreio/loja-teste/PED-NAOEXIST", nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("código inexistente deveria voltar 404, veio %d", resp.StatusCode)
	}

	resp = testutil.DoRequest(t, app, "GET", "/api/v1/rastreio/slug-errado/"+order.PublicCode, nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("empresa inexistente deveria voltar 404, veio %d", resp.StatusCode)
	}
}
