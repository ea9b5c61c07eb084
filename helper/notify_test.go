package helper_test

import (
	"acai_pdv/helper"
	"acai_pdv/model"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func sampleOrder() model.Order {
	created, _ := time.Parse("2006-01-02 15:04", "2025-03-10 19:30")
	return model.Order{
		DTO:         model.DTO{ID: 7, CreatedAt: created},
		Status:      model.StatusEmProducao,
		OrderNumber: 42,
		TotalAmount: 35.5,
		DeliveryFee: 6,
		Notes:       "sem granola",
		NeedsChange: true,
		ChangeFor:   floatPtr(50),
		Customer: &model.Customer{
			Name:       "Maria Souza",
			Phone:      "11999990000",
			Street:     "Rua das Flores",
			Number:     "120",
			Complement: "ap 32",
			Neighborhood: &model.Neighborhood{
				Name: "Centro",
			},
		},
		PaymentMethod: &model.PaymentMethod{Name: "Dinheiro"},
		Items: []model.OrderItem{
			{Quantity: 1, Product: &model.Product{Name: "Açaí 500ml"}},
			{Quantity: 2, Product: &model.Product{Name: "Açaí 300ml"}},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestBuildOrderNotification(t *testing.T) {
	payload := helper.BuildOrderNotification(sampleOrder())

	if payload.NomeCliente != "Maria Souza" {
		t.Errorf("nomeCliente: %q", payload.NomeCliente)
	}
	if payload.Telefone != "11999990000" {
		t.Errorf("telefone: %q", payload.Telefone)
	}
	if payload.DataPedido != "10/03/2025 19:30" {
		t.Errorf("dataPedido: %q", payload.DataPedido)
	}
	if payload.DescricaoPedido != "1x Açaí 500ml, 2x Açaí 300ml" {
		t.Errorf("descricaoPedido: %q", payload.DescricaoPedido)
	}
	if payload.ValorTotal != 35.5 || payload.ValorEntrega != 6 || payload.ValorTotalComEntrega != 41.5 {
		t.Errorf("valores: %v %v %v", payload.ValorTotal, payload.ValorEntrega, payload.ValorTotalComEntrega)
	}
	if payload.StatusPedido != model.StatusEmProducao {
		t.Errorf("statusPedido: %q", payload.StatusPedido)
	}
	if payload.NumeroPedido != 42 {
		t.Errorf("numeroPedido: %d", payload.NumeroPedido)
	}
	if payload.FormaPagamento != "Dinheiro" {
		t.Errorf("formaPagamento: %q", payload.FormaPagamento)
	}
	if payload.EnderecoEntrega != "Rua das Flores, 120 - ap 32 - Centro" {
		t.Errorf("enderecoEntrega: %q", payload.EnderecoEntrega)
	}
	if !payload.PrecisaTroco || payload.ValorTroco != 50 {
		t.Errorf("troco: %v %v", payload.PrecisaTroco, payload.ValorTroco)
	}
}

func TestBuildOrderNotificationWithoutCustomer(t *testing.T) {
	order := sampleOrder()
	order.Customer = nil
	order.PaymentMethod = nil

	payload := helper.BuildOrderNotification(order)
	if payload.NomeCliente != "" || payload.EnderecoEntrega != "" || payload.FormaPagamento != "" {
		t.Errorf("pedido de balcão deveria ter campos de cliente vazios: %+v", payload)
	}
	if payload.NumeroPedido != 42 {
		t.Errorf("numeroPedido: %d", payload.NumeroPedido)
	}
}

func TestNotificationPayloadFieldNames(t *testing.T) {
	raw, err := json.Marshal(helper.BuildOrderNotification(sampleOrder()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	json.Unmarshal(raw, &decoded)

	want := []string{
		"nomeCliente", "telefone", "dataPedido", "descricaoPedido",
		"valorTotal", "valorEntrega", "valorTotalComEntrega", "statusPedido",
		"observacoes", "numeroPedido", "formaPagamento", "enderecoEntrega",
		"precisaTroco", "valorTroco",
	}
	for _, key := range want {
		if _, ok := decoded[key]; !ok {
			t.Errorf("payload sem o campo %q", key)
		}
	}
	if len(decoded) != len(want) {
		t.Errorf("payload com campos extras: %v", decoded)
	}
}

func TestSendOrderNotification(t *testing.T) {
	received := make(chan map[string]interface{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]interface{}
		json.Unmarshal(body, &decoded)
		received <- decoded
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	os.Setenv("NOTIFY_WEBHOOK_URL", srv.URL)
	defer os.Unsetenv("NOTIFY_WEBHOOK_URL")

	helper.SendOrderNotification(helper.BuildOrderNotification(sampleOrder()))

	select {
	case decoded := <-received:
		if decoded["numeroPedido"] != float64(42) {
			t.Errorf("webhook recebeu numeroPedido %v", decoded["numeroPedido"])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("webhook não recebeu a notificação")
	}
}

func TestSendOrderNotificationFailureCounted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	os.Setenv("NOTIFY_WEBHOOK_URL", srv.URL)
	defer os.Unsetenv("NOTIFY_WEBHOOK_URL")

	before := helper.FailedNotifications()
	helper.SendOrderNotification(helper.BuildOrderNotification(sampleOrder()))
	if helper.FailedNotifications() != before+1 {
		t.Errorf("falha do webhook deveria incrementar o contador")
	}
}
