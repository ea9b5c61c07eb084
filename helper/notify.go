package helper

import (
	"acai_pdv/config"
	"acai_pdv/model"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// failedNotifications conta entregas perdidas; o webhook é melhor-esforço e
// nunca é retentado, mas a falha fica visível no log e no contador.
var failedNotifications atomic.Int64

func FailedNotifications() int64 {
	return failedNotifications.Load()
}

// BuildOrderNotification monta o payload plano enviado ao webhook depois de
// cada mudança de status. O pedido precisa vir com Customer, PaymentMethod,
// Neighborhood e Items.Product carregados.
func BuildOrderNotification(order model.Order) model.OrderNotification {
	var parts []string
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, name))
	}

	payload := model.OrderNotification{
		DataPedido:           order.CreatedAt.Format("02/01/2006 15:04"),
		DescricaoPedido:      strings.Join(parts, ", "),
		ValorTotal:           order.TotalAmount,
		ValorEntrega:         order.DeliveryFee,
		ValorTotalComEntrega: order.TotalAmount + order.DeliveryFee,
		StatusPedido:         order.Status,
		Observacoes:          order.Notes,
		NumeroPedido:         order.OrderNumber,
		PrecisaTroco:         order.NeedsChange,
	}
	if order.ChangeFor != nil {
		payload.ValorTroco = *order.ChangeFor
	}
	if order.Customer != nil {
		payload.NomeCliente = order.Customer.Name
		payload.Telefone = order.Customer.Phone

		address := strings.TrimSpace(order.Customer.Street + ", " + order.Customer.Number)
		if order.Customer.Complement != "" {
			address += " - " + order.Customer.Complement
		}
		if order.Customer.Neighborhood != nil {
			address += " - " + order.Customer.Neighborhood.Name
		}
		payload.EnderecoEntrega = strings.Trim(address, " ,-")
	}
	if order.PaymentMethod != nil {
		payload.FormaPagamento = order.PaymentMethod.Name
	}

	return payload
}

// SendOrderNotification entrega o payload ao webhook configurado. Fire and
// forget: erro é logado, nunca propagado nem retentado.
func SendOrderNotification(payload model.OrderNotification) {
	url := config.Config("NOTIFY_WEBHOOK_URL")
	if url == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("erro ao serializar notificação do pedido #%d: %v", payload.NumeroPedido, err)
		return
	}

	resp, err := notifyClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		failedNotifications.Add(1)
		log.Printf("falha ao notificar pedido #%d: %v", payload.NumeroPedido, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		failedNotifications.Add(1)
		log.Printf("webhook respondeu %d para pedido #%d", resp.StatusCode, payload.NumeroPedido)
	}
}
