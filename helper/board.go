package helper

import (
	"acai_pdv/config"
	"acai_pdv/database"
	"acai_pdv/model"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func RedisClient() *redis.Client {
	if redisClient == nil {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	}
	return redisClient
}

func BoardChannel(companyID uint) string {
	return fmt.Sprintf("board:%d", companyID)
}

// BuildKanbanBoard particiona os pedidos da empresa nas seis colunas fixas.
// O quadro é só uma leitura do ciclo de vida: nenhuma regra vive aqui.
func BuildKanbanBoard(companyID uint) ([]model.KanbanColumn, error) {
	var orders []model.Order
	err := database.DB.
		Preload("Customer").
		Preload("Neighborhood").
		Preload("PaymentMethod").
		Preload("Items").
		Preload("Items.Product").
		Where("company_id = ?", companyID).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string][]model.Order)
	for _, order := range orders {
		byStatus[order.Status] = append(byStatus[order.Status], order)
	}

	columns := make([]model.KanbanColumn, 0, len(model.KanbanStatuses))
	for _, status := range model.KanbanStatuses {
		col := model.KanbanColumn{Status: status, Orders: byStatus[status]}
		if col.Orders == nil {
			col.Orders = []model.Order{}
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// PublishBoard publica o quadro atualizado no canal da empresa. Painéis
// conectados via websocket recebem e re-renderizam; falha aqui só é logada.
func PublishBoard(companyID uint) {
	board, err := BuildKanbanBoard(companyID)
	if err != nil {
		log.Printf("erro ao montar quadro da empresa %d: %v", companyID, err)
		return
	}

	payload, err := json.Marshal(board)
	if err != nil {
		log.Printf("erro ao serializar quadro da empresa %d: %v", companyID, err)
		return
	}

	if err := RedisClient().Publish(context.Background(), BoardChannel(companyID), payload).Err(); err != nil {
		log.Printf("erro ao publicar quadro da empresa %d: %v", companyID, err)
	}
}
