package helper

import (
	"acai_pdv/database"
	"acai_pdv/model"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("pedido não encontrado")
	ErrWrongCompany      = errors.New("pedido pertence a outra empresa")
	ErrReasonRequired    = errors.New("motivo do cancelamento é obrigatório")
	ErrInvalidTransition = errors.New("mudança de status não permitida")
)

// GeneratePublicCode cria o código público do pedido (PED-XXXXXXXX).
func GeneratePublicCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "PED-" + raw[:8]
}

// NextOrderNumber devolve o próximo número sequencial da empresa. Deve ser
// chamado dentro da transação que cria o pedido.
func NextOrderNumber(tx *gorm.DB, companyID uint) (int, error) {
	var max int
	err := tx.Model(&model.Order{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// createIncomeEntry registra a receita do pedido finalizado, no máximo uma
// vez. O índice único (order_id, entry_type) fecha a corrida entre duas
// finalizações simultâneas: a segunda inserção cai em ErrDuplicatedKey e é
// tratada como "já existe".
func createIncomeEntry(tx *gorm.DB, order *model.Order) error {
	var count int64
	if err := tx.Model(&model.FinancialEntry{}).
		Where("order_id = ? AND entry_type = ?", order.ID, model.EntryTypeIncome).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	entry := model.FinancialEntry{
		CompanyID:   order.CompanyID,
		Description: fmt.Sprintf("Venda - Pedido #%d", order.OrderNumber),
		Amount:      order.TotalAmount + order.DeliveryFee,
		EntryDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		EntryTime:   now.Format("15:04"),
		EntryType:   model.EntryTypeIncome,
		OrderID:     &order.ID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// TransitionOrder muda o status de um pedido aplicando a tabela de
// transições. Finalização gera a receita no caixa dentro da mesma transação;
// o webhook de notificação dispara depois do commit e nunca bloqueia.
func TransitionOrder(companyID, orderID uint, newStatus string, reason *string) (*model.Order, error) {
	db := database.DB

	var order model.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.CompanyID != companyID {
		return nil, ErrWrongCompany
	}
	if !model.IsValidStatus(newStatus) || !model.CanTransition(order.Status, newStatus) {
		return nil, ErrInvalidTransition
	}
	if newStatus == model.StatusCancelado && (reason == nil || strings.TrimSpace(*reason) == "") {
		return nil, ErrReasonRequired
	}

	prevStatus := order.Status
	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}
		if newStatus == model.StatusCancelado {
			updates["cancellation_reason"] = strings.TrimSpace(*reason)
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return err
		}

		if prevStatus != model.StatusFinalizado && newStatus == model.StatusFinalizado {
			if err := createIncomeEntry(tx, &order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	reloaded, err := LoadOrderForNotification(order.ID)
	if err != nil {
		log.Printf("erro ao recarregar pedido %d: %v", order.ID, err)
		return &order, nil
	}

	go SendOrderNotification(BuildOrderNotification(*reloaded))
	go PublishBoard(companyID)

	return reloaded, nil
}

// BulkFinalizeOrders aplica a guarda de receita por pedido lendo o status
// como estava antes do lote e depois finaliza todos em um único update.
func BulkFinalizeOrders(companyID uint, ids []uint) ([]model.Order, error) {
	db := database.DB

	var orders []model.Order
	if err := db.Where("id IN ?", ids).Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) != len(ids) {
		return nil, ErrOrderNotFound
	}
	for _, order := range orders {
		if order.CompanyID != companyID {
			return nil, ErrWrongCompany
		}
	}

	var transitioned []model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var eligible []uint
		for i := range orders {
			if !model.CanTransition(orders[i].Status, model.StatusFinalizado) {
				continue
			}
			if err := createIncomeEntry(tx, &orders[i]); err != nil {
				return err
			}
			eligible = append(eligible, orders[i].ID)
			transitioned = append(transitioned, orders[i])
		}
		if len(eligible) == 0 {
			return nil
		}

		return tx.Model(&model.Order{}).
			Where("id IN ?", eligible).
			Updates(map[string]interface{}{
				"status":     model.StatusFinalizado,
				"updated_at": time.Now(),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	for _, order := range transitioned {
		if reloaded, err := LoadOrderForNotification(order.ID); err == nil {
			go SendOrderNotification(BuildOrderNotification(*reloaded))
		} else {
			log.Printf("erro ao recarregar pedido %d: %v", order.ID, err)
		}
	}
	go PublishBoard(companyID)

	return transitioned, nil
}

// LoadOrderForNotification carrega o pedido com tudo que o payload do
// webhook e o quadro precisam.
func LoadOrderForNotification(orderID uint) (*model.Order, error) {
	var order model.Order
	err := database.DB.
		Preload("Customer").
		Preload("Customer.Neighborhood").
		Preload("Neighborhood").
		Preload("PaymentMethod").
		Preload("Items").
		Preload("Items.Product").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
