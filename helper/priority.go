package helper

import (
	"acai_pdv/database"
	"acai_pdv/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var priorityScheduler *cron.Cron

// PickPriorityRule escolhe, entre as regras da empresa para o status do
// pedido, a de maior limiar já atingido — a escalada mais severa aplicável.
func PickPriorityRule(rules []model.PrioritySetting, status string, elapsedMinutes int) *model.PrioritySetting {
	var best *model.PrioritySetting
	for i := range rules {
		rule := &rules[i]
		if rule.Status != status || rule.MinutesThreshold > elapsedMinutes {
			continue
		}
		if best == nil || rule.MinutesThreshold > best.MinutesThreshold {
			best = rule
		}
	}
	return best
}

// EscalateOrderPriorities varre os pedidos abertos sem prioridade e carimba
// o nível/rótulo da regra de maior limiar atingido. Prioridade é um upgrade
// único: pedidos já carimbados saem das varreduras seguintes.
func EscalateOrderPriorities() {
	db := database.DB

	var settings []model.PrioritySetting
	if err := db.Find(&settings).Error; err != nil {
		log.Printf("erro ao carregar regras de prioridade: %v", err)
		return
	}
	if len(settings) == 0 {
		return
	}

	rulesByCompany := make(map[uint][]model.PrioritySetting)
	for _, s := range settings {
		rulesByCompany[s.CompanyID] = append(rulesByCompany[s.CompanyID], s)
	}

	var orders []model.Order
	if err := db.
		Where("status IN ? AND priority_level IS NULL", model.OpenStatuses).
		Find(&orders).Error; err != nil {
		log.Printf("erro ao varrer pedidos abertos: %v", err)
		return
	}

	now := time.Now()
	for _, order := range orders {
		elapsed := int(now.Sub(order.CreatedAt).Minutes())
		rule := PickPriorityRule(rulesByCompany[order.CompanyID], order.Status, elapsed)
		if rule == nil {
			continue
		}

		err := db.Model(&model.Order{}).
			Where("id = ? AND priority_level IS NULL", order.ID).
			Updates(map[string]interface{}{
				"priority_level": rule.PriorityLevel,
				"priority_label": rule.PriorityLabel,
			}).Error
		if err != nil {
			// erro em um pedido não interrompe a varredura dos demais
			log.Printf("erro ao escalar pedido %d: %v", order.ID, err)
			continue
		}
		log.Printf("pedido #%d escalado para '%s' (%d min em %s)", order.OrderNumber, rule.PriorityLabel, elapsed, order.Status)
	}
}

func StartPriorityScheduler() {
	priorityScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := priorityScheduler.AddFunc("*/5 * * * *", EscalateOrderPriorities)
	if err != nil {
		log.Printf("erro ao iniciar scheduler de prioridade: %v", err)
		return
	}

	priorityScheduler.Start()
	go EscalateOrderPriorities() // uma varredura imediata na subida
	log.Println("Scheduler de prioridade iniciado (a cada 5 minutos)")
}

func StopPriorityScheduler() {
	if priorityScheduler != nil {
		priorityScheduler.Stop()
		log.Println("Scheduler de prioridade parado")
	}
}
