package helper

import (
	"acai_pdv/database"
	"acai_pdv/model"
	"acai_pdv/utils"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var dailyScheduler gocron.Scheduler

// RunDailyClose expira orçamentos de compra vencidos e envia o resumo de
// caixa do dia para cada empresa com email cadastrado.
func RunDailyClose() {
	log.Println("[CRON] RunDailyClose triggered")

	db := database.DB
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)

	result := db.Model(&model.PurchaseBudget{}).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", model.BudgetOpen, todayStart).
		Update("status", model.BudgetExpired)
	if result.Error != nil {
		log.Printf("erro ao expirar orçamentos: %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("%d orçamentos marcados como expirados", result.RowsAffected)
	}

	var companies []model.Company
	if err := db.Where("active = ?", true).Find(&companies).Error; err != nil {
		log.Printf("erro ao carregar empresas: %v", err)
		return
	}

	for _, company := range companies {
		if company.Email == "" {
			continue
		}

		var income, expense float64
		var orderCount int64

		db.Model(&model.FinancialEntry{}).
			Where("company_id = ? AND entry_type = ? AND entry_date >= ? AND entry_date < ?", company.ID, model.EntryTypeIncome, todayStart, todayEnd).
			Select("COALESCE(SUM(amount), 0)").Scan(&income)
		db.Model(&model.FinancialEntry{}).
			Where("company_id = ? AND entry_type = ? AND entry_date >= ? AND entry_date < ?", company.ID, model.EntryTypeExpense, todayStart, todayEnd).
			Select("COALESCE(SUM(amount), 0)").Scan(&expense)
		db.Model(&model.Order{}).
			Where("company_id = ? AND status = ? AND updated_at BETWEEN ? AND ?", company.ID, model.StatusFinalizado, todayStart, todayEnd).
			Count(&orderCount)

		utils.SendDailySummaryEmail(company.Email, utils.DailySummaryData{
			CompanyName:  company.Name,
			Date:         now.Format("02/01/2006"),
			OrderCount:   orderCount,
			TotalIncome:  income,
			TotalExpense: expense,
			Balance:      income - expense,
		})
	}
}

func StartDailyScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("BRT", -3*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	dailyScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(RunDailyClose),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Scheduler de fechamento diário iniciado (23:55 BRT)")
}

func StopDailyScheduler() {
	if dailyScheduler != nil {
		if err := dailyScheduler.Shutdown(); err != nil {
			log.Printf("erro ao parar scheduler diário: %v", err)
		}
	}
}
