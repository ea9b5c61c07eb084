package handler

import (
	"acai_pdv/database"
	"acai_pdv/helper"
	"acai_pdv/model"
	"acai_pdv/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard resume o dia da loja: pedidos por status, receita de hoje e
// crescimento em relação a ontem.
func GetDashboard(c *fiber.Ctx) error {
	companyId, err := helper.CompanyFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Conta sem empresa vinculada", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var byStatus []statusCount
	database.DB.Model(&model.Order{}).
		Select("status, COUNT(*) as count").
		Where("company_id = ? AND created_at >= ?", companyId, todayStart).
		Group("status").
		Scan(&byStatus)

	counts := map[string]int64{}
	for _, status := range model.KanbanStatuses {
		counts[status] = 0
	}
	var totalToday int64
	for _, row := range byStatus {
		counts[row.Status] = row.Count
		totalToday += row.Count
	}

	var revenueToday float64
	database.DB.Model(&model.FinancialEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("company_id = ? AND entry_type = ? AND entry_date >= ?", companyId, model.EntryTypeIncome, todayStart).
		Scan(&revenueToday)

	var revenueYesterday float64
	database.DB.Model(&model.FinancialEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("company_id = ? AND entry_type = ? AND entry_date >= ? AND entry_date < ?",
			companyId, model.EntryTypeIncome, yesterdayStart, todayStart).
		Scan(&revenueYesterday)

	var ordersYesterday int64
	database.DB.Model(&model.Order{}).
		Where("company_id = ? AND created_at >= ? AND created_at < ?", companyId, yesterdayStart, todayStart).
		Count(&ordersYesterday)

	var escalated int64
	database.DB.Model(&model.Order{}).
		Where("company_id = ? AND status IN ? AND priority_level IS NOT NULL", companyId, model.OpenStatuses).
		Count(&escalated)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ordersToday":      totalToday,
		"ordersByStatus":   counts,
		"revenueToday":     revenueToday,
		"revenueYesterday": revenueYesterday,
		"revenueGrowth":    utils.CalculateGrowth(revenueToday, revenueYesterday),
		"ordersGrowth":     utils.CalculateGrowth(float64(totalToday), float64(ordersYesterday)),
		"escalatedOrders":  escalated,
		"failedWebhooks":   helper.FailedNotifications(),
	})
}
