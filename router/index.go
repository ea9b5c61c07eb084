package router

import (
	"acai_pdv/handler"
	"acai_pdv/middleware"
	"acai_pdv/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	// acompanhamento público do pedido, sem autenticação
	v1.Get("/rastreio/:companySlug/:publicCode", handler.GetOrderTracking)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), handler.ChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	company := v1.Group("/company", logger.New())
	company.Get("/", middleware.Protected(), handler.GetCompanies)
	company.Post("/", middleware.Protected(), validate.CreateCompany(), handler.CreateCompany)
	company.Put("/:companyId", middleware.Protected(), validate.GetById("companyId"), validate.UpdateCompany(), handler.UpdateCompany)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Patch("/:orderId/status", middleware.Protected(), validate.GetById("orderId"), validate.TransitionOrder(), handler.TransitionOrderStatus)
	order.Post("/finalize", middleware.Protected(), validate.Delete(), handler.BulkFinalizeOrders)
	order.Delete("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.DeleteOrder)

	kanban := v1.Group("/kanban", logger.New())
	kanban.Get("/", middleware.Protected(), handler.GetKanbanBoard)
	kanban.Post("/move", middleware.Protected(), validate.KanbanMove(), handler.MoveKanbanCard)
	kanban.Post("/finalize", middleware.Protected(), validate.Delete(), handler.BulkFinalizeOrders)
	kanban.Get("/ws/:companyId", websocket.New(handler.BoardWebsocket))

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)
	customer.Post("/", middleware.Protected(), validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), validate.GetById("customerId"), validate.UpdateCustomer(), handler.UpdateCustomer)
	customer.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCustomers)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.Protected(), handler.GetProducts)
	product.Get("/:productId", middleware.Protected(), validate.GetById("productId"), handler.GetProductById)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.GetById("productId"), validate.UpdateProduct(), handler.UpdateProduct)
	product.Post("/:productId/image", middleware.Protected(), validate.GetById("productId"), handler.UploadProductImage)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)

	item := v1.Group("/item", logger.New())
	item.Get("/", middleware.Protected(), handler.GetItems)
	item.Post("/", middleware.Protected(), validate.CreateItem(), handler.CreateItem)
	item.Put("/:itemId", middleware.Protected(), validate.GetById("itemId"), validate.UpdateItem(), handler.UpdateItem)
	item.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteItems)

	neighborhood := v1.Group("/neighborhood", logger.New())
	neighborhood.Get("/", middleware.Protected(), handler.GetNeighborhoods)
	neighborhood.Post("/", middleware.Protected(), validate.CreateNeighborhood(), handler.CreateNeighborhood)
	neighborhood.Put("/:neighborhoodId", middleware.Protected(), validate.GetById("neighborhoodId"), validate.UpdateNeighborhood(), handler.UpdateNeighborhood)
	neighborhood.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteNeighborhoods)

	paymentMethod := v1.Group("/payment-method", logger.New())
	paymentMethod.Get("/", middleware.Protected(), handler.GetPaymentMethods)
	paymentMethod.Post("/", middleware.Protected(), validate.CreatePaymentMethod(), handler.CreatePaymentMethod)
	paymentMethod.Put("/:methodId", middleware.Protected(), validate.GetById("methodId"), validate.UpdatePaymentMethod(), handler.UpdatePaymentMethod)
	paymentMethod.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePaymentMethods)

	financial := v1.Group("/financial", logger.New())
	financial.Get("/entries", middleware.Protected(), handler.GetFinancialEntries)
	financial.Post("/entries", middleware.Protected(), validate.CreateFinancialEntry(), handler.CreateFinancialEntry)
	financial.Put("/entries/:entryId", middleware.Protected(), validate.GetById("entryId"), validate.UpdateFinancialEntry(), handler.UpdateFinancialEntry)
	financial.Delete("/entries", middleware.Protected(), validate.Delete(), handler.DeleteFinancialEntries)
	financial.Get("/cash-flow", middleware.Protected(), handler.GetCashFlow)
	financial.Get("/cost-centers", middleware.Protected(), handler.GetCostCenters)
	financial.Post("/cost-centers", middleware.Protected(), validate.CreateNamed(), handler.CreateCostCenter)
	financial.Put("/cost-centers/:centerId", middleware.Protected(), validate.GetById("centerId"), validate.UpdateNamed(), handler.UpdateCostCenter)
	financial.Get("/expense-categories", middleware.Protected(), handler.GetExpenseCategories)
	financial.Post("/expense-categories", middleware.Protected(), validate.CreateNamed(), handler.CreateExpenseCategory)
	financial.Put("/expense-categories/:categoryId", middleware.Protected(), validate.GetById("categoryId"), validate.UpdateNamed(), handler.UpdateExpenseCategory)

	priority := v1.Group("/priority-setting", logger.New())
	priority.Get("/", middleware.Protected(), handler.GetPrioritySettings)
	priority.Post("/", middleware.Protected(), validate.CreatePrioritySetting(), handler.CreatePrioritySetting)
	priority.Put("/:settingId", middleware.Protected(), validate.GetById("settingId"), validate.UpdatePrioritySetting(), handler.UpdatePrioritySetting)
	priority.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePrioritySettings)

	budget := v1.Group("/budget", logger.New())
	budget.Get("/", middleware.Protected(), handler.GetPurchaseBudgets)
	budget.Get("/:budgetId", middleware.Protected(), validate.GetById("budgetId"), handler.GetPurchaseBudgetById)
	budget.Post("/", middleware.Protected(), validate.CreatePurchaseBudget(), handler.CreatePurchaseBudget)
	budget.Put("/:budgetId", middleware.Protected(), validate.GetById("budgetId"), validate.UpdatePurchaseBudget(), handler.UpdatePurchaseBudget)
	budget.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePurchaseBudgets)

	report := v1.Group("/report", logger.New())
	report.Get("/dashboard", middleware.Protected(), handler.GetDashboard)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateUploadSignature)
}
