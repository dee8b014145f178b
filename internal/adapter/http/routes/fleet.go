package routes

import (
	"gestion_flota/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/ots"
	PathBudgets       = "/budgets"
	PathExpenses      = "/expenses"
	PathNotifications = "/notifications"
	PathReports       = "/reports"
)

func addFleetRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	budgetHandler *handlers.BudgetHandler,
	expenseHandler *handlers.ExpenseHandler,
	notificationHandler *handlers.NotificationHandler,
	reportHandler *handlers.ReportHandler,
) {
	ots := rg.Group(PathOrders)
	{
		ots.GET("", orderHandler.ListOrders)
		ots.POST("", orderHandler.CreateOrder)
		ots.PUT("/:id", orderHandler.UpdateOrder)
		ots.DELETE("/:id", orderHandler.DeleteOrder)
		ots.GET("/:id/descargar", orderHandler.DownloadOrder)
		ots.POST("/:id/presupuesto", budgetHandler.GenerateBudget)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.CreateExpense)
		expenses.PUT("/presupuesto", expenseHandler.SetAnnualBudget)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
		notifications.PATCH("/read-all", notificationHandler.MarkAllNotificationsRead)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/dashboard", reportHandler.GetDashboard)
	}
}
