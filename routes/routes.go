package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/controllers"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/middlewares"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard (double-submitted payments replay the stored
	// response instead of posting twice)
	protected.Use(middlewares.Idempotency())

	protected.Get("/me", controllers.Me)

	// Staff endpoints (cashiers and admins)
	staff := protected.Group("", middlewares.RequireRole(models.RoleCashier, models.RoleAdmin))

	staff.Get("/students", controllers.GetStudents)
	staff.Get("/student/:id", controllers.GetStudent)
	staff.Get("/student/:id/fees", controllers.GetStudentFees)
	staff.Get("/student/:id/payments", controllers.GetStudentPayments)

	staff.Post("/payments", controllers.CreatePayment)
	staff.Get("/payments", controllers.GetPayments)

	// Admin-only endpoints
	admin := protected.Group("", middlewares.RequireRole(models.RoleAdmin))

	// Students
	admin.Post("/student", controllers.CreateStudent)
	admin.Put("/student/:id", controllers.UpdateStudent)
	admin.Put("/student/:id/concession", controllers.UpdateConcession)
	admin.Post("/student/:id/concession-letter", controllers.UploadConcessionLetter)
	admin.Post("/students/promote", controllers.PromoteStudents)
	admin.Post("/students/import", controllers.ImportStudents)

	// Invoices (batch generation per year+term)
	admin.Post("/invoices/generate", controllers.GenerateInvoices)
	admin.Get("/invoices", controllers.GetInvoices)
	admin.Get("/invoices/summary", controllers.GetInvoiceSummary)
	admin.Get("/invoices/outstanding", controllers.GetOutstandingByTerm)
	admin.Put("/invoices/:id/status", controllers.UpdateInvoiceStatus)

	// Expenses
	admin.Post("/expense", controllers.CreateExpense)
	admin.Get("/expenses", controllers.GetExpenses)
	admin.Put("/expense/:id", controllers.UpdateExpense)
	admin.Delete("/expense/:id", controllers.DeleteExpense)

	// Reports
	admin.Get("/reports/monthly-payments", controllers.GetMonthlyPayments)
	admin.Get("/reports/monthly-expenses", controllers.GetMonthlyExpenses)
	admin.Get("/reports/fee-register", controllers.GetFeeRegister)

	// Privileged account management
	admin.Get("/admins", controllers.ListAdmins)
	admin.Post("/admins", controllers.CreateAdmin)
	admin.Delete("/admins/:id", controllers.DeleteAdmin)
	admin.Get("/cashiers", controllers.ListCashiers)
	admin.Post("/cashiers", controllers.CreateCashier)
	admin.Patch("/cashiers/:id", controllers.UpdateCashier)
	admin.Delete("/cashiers/:id", controllers.DeleteCashier)

	// Activity audit + branding
	admin.Get("/activity", controllers.GetActivity)
	admin.Post("/uploads/logo", controllers.UploadLogo)
}
