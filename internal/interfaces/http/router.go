package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wsbrasil/nexus-api/internal/application/auth"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
	"github.com/wsbrasil/nexus-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AccessUC      *usecase.AccessUseCase
	OrgUC         *usecase.OrganizationUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	LeadUC        *usecase.LeadUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	FinanceUC     *usecase.FinanceUseCase
	AppointmentUC *usecase.AppointmentUseCase
	AIUC          *usecase.AIUseCase
	JWTSecret     string
}

// Router registra as rotas da API. Cada módulo do console vira um grupo
// protegido por AuthMiddleware + RequireModule do plano.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Gate de sessão (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/reset-password", authHandler.ResetPassword)

	// Visão de módulos da sessão (fonte da sidebar)
	sessionHandler := NewSessionHandler(deps.AccessUC)
	protected.Get("/session/modules", sessionHandler.Modules)

	// Administração de tenants (MASTER_ADMIN, exclusivo de contas root)
	orgs := protected.Group("/organizations",
		RequireRole(entity.RoleSuperAdmin),
		RequireModule(entity.ModuleMasterAdmin, deps.AccessUC),
	)
	orgHandler := NewOrganizationHandler(deps.OrgUC)
	orgs.Post("/", orgHandler.Provision)
	orgs.Get("/", orgHandler.List)
	orgs.Get("/:id", orgHandler.GetByID)
	orgs.Put("/:id", orgHandler.Update)
	orgs.Post("/:id/suspend", orgHandler.Suspend)
	orgs.Post("/:id/reactivate", orgHandler.Reactivate)

	// Gestão de usuários do tenant (SETTINGS, só administradores)
	users := protected.Group("/users",
		RequireRole(entity.RoleSuperAdmin, entity.RoleADM),
		RequireModule(entity.ModuleSettings, deps.AccessUC),
	)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Precificação (PRICING, alcançável em qualquer plano)
	productHandler := NewProductHandler(deps.ProductUC)
	protected.Post("/pricing/suggest",
		RequireModule(entity.ModulePricing, deps.AccessUC),
		productHandler.SuggestPrice,
	)

	// Catálogo/estoque (INVENTORY)
	products := protected.Group("/products", RequireModule(entity.ModuleInventory, deps.AccessUC))
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Funil de vendas (SALES)
	leads := protected.Group("/leads", RequireModule(entity.ModuleSales, deps.AccessUC))
	leadHandler := NewLeadHandler(deps.LeadUC)
	aiHandler := NewAIHandler(deps.AIUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Post("/:id/move", leadHandler.MoveStage)
	leads.Get("/:id/advice", aiHandler.LeadAdvice)
	leads.Delete("/:id", leadHandler.Delete)

	// RH (RH): colaboradores, 9-box, PDI, recrutamento e clima
	employees := protected.Group("/employees", RequireModule(entity.ModuleRH, deps.AccessUC))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/ninebox", employeeHandler.NineBox)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Get("/:id/pdi", aiHandler.PDI)
	employees.Delete("/:id", employeeHandler.Delete)

	rh := protected.Group("/rh", RequireModule(entity.ModuleRH, deps.AccessUC))
	rh.Post("/candidate-score", aiHandler.CandidateScore)
	rh.Post("/climate-sentiment", aiHandler.ClimateSentiment)

	// Razão financeiro (FINANCE)
	finance := protected.Group("/finance", RequireModule(entity.ModuleFinance, deps.AccessUC))
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Post("/transactions", financeHandler.Create)
	finance.Get("/transactions", financeHandler.List)
	finance.Put("/transactions/:id/status", financeHandler.SetStatus)
	finance.Delete("/transactions/:id", financeHandler.Delete)
	finance.Get("/summary", financeHandler.Summary)

	// Agenda (SCHEDULING)
	appointments := protected.Group("/appointments", RequireModule(entity.ModuleScheduling, deps.AccessUC))
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/optimize", appointmentHandler.OptimizeSchedule)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Get("/:id/confirmation", appointmentHandler.ConfirmationMessage)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Documentos (DOCUMENTS): minuta de contrato em PDF
	documents := protected.Group("/documents", RequireModule(entity.ModuleDocuments, deps.AccessUC))
	documents.Post("/contracts/draft", aiHandler.DraftContract)

	// Marketing (MARKETING): campanhas e artes geradas
	marketing := protected.Group("/marketing", RequireModule(entity.ModuleMarketing, deps.AccessUC))
	marketing.Post("/campaign-image", aiHandler.CampaignImage)
	marketing.Post("/stock-clearance", aiHandler.StockClearanceCampaign)
}
