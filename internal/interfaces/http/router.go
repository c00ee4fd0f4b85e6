package http

import (
	"github.com/gofiber/fiber/v2"
	appaccess "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/auth"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/sales"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/usecase"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	AccessUC       *appaccess.AccessUseCase
	OrganizationUC *usecase.OrganizationUseCase
	UserUC         *usecase.UserUseCase
	AccountUC      *usecase.AccountUseCase
	JournalUC      *usecase.JournalUseCase
	ProductUC      *usecase.ProductUseCase
	CreateSale     *sales.CreateSaleUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo de negocio queda detrás del
// guard de navegación de su sección, con la misma tabla de rutas por rol que
// consume el frontend vía /api/access/evaluate.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	// Guard de navegación (atiende también anónimos)
	accessHandler := NewAccessHandler(deps.AccessUC)
	api.Get("/access/evaluate", OptionalAuthMiddleware(deps.JWTSecret), accessHandler.Evaluate)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Organizaciones: la propia para cualquier usuario, el resto es plataforma
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	protected.Get("/organizations/mine", orgHandler.GetMine)
	platform := protected.Group("/organizations", RequireSuperAdmin(deps.AccessUC))
	platform.Get("/", orgHandler.List)
	platform.Put("/:id/contract", orgHandler.UpdateContract)

	// Usuarios: la sección /settings es visible para todo rol activo, pero la
	// administración de usuarios queda reservada a Admin y SuperAdmin.
	users := protected.Group("/users",
		RequireSection(access.RouteSettings, deps.AccessUC),
		RequireRole(deps.AccessUC, entity.RoleAdmin, entity.RoleSuperAdmin),
	)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.AssignRole)
	users.Put("/:id/force-password-change", userHandler.SetForcePasswordChange)

	// Contabilidad (sección /finance)
	finance := protected.Group("/", RequireSection("/finance", deps.AccessUC))
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := finance.Group("/accounts")
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Delete("/:id", accountHandler.Delete)
	finance.Get("/accounting-settings", accountHandler.GetSettings)
	finance.Put("/accounting-settings", accountHandler.UpdateSettings)

	journal := finance.Group("/journal")
	journalHandler := NewJournalHandler(deps.JournalUC)
	journal.Post("/", journalHandler.Create)
	journal.Get("/", journalHandler.List)

	// POS (sección /sales)
	salesGroup := protected.Group("/sales", RequireSection("/sales", deps.AccessUC))
	saleHandler := NewSaleHandler(deps.CreateSale)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Catálogo (sección /inventory)
	products := protected.Group("/products", RequireSection("/inventory", deps.AccessUC))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
}
