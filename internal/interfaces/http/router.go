package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/auth"
	"github.com/tu-usuario/almacen-pro/internal/application/report"
	"github.com/tu-usuario/almacen-pro/internal/application/stock"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC   *usecase.MaterialUseCase
	CategoryUC   *usecase.CategoryUseCase
	SupplierUC   *usecase.SupplierUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	ThirdPartyUC *usecase.ThirdPartyUseCase
	CostCenterUC *usecase.CostCenterUseCase
	EntryUC      *stock.RegisterEntryUseCase
	ExitUC       *stock.RegisterExitUseCase
	DeleteUC     *stock.DeleteMovementUseCase
	LotsUC       *stock.ResolveLotsUseCase
	ReconcileUC  *stock.ReconcileStockUseCase
	ReportUC     *report.MovementsReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materials (protegido)
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	movementHandler := NewMovementHandler(deps.EntryUC, deps.ExitUC, deps.DeleteUC, deps.LotsUC, deps.ReconcileUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/below-minimum", materialHandler.ListBelowMinimum)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), materialHandler.Delete)
	materials.Get("/:id/lots", movementHandler.ResolveLots)
	materials.Post("/:id/recalculate", movementHandler.Recalculate)

	// Movements (protegido): el libro es la fuente de verdad del stock
	movements := protected.Group("/movements")
	movements.Post("/entries", movementHandler.RegisterEntry)
	movements.Post("/exits", movementHandler.RegisterExit)
	movements.Post("/recalculate-all", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), movementHandler.RecalculateAll)
	movements.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), movementHandler.DeleteMovement)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/movements", reportHandler.General)
	reports.Get("/cost-centers/:id", reportHandler.CostCenter)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), supplierHandler.Delete)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), employeeHandler.Delete)

	// Third parties (protegido)
	thirdParties := protected.Group("/third-parties")
	thirdPartyHandler := NewThirdPartyHandler(deps.ThirdPartyUC)
	thirdParties.Post("/", thirdPartyHandler.Create)
	thirdParties.Get("/", thirdPartyHandler.List)
	thirdParties.Get("/:id", thirdPartyHandler.GetByID)
	thirdParties.Put("/:id", thirdPartyHandler.Update)
	thirdParties.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), thirdPartyHandler.Delete)

	// Cost centers (protegido)
	costCenters := protected.Group("/cost-centers")
	costCenterHandler := NewCostCenterHandler(deps.CostCenterUC)
	costCenters.Post("/", costCenterHandler.Create)
	costCenters.Get("/", costCenterHandler.List)
	costCenters.Get("/:id", costCenterHandler.GetByID)
	costCenters.Put("/:id", costCenterHandler.Update)
	costCenters.Delete("/:id", RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin), costCenterHandler.Delete)
}
