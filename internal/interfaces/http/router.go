package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/taller-api/internal/application/facturacion"
	"github.com/tallerpro/taller-api/internal/application/inventory"
	"github.com/tallerpro/taller-api/internal/application/usecase"
	"github.com/tallerpro/taller-api/internal/domain/entity"
	"github.com/tallerpro/taller-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CAIUC       *facturacion.CAIUseCase
	IssueUC     *facturacion.IssueDocumentUseCase
	VoidUC      *facturacion.VoidDocumentUseCase
	PDFUC       *facturacion.PDFUseCase
	KardexUC    *inventory.KardexUseCase
	ProductUC   *usecase.ProductUseCase
	ServiceUC   *usecase.ServiceItemUseCase
	QuotationUC *usecase.QuotationUseCase
	UserUC      *usecase.UserUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	Emisor      config.EmisorConfig
	JWTSecret   string
}

// Router registra las rutas de la API. Todo /api exige Bearer JWT; la
// administración de CAI y usuarios exige además rol admin; la emisión y
// anulación de documentos exige admin o cajero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	admin := RequireRole(entity.RoleAdmin)
	facturador := RequireRole(entity.RoleAdmin, entity.RoleCajero)

	// CAI (solo admin)
	cais := api.Group("/cai")
	caiHandler := NewCAIHandler(deps.CAIUC)
	cais.Get("/", caiHandler.List)
	cais.Post("/", admin, caiHandler.Create)
	cais.Post("/:id/anular", admin, caiHandler.Cancel)

	// Documentos fiscales
	docs := api.Group("/documentos")
	docHandler := NewDocumentHandler(deps.IssueUC, deps.VoidUC, deps.PDFUC, deps.Emisor)
	docs.Post("/", facturador, docHandler.Issue)
	docs.Post("/desde-cotizacion/:id", facturador, docHandler.IssueFromQuotation)
	docs.Get("/", docHandler.List)
	docs.Get("/:id", docHandler.GetByID)
	docs.Post("/:id/anular", facturador, docHandler.Void)
	docs.Get("/:id/print", docHandler.Print)

	// Productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", facturador, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", facturador, productHandler.Update)

	// Servicios
	services := api.Group("/servicios")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", facturador, serviceHandler.Create)
	services.Get("/", serviceHandler.List)

	// Cotizaciones (el mecánico también puede cotizar)
	quotations := api.Group("/cotizaciones")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)

	// Kardex
	invGroup := api.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.KardexUC)
	invGroup.Get("/movimientos", inventoryHandler.List)

	// Usuarios (solo admin)
	users := api.Group("/usuarios", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id/rol", userHandler.UpdateRole)

	// Gastos
	expenses := api.Group("/gastos", facturador)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
}
