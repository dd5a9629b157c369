package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestionpyme/erp-api/internal/application/auth"
	"github.com/gestionpyme/erp-api/internal/application/compras"
	"github.com/gestionpyme/erp-api/internal/application/configuracion"
	"github.com/gestionpyme/erp-api/internal/application/crm"
	"github.com/gestionpyme/erp-api/internal/application/documentos"
	"github.com/gestionpyme/erp-api/internal/application/inventario"
	"github.com/gestionpyme/erp-api/internal/application/proyectos"
	"github.com/gestionpyme/erp-api/internal/application/reportes"
	"github.com/gestionpyme/erp-api/internal/application/servicios"
	"github.com/gestionpyme/erp-api/internal/application/trabajadores"
	"github.com/gestionpyme/erp-api/internal/application/ventas"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	InventarioUC   *inventario.InventarioUseCase
	ServiciosUC    *servicios.ServiciosUseCase
	CRMUC          *crm.CRMUseCase
	CreateSaleUC   *ventas.CreateSaleUseCase
	RegistrosUC    *ventas.RegistrosUseCase
	ComprasUC      *compras.ComprasUseCase
	ProyectosUC    *proyectos.ProyectosUseCase
	TrabajadoresUC *trabajadores.TrabajadoresUseCase
	ReportesUC     *reportes.ReportesUseCase
	ConfigUC       *configuracion.ConfiguracionUseCase
	PDFUC          *documentos.PDFUseCase
	JWTSecret      string
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

	// Inventario
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.InventarioUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	protected.Get("/warehouses", productHandler.ListWarehouses)

	// Servicios
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiciosUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Delete("/:id", serviceHandler.Delete)

	// CRM
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.CRMUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id/history", clientHandler.GetHistory)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Ventas y documentos
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSaleUC, deps.RegistrosUC, deps.PDFUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/pdf", saleHandler.DownloadPDF)
	sales.Delete("/:id", RequireRole(entity.RoleAdmin), saleHandler.Delete)

	// Compras
	purchaseHandler := NewPurchaseHandler(deps.ComprasUC)
	providers := protected.Group("/providers")
	providers.Post("/", purchaseHandler.CreateProvider)
	providers.Get("/", purchaseHandler.ListProviders)
	providers.Delete("/:id", purchaseHandler.DeleteProvider)
	purchases := protected.Group("/purchases")
	purchases.Post("/", purchaseHandler.CreateOrder)
	purchases.Get("/", purchaseHandler.ListOrders)
	purchases.Post("/:id/receive", purchaseHandler.ReceiveOrder)

	// Proyectos
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProyectosUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Post("/:id/finish", projectHandler.Finish)

	// Trabajadores (RRHH, solo admin)
	employeeHandler := NewEmployeeHandler(deps.TrabajadoresUC, deps.PDFUC)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id/roles", employeeHandler.UpdateRoles)
	employees.Put("/:id/details", employeeHandler.UpsertDetails)
	employees.Post("/:id/payrolls", employeeHandler.CreatePayroll)
	employees.Get("/:id/payrolls", employeeHandler.ListPayrolls)
	protected.Get("/payrolls/:id/pdf", RequireRole(entity.RoleAdmin), employeeHandler.DownloadPayrollPDF)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportesUC)
	protected.Get("/reports/dashboard", reportHandler.Dashboard)

	// Configuración
	settingsHandler := NewSettingsHandler(deps.ConfigUC)
	settings := protected.Group("/settings")
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Upsert)
}
