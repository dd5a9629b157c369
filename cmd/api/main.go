package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/gestionpyme/erp-api/docs"
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
	infrapdf "github.com/gestionpyme/erp-api/internal/infrastructure/pdf"
	"github.com/gestionpyme/erp-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestionpyme/erp-api/internal/interfaces/http"
	"github.com/gestionpyme/erp-api/pkg/config"
	"github.com/gestionpyme/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	settingsRepo := postgres.NewCompanySettingsRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, warehouseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventarioUC := inventario.NewInventarioUseCase(productRepo, stockRepo, warehouseRepo)
	serviciosUC := servicios.NewServiciosUseCase(serviceRepo)
	crmUC := crm.NewCRMUseCase(clientRepo, saleRepo)
	createSaleUC := ventas.NewCreateSaleUseCase(txRunner, productRepo, serviceRepo, clientRepo)
	registrosUC := ventas.NewRegistrosUseCase(saleRepo)
	comprasUC := compras.NewComprasUseCase(txRunner, providerRepo, orderRepo, productRepo)
	proyectosUC := proyectos.NewProyectosUseCase(txRunner, projectRepo, productRepo, clientRepo)
	trabajadoresUC := trabajadores.NewTrabajadoresUseCase(userRepo, employeeRepo, payrollRepo)
	reportesUC := reportes.NewReportesUseCase(reportRepo)
	configUC := configuracion.NewConfiguracionUseCase(settingsRepo)

	// Compositor de documentos: ventas (factura/boleta/cotización) y liquidaciones
	logos := infrapdf.NewHTTPBuscadorLogo(time.Duration(cfg.PDF.LogoTimeoutSeconds) * time.Second)
	generador := infrapdf.NewGenerador(logos, log)
	pdfUC := documentos.NewPDFUseCase(saleRepo, settingsRepo, userRepo, employeeRepo, payrollRepo, generador)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InventarioUC:   inventarioUC,
		ServiciosUC:    serviciosUC,
		CRMUC:          crmUC,
		CreateSaleUC:   createSaleUC,
		RegistrosUC:    registrosUC,
		ComprasUC:      comprasUC,
		ProyectosUC:    proyectosUC,
		TrabajadoresUC: trabajadoresUC,
		ReportesUC:     reportesUC,
		ConfigUC:       configUC,
		PDFUC:          pdfUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
