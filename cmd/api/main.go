package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jorge052011/crm-distribuidora/internal/application/auth"
	"github.com/jorge052011/crm-distribuidora/internal/application/usecase"
	"github.com/jorge052011/crm-distribuidora/internal/application/worker"
	infrapdf "github.com/jorge052011/crm-distribuidora/internal/infrastructure/pdf"
	"github.com/jorge052011/crm-distribuidora/internal/infrastructure/postgres"
	httpRouter "github.com/jorge052011/crm-distribuidora/internal/interfaces/http"
	"github.com/jorge052011/crm-distribuidora/pkg/config"
	"github.com/jorge052011/crm-distribuidora/pkg/logger"
)

// Revisión diaria de stock a las 08:00.
const cronReorden = "0 8 * * *"

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

	clienteRepo := postgres.NewClienteRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	importacionRepo := postgres.NewImportacionRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	balanceUC := usecase.NewBalanceUseCase(balanceRepo)
	inventarioUC := usecase.NewInventarioUseCase(inventarioRepo, cfg.Inventario)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	ventaUC := usecase.NewVentaUseCase(ventaRepo, clienteRepo, txRunner)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	importacionUC := usecase.NewImportacionUseCase(importacionRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)

	pdfGenerator := infrapdf.NewBalancePDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		JWTSecret:   cfg.JWT.Secret,
		Auth:        httpRouter.NewAuthHandler(authUC),
		Balance:     httpRouter.NewBalanceHandler(balanceUC, pdfGenerator),
		Inventario:  httpRouter.NewInventarioHandler(inventarioUC),
		Dashboard:   httpRouter.NewDashboardHandler(dashboardUC),
		Clientes:    httpRouter.NewClienteHandler(clienteUC),
		Ventas:      httpRouter.NewVentaHandler(ventaUC),
		Productos:   httpRouter.NewProductoHandler(productoUC),
		Gastos:      httpRouter.NewGastoHandler(gastoUC),
		Importacion: httpRouter.NewImportacionHandler(importacionUC),
	})

	reorden := worker.NewReordenWorker(inventarioUC, log.Componente("reorden"))
	if err := reorden.Start(cronReorden); err != nil {
		log.Fatal().Err(err).Msg("programar worker de reorden")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	reorden.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
