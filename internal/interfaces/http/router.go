package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps agrupa los handlers y la configuración que el router necesita.
type RouterDeps struct {
	JWTSecret   string
	Auth        *AuthHandler
	Balance     *BalanceHandler
	Inventario  *InventarioHandler
	Dashboard   *DashboardHandler
	Clientes    *ClienteHandler
	Ventas      *VentaHandler
	Productos   *ProductoHandler
	Gastos      *GastoHandler
	Importacion *ImportacionHandler
}

// Router registra todas las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas públicas.
	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	// Todo lo demás requiere token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	balance := protected.Group("/balance")
	balance.Get("/mensual/:anio/:mes", deps.Balance.Mensual)
	balance.Get("/mensual/:anio/:mes/pdf", deps.Balance.MensualPDF)
	balance.Get("/anual/:anio", deps.Balance.Anual)
	balance.Get("/comparativo", deps.Balance.Comparativo)

	inventario := protected.Group("/inventario")
	inventario.Get("/consumo-bolsas", deps.Inventario.ConsumoBolsas)
	inventario.Get("/proyeccion", deps.Inventario.ProyeccionStock)

	protected.Get("/dashboard", deps.Dashboard.Dashboard)
	protected.Get("/resumen-mensual", deps.Dashboard.ResumenMensual)

	clientes := protected.Group("/clientes")
	clientes.Post("/", deps.Clientes.Create)
	clientes.Get("/", deps.Clientes.List)
	clientes.Get("/:id", deps.Clientes.Get)
	clientes.Put("/:id", deps.Clientes.Update)
	clientes.Delete("/:id", deps.Clientes.Delete)

	ventas := protected.Group("/ventas")
	ventas.Post("/", deps.Ventas.Create)
	ventas.Get("/", deps.Ventas.List)
	ventas.Get("/:id", deps.Ventas.Get)
	ventas.Put("/:id", deps.Ventas.Update)
	ventas.Delete("/:id", deps.Ventas.Delete)
	ventas.Post("/:id/items", deps.Ventas.AddItem)
	ventas.Delete("/:id/items/:itemId", deps.Ventas.DeleteItem)

	productos := protected.Group("/productos")
	productos.Post("/", deps.Productos.Create)
	productos.Get("/", deps.Productos.List)
	productos.Get("/:id", deps.Productos.Get)
	productos.Put("/:id", deps.Productos.Update)

	gastos := protected.Group("/gastos")
	gastos.Post("/", deps.Gastos.Create)
	gastos.Get("/", deps.Gastos.List)
	gastos.Get("/:id", deps.Gastos.Get)
	gastos.Put("/:id", deps.Gastos.Update)
	gastos.Delete("/:id", deps.Gastos.Delete)

	importaciones := protected.Group("/importaciones")
	importaciones.Post("/", deps.Importacion.Create)
	importaciones.Get("/", deps.Importacion.List)
	importaciones.Get("/:id", deps.Importacion.Get)
	importaciones.Put("/:id", deps.Importacion.Update)
}
