package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Chatarreria-api/internal/application/auth"
	"github.com/jhoicas/Chatarreria-api/internal/application/catalog"
	"github.com/jhoicas/Chatarreria-api/internal/application/history"
	"github.com/jhoicas/Chatarreria-api/internal/application/payout"
	"github.com/jhoicas/Chatarreria-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.CatalogUseCase
	PayoutUC  *payout.PayoutUseCase
	HistoryUC *history.HistoryUseCase
	JWTSecret string
	Location  *time.Location
}

// Router registra las rutas de la API. Los guards de sesión se componen de
// forma explícita por grupo: empleado y admin son sesiones independientes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/empleado", authHandler.EmployeeLogin)
	authGroup.Post("/admin", authHandler.AdminLogin)

	// Precios: lectura para cualquier sesión, edición solo admin
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	precios := api.Group("/precios", AuthMiddleware(deps.JWTSecret))
	precios.Get("/", RequireRole(jwt.RoleEmpleado, jwt.RoleAdmin), catalogHandler.Get)
	precios.Put("/", RequireRole(jwt.RoleAdmin), catalogHandler.Save)

	// Pagos (pesajes): solo empleados
	payoutHandler := NewPayoutHandler(deps.PayoutUC)
	pagos := api.Group("/pagos", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleEmpleado))
	pagos.Post("/", payoutHandler.Register)
	pagos.Post("/recibo", payoutHandler.Receipt)
	pagos.Post("/recibo/pdf", payoutHandler.ReceiptPDF)

	// Transacciones: solo admin
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Location)
	transacciones := api.Group("/transacciones", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	transacciones.Get("/", historyHandler.List)
}
