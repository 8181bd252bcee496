package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/estoque-api/internal/application/auth"
	"github.com/jcastano/estoque-api/internal/application/usecase"
	"github.com/jcastano/estoque-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Lecturas públicas; mutaciones con
// Bearer Token; eliminar solo para admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	protected := AuthMiddleware(deps.JWTSecret)
	products.Post("/", protected, productHandler.Create)
	products.Put("/:id", protected, productHandler.Update)
	products.Post("/:id/sell", protected, productHandler.Sell)
	products.Delete("/:id", protected, RequireRole(entity.RoleAdmin), productHandler.Delete)
}
