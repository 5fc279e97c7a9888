package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/ydalvarez/techstore/internal/handlers"
	"github.com/ydalvarez/techstore/internal/middleware/auth"
)

type Deps struct {
	Guard           *auth.Guard
	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	CheckoutHandler *handlers.CheckoutHandler
	OrderHandler    *handlers.OrderHandler
	SearchHandler   *handlers.SearchHandler
	NavHandler      *handlers.NavHandler
	PrefsHandler    *handlers.PrefsHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/session", d.AuthHandler.Session)

	v1.GET("/search", d.SearchHandler.Search)
	v1.GET("/navigate", d.NavHandler.Navigate)
	v1.GET("/notice", d.NavHandler.Notice)

	v1.GET("/prefs", d.PrefsHandler.Get)
	v1.PUT("/prefs/dark-mode", d.PrefsHandler.SetDarkMode)
	v1.PUT("/prefs/lang", d.PrefsHandler.SetLanguage)
	v1.GET("/i18n/:lang", d.PrefsHandler.Translations)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.List)
	products.GET("/:id", d.ProductHandler.Get)

	cart := v1.Group("/cart", d.Guard.RequireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddItem)
	cart.PATCH("/:id", d.CartHandler.SetQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.Clear)

	checkout := v1.Group("/checkout", d.Guard.RequireLogin)
	checkout.GET("", d.CheckoutHandler.GetState)
	checkout.POST("/proceed", d.CheckoutHandler.Proceed)
	checkout.POST("/payment", d.CheckoutHandler.SelectPayment)
	checkout.POST("/confirm", d.CheckoutHandler.Confirm)
	checkout.POST("/reset", d.CheckoutHandler.Reset)

	orders := v1.Group("/orders", d.Guard.RequireLogin)
	orders.GET("", d.OrderHandler.ListMine)

	admin := v1.Group("/admin", d.Guard.AdminOnly)
	admin.POST("/products", d.ProductHandler.Create)
	admin.PATCH("/products/:id", d.ProductHandler.Patch)
	admin.DELETE("/products/:id", d.ProductHandler.Delete)
	admin.GET("/orders", d.OrderHandler.ListAll)
	admin.PATCH("/orders/:id", d.OrderHandler.SetStatus)
}
