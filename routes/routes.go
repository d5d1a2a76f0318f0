package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/EXROSE/VaricoCare/controllers"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/middleware"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Orders   *controllers.OrderController
	Exercise *controllers.ExerciseController
	Diet     *controllers.DietController
	Analysis *controllers.AnalysisController
	Admin    *controllers.AdminController
}

// Register wires every route group. The AI endpoints sit behind a tight
// per-IP limit since each request fans out to the external gateway.
func Register(r *gin.Engine, c Controllers, sessions database.SessionStore) {
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(rate.Every(time.Minute/30), 10))
	auth.POST("/signup", c.Auth.Signup)
	auth.POST("/login", c.Auth.Login)
	auth.POST("/logout", c.Auth.Logout)

	// Catalog reads are public; everything else needs a session.
	r.GET("/products", c.Products.List)
	r.GET("/products/:id", c.Products.Get)
	r.GET("/exercises", c.Exercise.List)
	r.GET("/exercises/:id", c.Exercise.Get)
	r.GET("/diet/tips", c.Diet.Tips)

	user := r.Group("/")
	user.Use(middleware.Auth(sessions))
	user.GET("/me", c.Auth.Me)

	user.GET("/cart", c.Cart.GetCart)
	user.POST("/cart/items", c.Cart.AddItem)
	user.PATCH("/cart/items/:product_id", c.Cart.UpdateQuantity)
	user.DELETE("/cart/items/:product_id", c.Cart.RemoveItem)
	user.DELETE("/cart", c.Cart.ClearCart)
	user.POST("/wishlist/toggle", c.Cart.ToggleWishlist)

	user.POST("/checkout", c.Checkout.Begin)
	user.GET("/checkout", c.Checkout.Current)
	user.POST("/checkout/details", c.Checkout.SubmitDetails)
	user.POST("/checkout/back", c.Checkout.Back)
	user.POST("/checkout/confirm", c.Checkout.Confirm)
	user.GET("/checkout/receipt", c.Checkout.Receipt)
	user.DELETE("/checkout", c.Checkout.Cancel)

	user.GET("/orders", c.Orders.List)
	user.GET("/orders/:id", c.Orders.Get)

	user.POST("/exercises/:id/complete", c.Exercise.Complete)
	user.GET("/progress", c.Exercise.Progress)

	ai := r.Group("/")
	ai.Use(middleware.Auth(sessions), middleware.RateLimit(rate.Every(time.Minute/10), 3))
	ai.POST("/analysis", c.Analysis.Analyze)
	ai.POST("/diet/plan", c.Diet.GeneratePlan)

	admin := r.Group("/admin")
	admin.Use(middleware.Auth(sessions), middleware.RequireAdmin())
	admin.GET("/overview", c.Admin.Overview)
	admin.GET("/orders", c.Admin.Orders)
	admin.POST("/products", c.Admin.CreateProduct)
	admin.PUT("/products/:id", c.Admin.UpdateProduct)
	admin.DELETE("/products/:id", c.Admin.DeleteProduct)
	admin.POST("/exercises", c.Admin.CreateExercise)
	admin.PUT("/exercises/:id", c.Admin.UpdateExercise)
	admin.DELETE("/exercises/:id", c.Admin.DeleteExercise)
	admin.POST("/diet/tips", c.Admin.CreateDietTip)
	admin.DELETE("/diet/tips/:id", c.Admin.DeleteDietTip)
}
