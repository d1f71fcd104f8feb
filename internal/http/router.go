package http

import (
	nethttp "net/http"

	"eventhub/internal/http/handlers"
	"eventhub/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth       handlers.AuthHandler
	Users      handlers.UserHandler
	Events     handlers.EventHandler
	Categories handlers.CategoryHandler
	Posts      handlers.PostHandler
	Blogs      handlers.BlogHandler
	Comments   handlers.CommentHandler
	Bookings   handlers.BookingHandler
	PayPal     handlers.PayPalHandler
	Files      handlers.FileHandler
}

func NewRouter(h Handlers, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, nethttp.StatusNotFound, "route not found")
	})

	r.GET("/health", handlers.Health)
	r.GET("/db-check", handlers.DBCheck)

	api := r.Group("/api/v1")
	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireRoles("SUPER_ADMIN")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/profile", auth, h.Auth.Profile)
		authGroup.POST("/change-password", auth, h.Auth.ChangePassword)
		authGroup.POST("/forgot-password", h.Auth.ForgotPassword)
		authGroup.POST("/reset-password", h.Auth.ResetPassword)
	}

	users := api.Group("/users", auth, adminOnly)
	{
		users.GET("", h.Users.List)
		users.GET("/:id", h.Users.Get)
		users.PATCH("/:id", h.Users.Update)
		users.DELETE("/:id", h.Users.Delete)
	}

	events := api.Group("/event")
	{
		events.GET("", h.Events.List)
		events.GET("/:id", h.Events.Get)
		events.POST("", auth, adminOnly, h.Events.Create)
		events.PATCH("/:id", auth, adminOnly, h.Events.Update)
		events.DELETE("/:id", auth, adminOnly, h.Events.Delete)
	}

	categories := api.Group("/event-category")
	{
		categories.GET("", h.Categories.List)
		categories.GET("/:id", h.Categories.Get)
		categories.POST("", auth, adminOnly, h.Categories.Create)
		categories.PATCH("/:id", auth, adminOnly, h.Categories.Update)
		categories.DELETE("/:id", auth, adminOnly, h.Categories.Delete)
	}

	posts := api.Group("/post")
	{
		posts.GET("", h.Posts.List)
		posts.GET("/:id", h.Posts.Get)
		posts.GET("/my-posts", auth, h.Posts.MyPosts)
		posts.POST("", auth, h.Posts.Create)
		posts.PATCH("/:id", auth, h.Posts.Update)
		posts.PATCH("/:id/like", auth, h.Posts.LikeUnlike)
		posts.DELETE("/:id", auth, h.Posts.Delete)
	}

	blogs := api.Group("/blog")
	{
		blogs.GET("", h.Blogs.List)
		blogs.GET("/:id", h.Blogs.Get)
		blogs.POST("", auth, adminOnly, h.Blogs.Create)
		blogs.PATCH("/:id", auth, adminOnly, h.Blogs.Update)
		blogs.DELETE("/:id", auth, adminOnly, h.Blogs.Delete)
	}

	comments := api.Group("/comment", auth)
	{
		comments.GET("", h.Comments.List)
		comments.GET("/:id", h.Comments.Get)
		comments.POST("", h.Comments.Create)
		comments.PATCH("/:id", h.Comments.Update)
		comments.DELETE("/:id", h.Comments.Delete)
	}

	bookings := api.Group("/booking", auth)
	{
		bookings.POST("", h.Bookings.Create)
		bookings.GET("", h.Bookings.List)
		bookings.GET("/:id", h.Bookings.Get)
		bookings.GET("/:id/ticket", h.Bookings.Ticket)
		bookings.PATCH("/:id", adminOnly, h.Bookings.Update)
		bookings.PATCH("/:id/status", adminOnly, h.Bookings.UpdateStatus)
		bookings.DELETE("/:id", adminOnly, h.Bookings.Delete)
	}

	paypal := api.Group("/paypal", auth)
	{
		paypal.POST("/create-payment", h.PayPal.CreatePayment)
		paypal.POST("/capture-payment", h.PayPal.CapturePayment)
	}

	files := api.Group("/files", auth)
	{
		files.POST("", h.Files.Upload)
		files.GET("", h.Files.List)
		files.GET("/:id", h.Files.Get)
		files.PATCH("/:id", h.Files.Update)
		files.DELETE("/:id", h.Files.Delete)
	}

	return r
}
