package main

import (
	"context"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/internal/config"
	apphttp "eventhub/internal/http"
	"eventhub/internal/http/handlers"
	"eventhub/internal/mail"
	"eventhub/internal/payments"
	"eventhub/internal/repositories"
	"eventhub/internal/services"
	"eventhub/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := config.ConnectDB(env)
	defer config.CloseDB()

	var store storage.Storage
	if env.SpaceEndpoint != "" {
		spaces, err := storage.NewSpaces(env.SpaceEndpoint, env.SpaceAccessKey, env.SpaceSecretKey, env.SpaceBucket)
		if err != nil {
			log.Fatalf("failed to init object storage: %v", err)
		}
		store = spaces
	} else {
		log.Println("object storage is not configured, file uploads disabled")
	}

	userRepo := repositories.UserRepo{DB: db}
	eventRepo := repositories.EventRepo{DB: db}
	categoryRepo := repositories.CategoryRepo{DB: db}
	bookingRepo := repositories.BookingRepo{DB: db}
	postRepo := repositories.PostRepo{DB: db}
	blogRepo := repositories.BlogRepo{DB: db}
	commentRepo := repositories.CommentRepo{DB: db}
	fileRepo := repositories.FileRepo{DB: db}

	mailer := mail.Mailer{
		Host: env.SMTPHost,
		Port: env.SMTPPort,
		User: env.SMTPUser,
		Pass: env.SMTPPass,
		From: env.MailFrom,
	}

	paypal := payments.PayPalClient{
		BaseURL:   env.PayPalBaseURL,
		ClientID:  env.PayPalClientID,
		Secret:    env.PayPalSecret,
		ReturnURL: env.PayPalReturnURL,
		CancelURL: env.PayPalCancelURL,
	}

	authService := services.AuthService{
		UserRepo:    userRepo,
		Mail:        mailer,
		JWTSecret:   []byte(env.JWTSecret),
		JWTTTL:      time.Duration(env.JWTExpiresHours) * time.Hour,
		ResetSecret: []byte(env.ResetPassSecret),
		ResetTTL:    time.Duration(env.ResetPassExpiresMn) * time.Minute,
		ResetLink:   env.ResetPassLink,
	}

	bookingService := services.BookingService{
		BookingRepo: bookingRepo,
		EventRepo:   eventRepo,
		Card:        payments.NewStripeGateway(env.StripeSecretKey),
		DB:          db,
	}

	h := apphttp.Handlers{
		Auth:  handlers.AuthHandler{Auth: authService},
		Users: handlers.UserHandler{Users: services.UserService{UserRepo: userRepo, Storage: store}},
		Events: handlers.EventHandler{Events: services.EventService{
			EventRepo:    eventRepo,
			CategoryRepo: categoryRepo,
			Storage:      store,
		}},
		Categories: handlers.CategoryHandler{Categories: services.CategoryService{CategoryRepo: categoryRepo}},
		Posts:      handlers.PostHandler{Posts: services.PostService{PostRepo: postRepo}},
		Blogs:      handlers.BlogHandler{Blogs: services.BlogService{BlogRepo: blogRepo}},
		Comments:   handlers.CommentHandler{Comments: services.CommentService{CommentRepo: commentRepo}},
		Bookings: handlers.BookingHandler{
			Bookings: bookingService,
			Tickets: services.TicketService{
				BookingRepo: bookingRepo,
				EventRepo:   eventRepo,
				UserRepo:    userRepo,
			},
		},
		PayPal: handlers.PayPalHandler{PayPal: paypal},
		Files:  handlers.FileHandler{Files: services.FileService{FileRepo: fileRepo, Storage: store}},
	}

	r := apphttp.NewRouter(h, []byte(env.JWTSecret))

	srv := &nethttp.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
