package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Storefront API
//	@version					1.0
//	@description				Storefront and back-office API: catalog, carts, checkout, payments and administration.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()
	docs.SwaggerInfo.Title = "Storefront API (" + cfg.Env + ")"

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		slog.Error("Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := repository.Open(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := repository.New(db)

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	productCache := cache.NewRedisCache(redisClient, cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	notificationService := service.NewNotificationService(repos.Notification, emailService)
	userService := service.NewUserService(repos.User, rateLimiter, jwtKey, tokenTTL)
	addressService := service.NewAddressService(repos.Address)
	categoryService := service.NewCategoryService(repos.Category, repos.Product, productCache)
	productService := service.NewProductService(repos.Product, repos.Category, productCache)
	slideService := service.NewSlideService(repos.Slide, productCache)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	orderService := service.NewOrderService(repos, productCache, notificationService, cfg.Checkout)
	paymentService := service.NewPaymentService(repos.Payment, repos.Order, stripeClient, cfg.Checkout.Currency)

	userHandler := handlers.NewUserHandler(userService)
	addressHandler := handlers.NewAddressHandler(addressService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	slideHandler := handlers.NewSlideHandler(slideService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	auth := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, stripeClient)
	if err != nil {
		slog.Error("Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := http.NewServeMux()

	// Storefront
	router.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	router.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	router.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	router.HandleFunc("GET /api/v1/slides", slideHandler.ListActiveSlides())

	// Accounts
	router.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	router.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	router.HandleFunc("GET /api/v1/users/profile", auth.Authenticate(userHandler.Profile()))
	router.HandleFunc("POST /api/v1/addresses", auth.Authenticate(addressHandler.CreateAddress()))
	router.HandleFunc("GET /api/v1/addresses", auth.Authenticate(addressHandler.ListAddresses()))
	router.HandleFunc("DELETE /api/v1/addresses/{id}", auth.Authenticate(addressHandler.DeleteAddress()))

	// Cart
	router.HandleFunc("GET /api/v1/carts", auth.Authenticate(cartHandler.GetCart()))
	router.HandleFunc("DELETE /api/v1/carts", auth.Authenticate(cartHandler.ClearCart()))
	router.HandleFunc("POST /api/v1/carts/items", auth.Authenticate(cartHandler.AddItem()))
	router.HandleFunc("PUT /api/v1/carts/items", auth.Authenticate(cartHandler.UpdateQuantity()))
	router.HandleFunc("DELETE /api/v1/carts/items/{productId}", auth.Authenticate(cartHandler.RemoveItem()))

	// Checkout
	router.HandleFunc("POST /api/v1/orders", auth.Authenticate(orderHandler.CreateOrder()))
	router.HandleFunc("GET /api/v1/orders", auth.Authenticate(orderHandler.ListOrders()))
	router.HandleFunc("GET /api/v1/orders/{id}", auth.Authenticate(orderHandler.GetOrder()))
	router.HandleFunc("POST /api/v1/orders/{id}/cancel", auth.Authenticate(orderHandler.CancelOrder()))
	router.HandleFunc("POST /api/v1/payments", auth.Authenticate(paymentHandler.CreatePayment()))
	router.HandleFunc("GET /api/v1/payments/{id}", auth.Authenticate(paymentHandler.GetPayment()))
	router.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	// Back-office
	router.HandleFunc("GET /api/v1/admin/products", auth.Admin(productHandler.ListAllProducts()))
	router.HandleFunc("POST /api/v1/admin/products", auth.Admin(productHandler.CreateProduct()))
	router.HandleFunc("PUT /api/v1/admin/products/{id}", auth.Admin(productHandler.UpdateProduct()))
	router.HandleFunc("DELETE /api/v1/admin/products/{id}", auth.Admin(productHandler.DeleteProduct()))
	router.HandleFunc("POST /api/v1/admin/categories", auth.Admin(categoryHandler.CreateCategory()))
	router.HandleFunc("PUT /api/v1/admin/categories/{id}", auth.Admin(categoryHandler.UpdateCategory()))
	router.HandleFunc("DELETE /api/v1/admin/categories/{id}", auth.Admin(categoryHandler.DeleteCategory()))
	router.HandleFunc("GET /api/v1/admin/orders", auth.Admin(orderHandler.ListAllOrders()))
	router.HandleFunc("PATCH /api/v1/admin/orders/{id}/status", auth.Admin(orderHandler.UpdateOrderStatus()))
	router.HandleFunc("POST /api/v1/admin/payments/{id}/refund", auth.Admin(paymentHandler.RefundPayment()))
	router.HandleFunc("GET /api/v1/admin/customers", auth.Admin(userHandler.ListCustomers()))
	router.HandleFunc("GET /api/v1/admin/customers/{id}", auth.Admin(userHandler.GetCustomer()))
	router.HandleFunc("GET /api/v1/admin/slides", auth.Admin(slideHandler.ListSlides()))
	router.HandleFunc("POST /api/v1/admin/slides", auth.Admin(slideHandler.CreateSlide()))
	router.HandleFunc("PUT /api/v1/admin/slides/{id}", auth.Admin(slideHandler.UpdateSlide()))
	router.HandleFunc("DELETE /api/v1/admin/slides/{id}", auth.Admin(slideHandler.DeleteSlide()))
	router.HandleFunc("GET /api/v1/admin/notifications", auth.Admin(notificationHandler.ListNotifications()))

	// Operations
	router.Handle("GET /health", healthHandler.Handler())
	router.Handle("GET /metrics", metrics.Handler())
	router.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var handler http.Handler = router
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Telemetry.ServiceName)

	server := http.Server{
		Addr:              cfg.HTTPServer.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTPServer.ReadHeaderTimeout,
	}

	go func() {
		slog.Info("Server is starting", slog.String("address", cfg.HTTPServer.Addr), slog.String("env", cfg.Env))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("Shutdown signal received, stopping the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Failed to flush traces", slog.String("error", err.Error()))
	}
}
