// Package http wires the HTTP transport: router, middleware, and handlers.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/resumelift/resumelift/internal/application/auth/usecases"
	billingusecases "github.com/resumelift/resumelift/internal/application/billing/usecases"
	convusecases "github.com/resumelift/resumelift/internal/application/conversion/usecases"
	subusecases "github.com/resumelift/resumelift/internal/application/subscription/usecases"
	"github.com/resumelift/resumelift/internal/domain/subscription"
	"github.com/resumelift/resumelift/internal/infrastructure/ai"
	"github.com/resumelift/resumelift/internal/infrastructure/auth"
	infrabilling "github.com/resumelift/resumelift/internal/infrastructure/billing"
	"github.com/resumelift/resumelift/internal/infrastructure/cache"
	"github.com/resumelift/resumelift/internal/infrastructure/config"
	"github.com/resumelift/resumelift/internal/infrastructure/email"
	"github.com/resumelift/resumelift/internal/infrastructure/repository"
	"github.com/resumelift/resumelift/internal/interfaces/http/handlers"
	"github.com/resumelift/resumelift/internal/interfaces/http/middleware"
	"github.com/resumelift/resumelift/internal/shared/authorization"
	"github.com/resumelift/resumelift/internal/shared/db"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/services/markdown"
)

type Router struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	cfg         *config.Config
	logger      logger.Interface
}

// NewRouter builds the router. redisClient may be nil, in which case the
// entitlement cache degrades to a no-op and every read hits the database.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger logger.Interface) *Router {
	return &Router{
		engine:      gin.New(),
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
		logger:      logger,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes constructs the full dependency graph and registers all routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	// Repositories
	userRepo := repository.NewUserRepository(r.db, r.logger)
	subscriptionRepo := repository.NewSubscriptionRepository(r.db, r.logger)
	paymentEventRepo := repository.NewPaymentEventRepository(r.db, r.logger)
	conversionRepo := repository.NewConversionRepository(r.db, r.logger)

	// Shared services
	catalog := subscription.DefaultCatalog()
	markdownSvc := markdown.NewMarkdownService()
	jwtService := auth.NewJWTService(
		r.cfg.Auth.JWT.Secret,
		r.cfg.Auth.JWT.AccessExpMinutes,
		r.cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(r.cfg.Auth.Password.BcryptCost)
	notifier := email.NewSMTPNotifier(&r.cfg.Email, r.logger)
	verifier := infrabilling.NewHMACWebhookVerifier(r.cfg.Billing.WebhookSecret)
	rewriter := ai.NewRewriteClient(&r.cfg.AI, r.logger)

	var entitlementCache subusecases.EntitlementCache
	if r.redisClient != nil {
		entitlementCache = cache.NewRedisEntitlementCache(r.redisClient, r.logger)
	} else {
		r.logger.Warnw("redis unavailable, entitlement cache disabled")
		entitlementCache = cache.NewNoopEntitlementCache()
	}

	// Use cases
	registerUC := authusecases.NewRegisterUseCase(userRepo, hasher, r.logger)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, r.logger)

	listPlansUC := subusecases.NewListPlansUseCase(catalog)
	subscribeUC := subusecases.NewSubscribeUseCase(userRepo, subscriptionRepo, catalog, entitlementCache, notifier, r.logger)
	changePlanUC := subusecases.NewChangePlanUseCase(userRepo, subscriptionRepo, catalog, entitlementCache, r.logger)
	cancelUC := subusecases.NewCancelSubscriptionUseCase(userRepo, subscriptionRepo, catalog, entitlementCache, notifier, r.logger)
	getEntitlementUC := subusecases.NewGetEntitlementUseCase(userRepo, subscriptionRepo, catalog, entitlementCache, r.logger)
	consumeQuotaUC := subusecases.NewConsumeQuotaUseCase(userRepo, subscriptionRepo, catalog, entitlementCache, r.logger)

	txManager := db.NewTransactionManager(r.db)
	handleEventUC := billingusecases.NewHandlePaymentEventUseCase(
		verifier, txManager, paymentEventRepo, userRepo, subscriptionRepo, catalog, entitlementCache, notifier, r.logger)

	createConversionUC := convusecases.NewCreateConversionUseCase(
		consumeQuotaUC, subscriptionRepo, rewriter, conversionRepo, markdownSvc, r.logger)
	getConversionUC := convusecases.NewGetConversionUseCase(conversionRepo, markdownSvc, r.logger)
	listConversionsUC := convusecases.NewListConversionsUseCase(conversionRepo, r.logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, jwtService, r.cfg.Auth.JWT, r.cfg.Auth.Cookie, r.logger)
	planHandler := handlers.NewPlanHandler(listPlansUC)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscribeUC, changePlanUC, cancelUC, getEntitlementUC, r.logger)
	conversionHandler := handlers.NewConversionHandler(createConversionUC, getConversionUC, listConversionsUC, r.logger)
	webhookHandler := handlers.NewWebhookHandler(handleEventUC, r.logger)
	adminHandler := handlers.NewAdminHandler(getEntitlementUC, r.logger)

	authMW := middleware.NewAuthMiddleware(jwtService, r.logger)

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
		}

		v1.GET("/plans", planHandler.ListPlans)

		// Payment provider callbacks authenticate via HMAC signature, not JWT.
		v1.POST("/webhooks/payment", webhookHandler.HandlePaymentEvent)

		authed := v1.Group("")
		authed.Use(authMW.RequireAuth())
		{
			authed.GET("/entitlement", subscriptionHandler.GetEntitlement)

			sub := authed.Group("/subscription")
			{
				sub.POST("", subscriptionHandler.Subscribe)
				sub.POST("/upgrade", subscriptionHandler.Upgrade)
				sub.POST("/downgrade", subscriptionHandler.Downgrade)
				sub.DELETE("", subscriptionHandler.Cancel)
			}

			conv := authed.Group("/conversions")
			{
				conv.POST("", conversionHandler.CreateConversion)
				conv.GET("", conversionHandler.ListConversions)
				conv.GET("/:sid", conversionHandler.GetConversion)
			}

			admin := authed.Group("/admin", authorization.RequireAdmin())
			{
				admin.GET("/users/:sid/entitlement", adminHandler.GetUserEntitlement)
			}
		}
	}
}
