package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/pixelcraft/agency-backoffice/internal/api/http"
	"github.com/pixelcraft/agency-backoffice/internal/api/http/handlers"
	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/cache"
	"github.com/pixelcraft/agency-backoffice/internal/config"
	"github.com/pixelcraft/agency-backoffice/internal/events"
	"github.com/pixelcraft/agency-backoffice/internal/observability"
	"github.com/pixelcraft/agency-backoffice/internal/persistence"
	"github.com/pixelcraft/agency-backoffice/internal/repository"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
	"github.com/pixelcraft/agency-backoffice/internal/service"
	"github.com/pixelcraft/agency-backoffice/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	roleRepo := repository.NewRoleRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	quoteRepo := repository.NewQuoteRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	contentRepo := repository.NewContentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	contentCache := cache.NewContentCache(redis.ClientHandle(), cfg.Content.CacheTTL(), logger)

	authService := service.NewAuthService(*cfg, accountRepo, roleRepo)
	listingService := service.NewListingService(service.ListingDependencies{
		TicketRepo:  ticketRepo,
		QuoteRepo:   quoteRepo,
		InvoiceRepo: invoiceRepo,
		BookingRepo: bookingRepo,
		ProjectRepo: projectRepo,
		AccountRepo: accountRepo,
		RoleRepo:    roleRepo,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		TicketRepo:  ticketRepo,
		ProjectRepo: projectRepo,
		QuoteRepo:   quoteRepo,
		AccountRepo: accountRepo,
	})
	ticketService := service.NewTicketService(ticketRepo, roleRepo, dispatcher)
	quoteService := service.NewQuoteService(quoteRepo, projectRepo, dispatcher, logger)
	invoiceService := service.NewInvoiceService(invoiceRepo, dispatcher)
	bookingService := service.NewBookingService(bookingRepo, dispatcher)
	contentService := service.NewContentService(contentRepo, contentCache, dispatcher)

	sessionResolver := auth.NewSessionResolver(authService.TokenManager(), roleRepo, logger)
	authMiddleware := auth.NewMiddleware(sessionResolver)
	scopeResolver := scope.NewResolver(ticketRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService, scopeResolver),
		Tickets:        handlers.NewTicketsHandler(listingService, ticketService, scopeResolver),
		Quotes:         handlers.NewQuotesHandler(listingService, quoteService, scopeResolver),
		Invoices:       handlers.NewInvoicesHandler(listingService, invoiceService, scopeResolver),
		Bookings:       handlers.NewBookingsHandler(listingService, bookingService, scopeResolver),
		Clients:        handlers.NewClientsHandler(listingService, scopeResolver),
		Projects:       handlers.NewProjectsHandler(listingService, scopeResolver),
		Content:        handlers.NewContentHandler(contentService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
