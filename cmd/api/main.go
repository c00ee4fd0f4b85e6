package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appaccess "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/access"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/auth"
	appledger "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/ledger"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/sales"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/subscription"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/usecase"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/vallrack/DigitalCenterTwo-sub001/internal/interfaces/http"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/config"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	settingsRepo := postgres.NewAccountingSettingsRepository(pool)
	ledgerTx := postgres.NewTxRunner(pool)
	saleTx := postgres.NewSaleTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accessUC := appaccess.NewAccessUseCase(userRepo, orgRepo)
	postingUC := appledger.NewPostingUseCase(settingsRepo, ledgerTx, log)
	createSaleUC := sales.NewCreateSaleUseCase(saleTx, productRepo, saleRepo, postingUC, log)
	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo, settingsRepo)
	journalUC := usecase.NewJournalUseCase(journalRepo, postingUC)
	productUC := usecase.NewProductUseCase(productRepo)

	// Barrido diario de suscripciones vencidas (Active/OnTrial → Expired)
	sweeper := subscription.NewSweeper(orgRepo, log)
	if cfg.Sweep.Enabled {
		if err := sweeper.Start(cfg.Sweep.Cron); err != nil {
			log.Fatal().Err(err).Msg("programar barrido de suscripciones")
		}
		defer sweeper.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Digital Center API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AccessUC:       accessUC,
		OrganizationUC: orgUC,
		UserUC:         userUC,
		AccountUC:      accountUC,
		JournalUC:      journalUC,
		ProductUC:      productUC,
		CreateSale:     createSaleUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
