package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/wsbrasil/nexus-api/internal/application/auth"
	"github.com/wsbrasil/nexus-api/internal/application/usecase"
	infraai "github.com/wsbrasil/nexus-api/internal/infrastructure/ai"
	infrapdf "github.com/wsbrasil/nexus-api/internal/infrastructure/pdf"
	"github.com/wsbrasil/nexus-api/internal/infrastructure/postgres"
	httpRouter "github.com/wsbrasil/nexus-api/internal/interfaces/http"
	"github.com/wsbrasil/nexus-api/pkg/config"
	"github.com/wsbrasil/nexus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	apptRepo := postgres.NewAppointmentRepository(pool)

	geminiSvc := infraai.NewGeminiService(cfg.AI, log)
	contractPDF := infrapdf.NewMarotoContractRenderer()

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, cfg.Master, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accessUC := usecase.NewAccessUseCase(orgRepo)
	orgUC := usecase.NewOrganizationUseCase(orgRepo, userRepo, log)
	userUC := usecase.NewUserUseCase(userRepo, orgRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo, orgRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	financeUC := usecase.NewFinanceUseCase(txRepo, geminiSvc, log)
	appointmentUC := usecase.NewAppointmentUseCase(apptRepo, geminiSvc, log)
	aiUC := usecase.NewAIUseCase(geminiSvc, contractPDF, leadRepo, employeeRepo, productRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AccessUC:      accessUC,
		OrgUC:         orgUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		LeadUC:        leadUC,
		EmployeeUC:    employeeUC,
		FinanceUC:     financeUC,
		AppointmentUC: appointmentUC,
		AIUC:          aiUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
