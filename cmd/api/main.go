package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/localesapp/locales-api/internal/application/auth"
	applocal "github.com/localesapp/locales-api/internal/application/local"
	"github.com/localesapp/locales-api/internal/application/verification"
	"github.com/localesapp/locales-api/internal/infrastructure/postgres"
	"github.com/localesapp/locales-api/internal/infrastructure/redisstore"
	infrasmtp "github.com/localesapp/locales-api/internal/infrastructure/smtp"
	"github.com/localesapp/locales-api/internal/infrastructure/storage"
	httpRouter "github.com/localesapp/locales-api/internal/interfaces/http"
	"github.com/localesapp/locales-api/pkg/config"
	"github.com/localesapp/locales-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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

	redisClient, err := redisstore.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	disk := storage.NewDisk(cfg.Upload)
	if err := disk.EnsureDirs(); err != nil {
		log.Fatal().Err(err).Msg("crear carpetas de subida")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	localRepo := postgres.NewLocalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := infrasmtp.NewMailer(cfg.SMTP)
	codeStore := redisstore.NewCodeStore(redisClient, time.Duration(cfg.Redis.CodeTTLMin)*time.Minute)

	authUC := auth.NewAuthUseCase(usuarioRepo, mailer, auth.ResetConfig{
		Secret:      cfg.JWT.Secret,
		ExpMinutes:  cfg.JWT.ExpMinutes,
		Issuer:      cfg.JWT.Issuer,
		FrontendURL: cfg.Frontend.BaseURL,
	})
	verificationUC := verification.NewVerificationUseCase(usuarioRepo, codeStore, mailer)
	localUC := applocal.NewLocalUseCase(localRepo, txRunner, disk)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// /registrarLocal puede traer hasta 10 imágenes más un contrato de 5 MB;
		// el límite por archivo lo aplica storage (MaxPDFSize), este es el tope
		// del cuerpo multipart completo.
		BodyLimit:    60 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace panic
	// si el JSON no existe, así que solo se monta cuando está presente.
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Locales API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
	}

	// Carpetas de archivos subidos, servidas con los mismos prefijos que
	// llevan las URLs devueltas por las subidas.
	app.Static(storage.AvatarPrefix, disk.AvatarDir())
	app.Static(storage.LocalPrefix, disk.LocalDir())
	app.Static(storage.PDFPrefix, disk.PDFDir())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		VerificationUC: verificationUC,
		LocalUC:        localUC,
		Disk:           disk,
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
