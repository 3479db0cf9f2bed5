package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"stocksentry/configs"
	httpAdapter "stocksentry/internal/adapters/input/http"
	"stocksentry/internal/adapters/output/alphavantage"
	"stocksentry/internal/adapters/output/memory"
	"stocksentry/internal/adapters/output/openai"
	"stocksentry/internal/adapters/output/postgres"
	"stocksentry/internal/application"
	"stocksentry/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

const defaultSessionTTL = 30 * time.Minute

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	sessionTTL := time.Duration(configs.GetViper().Aggregation.SessionTTLMin) * time.Minute
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	sweepInterval := time.Duration(configs.GetViper().Aggregation.SweepIntervalMin) * time.Minute
	if sweepInterval <= 0 {
		sweepInterval = 5 * time.Minute
	}

	// Wire up the hexagonal architecture layers
	// Output adapters
	sessionStore := memory.NewMemorySessionStore(sessionTTL)
	intentExtractor := openai.NewIntentExtractorAdapter(configs.GetViper().OpenAI)
	sentimentClient := alphavantage.NewSentimentClientAdapter(configs.GetViper().AlphaVantage)
	notificationRepo := postgres.NewNotificationRepository(dbConGorm.Postgres)

	// Application service (use case)
	srv := application.NewWebhookService(
		sessionStore,
		intentExtractor,
		sentimentClient,
		notificationRepo,
		time.Duration(configs.GetViper().Aggregation.IntervalSeconds)*time.Second,
		time.Duration(configs.GetViper().Aggregation.CooldownSeconds)*time.Second,
	)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(dbConGorm.Postgres)
	webhookHdl := httpAdapter.NewWebhookHandler(
		srv,
		configs.GetViper().OpenAI.APIKey,
		configs.GetViper().AlphaVantage.APIKey,
	)

	// Background reaper for idle sessions
	sweepStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := sessionStore.Sweep(); removed > 0 {
					logrus.Infof("Session reaper removed %d idle session(s)", removed)
				}
			case <-sweepStop:
				return
			}
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			close(sweepStop)
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)
	app.Get("/", hdl.Index)
	app.Post("/auth", webhookHdl.Auth)

	webhook := app.Group("/webhook")
	{
		webhook.Post("/", webhookHdl.HandleWebhook)
		webhook.Get("/setup-status", webhookHdl.SetupStatus)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
