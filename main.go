package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/resumeparser/internal/database"
	"github.com/muhammadolammi/resumeparser/internal/gemini"
	"github.com/muhammadolammi/resumeparser/internal/logger"
	"github.com/muhammadolammi/resumeparser/internal/metrics"
	"github.com/muhammadolammi/resumeparser/internal/pipeline"
	"github.com/muhammadolammi/resumeparser/internal/populate"
)

func requireEnv(name string) string {
	v := os.Getenv(name)
	if v == "" {
		logger.Fatal().Msgf("empty %s in environment", name)
	}
	return v
}

func geminiKey() string {
	if key := os.Getenv("GEMINI_KEY"); key != "" {
		return key
	}
	return os.Getenv("GEMINI_API_KEY")
}

func main() {
	_ = godotenv.Load()

	workers := pflag.Int("workers", 3, "number of consumer workers")
	migrate := pflag.Bool("migrate", false, "apply database migrations before consuming")
	checkKey := pflag.Bool("check-key", false, "check the Gemini API key and exit")
	pflag.Parse()

	logger.Init(logger.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var models []string
	if raw := os.Getenv("GEMINI_MODELS"); raw != "" {
		models = strings.Split(raw, ",")
	}
	apiKey := geminiKey()
	if apiKey == "" {
		logger.Warn().Msg("GEMINI_KEY or GEMINI_API_KEY not set, structured extraction will fail")
	}
	geminiClient := gemini.NewClient(apiKey, gemini.WithModels(models...))

	if *checkKey {
		if err := geminiClient.CheckAPIKey(ctx); err != nil {
			logger.Fatal().Err(err).Msg("gemini api key check failed")
		}
		return
	}

	dbUrl := requireEnv("DB_URL")
	rabbitmqUrl := requireEnv("RABBITMQ_URL")

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening db")
	}
	defer db.Close()

	if *migrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("error migrating db")
		}
		logger.Info().Msg("database migrated")
	}

	store := database.NewStore(db)

	r2Config := R2Config{
		AccountID: requireEnv("R2_ACCOUNT_ID"),
		AccessKey: requireEnv("R2_ACCESS_KEY"),
		SecretKey: requireEnv("R2_SECRET_KEY"),
		Bucket:    requireEnv("R2_BUCKET"),
	}
	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating aws config")
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		logger.Fatal().Err(err).Msg("error connecting to RabbitMQ")
	}
	defer conn.Close()
	if err := declareUpdatesExchange(conn); err != nil {
		logger.Fatal().Err(err).Msg("error declaring updates exchange")
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr)
	}

	workerConfig := WorkerConfig{
		DB:          store,
		R2:          &r2Config,
		AwsConfig:   &awsConfig,
		RABBITMQUrl: rabbitmqUrl,
		RabbitConn:  conn,
		Processor:   pipeline.NewProcessor(geminiClient, populate.New(store)),
	}

	logger.Info().Int("workers", *workers).Msg("starting consumer pool")
	workerConfig.StartConsumerWorkerPool(ctx, *workers)
}

func declareUpdatesExchange(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.ExchangeDeclare(
		updatesExchange, // name
		"topic",         // kind
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("metrics server stopped")
	}
}
