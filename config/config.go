package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port string

	CatalogBaseURL string
	CatalogTimeout time.Duration
	GeocoderURL    string
	DefaultAddress string
	DeliveryFee    decimal.Decimal
	ReceiptBaseURL string

	LoginRatePerSec float64
	LoginBurst      int

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost  string
	RedisPort  string
	SessionKey string

	KafkaBroker string
	OrdersTopic string
	OrdersGroup string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	timeout, err := time.ParseDuration(getEnv("CATALOG_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CATALOG_TIMEOUT: %w", err)
	}

	fee, err := decimal.NewFromString(getEnv("DELIVERY_FEE", "5.00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DELIVERY_FEE: %w", err)
	}
	if fee.IsNegative() {
		return Config{}, fmt.Errorf("DELIVERY_FEE must not be negative, got %s", fee)
	}

	ratePerSec, err := strconv.ParseFloat(getEnv("LOGIN_RATE_PER_SEC", "1"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOGIN_RATE_PER_SEC: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("LOGIN_BURST", "5"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOGIN_BURST: %w", err)
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://apifakedelivery.vercel.app"),
		CatalogTimeout:  timeout,
		GeocoderURL:     getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		DefaultAddress:  getEnv("DEFAULT_ADDRESS", "R. Rio Branco"),
		DeliveryFee:     fee,
		ReceiptBaseURL:  getEnv("RECEIPT_BASE_URL", "http://localhost:8080"),
		LoginRatePerSec: ratePerSec,
		LoginBurst:      burst,
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBName:          os.Getenv("DB_NAME"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		SessionKey:      getEnv("SESSION_KEY", "user"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		OrdersTopic:     getEnv("ORDERS_TOPIC", "orders"),
		OrdersGroup:     getEnv("ORDERS_GROUP", "order-recorder"),
	}, nil
}

func (c Config) PostgresEnabled() bool { return c.DBHost != "" }

func (c Config) RedisEnabled() bool { return c.RedisHost != "" }

func (c Config) KafkaEnabled() bool { return c.KafkaBroker != "" }

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(c Config) *sql.DB {
	db, err := sql.Open("postgres", c.PostgresDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(c Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: c.RedisHost + ":" + c.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(c Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{c.KafkaBroker},
		Topic:   c.OrdersTopic,
		GroupID: c.OrdersGroup,
	})
}

func NewKafkaWriter(c Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(c.KafkaBroker),
		Topic:    c.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
