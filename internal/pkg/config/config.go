package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, gateway credentials)
// - default: Values common across all environments (shipping fee, timeouts, lookup tuning)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Store   StoreConfig
	PayPal  PayPalConfig
	Mercado MercadoPagoConfig
	Lookup  LookupConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	Password       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	MigrationsPath string `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// StoreConfig carries storefront pricing knobs. ShippingFee is a decimal
// string so the exact amount survives env parsing.
type StoreConfig struct {
	ShippingFee   string        `envconfig:"STORE_SHIPPING_FEE" default:"4.99"`
	Currency      string        `envconfig:"STORE_CURRENCY" default:"MXN"`
	SnapshotTTL   time.Duration `envconfig:"STORE_SNAPSHOT_TTL" default:"1h"`
	SessionCookie string        `envconfig:"STORE_SESSION_COOKIE" default:"storefront_session"`
}

type PayPalConfig struct {
	BaseURL      string        `envconfig:"PAYPAL_BASE_URL" default:"https://api-m.sandbox.paypal.com"`
	ClientID     string        `envconfig:"PAYPAL_CLIENT_ID" required:"true"`
	ClientSecret string        `envconfig:"PAYPAL_CLIENT_SECRET" required:"true"`
	Timeout      time.Duration `envconfig:"PAYPAL_TIMEOUT" default:"10s"`
}

type MercadoPagoConfig struct {
	BaseURL     string        `envconfig:"MERCADOPAGO_BASE_URL" default:"https://api.mercadopago.com"`
	AccessToken string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN" required:"true"`
	Timeout     time.Duration `envconfig:"MERCADOPAGO_TIMEOUT" default:"10s"`
}

type LookupConfig struct {
	BaseURL         string        `envconfig:"LOOKUP_BASE_URL" default:"https://api.zippopotam.us"`
	Timeout         time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"5s"`
	MinPostalLength int           `envconfig:"LOOKUP_MIN_POSTAL_LENGTH" default:"3"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Store: StoreConfig{
			ShippingFee:   "4.99",
			Currency:      "MXN",
			SnapshotTTL:   time.Hour,
			SessionCookie: "storefront_session",
		},
	}
}
