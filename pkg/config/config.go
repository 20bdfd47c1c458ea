package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Ticket TicketConfig
	Assets AssetsConfig
	Batch  BatchConfig
	HTTP   HTTPConfig
	JWT    JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// TicketConfig perfil y backend de impresión.
// MinHeight/MaxHeight en 0 conservan los límites del perfil.
type TicketConfig struct {
	Profile   string
	Backend   string // fpdf | vector
	MinHeight float64
	MaxHeight float64
}

// AssetsConfig ubicación de las imágenes (logo e imagen de pie).
type AssetsConfig struct {
	Dir           string
	Logo          string
	FooterDefault string
}

// BatchConfig procesamiento por lotes.
type BatchConfig struct {
	InputDir  string
	OutputDir string
	Workers   int
	Timeout   time.Duration
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitKB int
	DocsFile    string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimit tamaño máximo del cuerpo en bytes.
func (c HTTPConfig) BodyLimit() int {
	return c.BodyLimitKB * 1024
}

// JWTConfig configuración de JWT. Secret vacío deja la API abierta.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si la API exige Bearer Token.
func (c JWTConfig) Enabled() bool { return c.Secret != "" }

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, TICKET_PROFILE, BATCH_WORKERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ticketera"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Ticket: TicketConfig{
			Profile:   getString(v, "TICKET_PROFILE", "ticket80"),
			Backend:   getString(v, "TICKET_BACKEND", "fpdf"),
			MinHeight: getFloat(v, "TICKET_MIN_HEIGHT", 0),
			MaxHeight: getFloat(v, "TICKET_MAX_HEIGHT", 0),
		},
		Assets: AssetsConfig{
			Dir:           getString(v, "ASSETS_DIR", "images"),
			Logo:          getString(v, "ASSETS_LOGO", "logo.png"),
			FooterDefault: getString(v, "ASSETS_FOOTER_DEFAULT", "qr_default.png"),
		},
		Batch: BatchConfig{
			InputDir:  getString(v, "BATCH_INPUT_DIR", "input"),
			OutputDir: getString(v, "BATCH_OUTPUT_DIR", "output"),
			Workers:   getInt(v, "BATCH_WORKERS", 4),
			Timeout:   getSeconds(v, "BATCH_TIMEOUT_SECONDS", 30),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitKB: getInt(v, "HTTP_BODY_LIMIT_KB", 2048),
			DocsFile:    getString(v, "HTTP_DOCS_FILE", "./docs/swagger.json"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ticketera"),
		},
	}

	if cfg.Ticket.MinHeight < 0 || cfg.Ticket.MaxHeight < 0 {
		return nil, fmt.Errorf("config: TICKET_MIN_HEIGHT/TICKET_MAX_HEIGHT no pueden ser negativos")
	}
	if cfg.Batch.Workers < 0 {
		return nil, fmt.Errorf("config: BATCH_WORKERS=%d inválido", cfg.Batch.Workers)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getSeconds(v *viper.Viper, key string, def int) time.Duration {
	return time.Duration(getInt(v, key, def)) * time.Second
}
