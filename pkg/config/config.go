package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Sheet SheetConfig
	JWT   JWTConfig
	Admin AdminConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria fija para las fechas de transacciones (ej. America/Bogota)
}

// Location resuelve la zona horaria configurada. Si es inválida cae a UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetConfig configuración del libro de cálculo que actúa como almacenamiento.
type SheetConfig struct {
	Path string // ruta al archivo .xlsx; se crea con las tablas vacías si no existe
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del rol administrador.
// PassHash es un hash bcrypt; si solo se define ADMIN_PASS (texto plano, útil en
// desarrollo) se hashea al cargar la configuración.
type AdminConfig struct {
	User     string
	PassHash string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SHEET_PATH, JWT_SECRET, etc.
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
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "chatarreria-api"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Bogota"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Sheet: SheetConfig{
			Path: getString(v, "SHEET_PATH", "./data/chatarreria.xlsx"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "chatarreria-api"),
		},
		Admin: AdminConfig{
			User:     getString(v, "ADMIN_USER", "admin"),
			PassHash: getString(v, "ADMIN_PASS_HASH", ""),
		},
	}

	// Fallback de desarrollo: ADMIN_PASS en texto plano se hashea aquí para que
	// el resto de la aplicación solo conozca el hash.
	if cfg.Admin.PassHash == "" {
		if plain := getString(v, "ADMIN_PASS", ""); plain != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("config: hashear ADMIN_PASS: %w", err)
			}
			cfg.Admin.PassHash = string(hash)
		}
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return nil, fmt.Errorf("config: APP_TIMEZONE inválida %q: %w", cfg.App.Timezone, err)
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
