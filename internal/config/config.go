package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultSessionSecret = "movie-explorer-secret-change-in-production"

// Config 应用配置
type Config struct {
	Env           string        `validate:"oneof=development production test"`
	Port          string        `validate:"required,numeric"`
	OMDbAPIKey    string        `validate:"required"`
	OMDbBaseURL   string        `validate:"required,url"`
	StorageDriver string        `validate:"oneof=postgres memory"`
	DatabaseURL   string        `validate:"required_if=StorageDriver postgres"`
	FavoritesKey  string        `validate:"required"`
	SessionSecret string        `validate:"required,min=16"`
	FlowCacheSize int           `validate:"min=1"`
	FlowTTL       time.Duration `validate:"gt=0"`
	InitialQuery  string
}

// Load 加载配置
func Load() *Config {
	cacheSize, _ := strconv.Atoi(getEnv("FLOW_CACHE_SIZE", "1000"))
	ttlMinutes, _ := strconv.Atoi(getEnv("FLOW_TTL_MINUTES", "60"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "movie_explorer")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := getEnv("DATABASE_URL", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL))

	env := getEnv("APP_ENV", "development")
	sessionSecret := getEnv("SESSION_SECRET", defaultSessionSecret)
	if env == "production" && sessionSecret == defaultSessionSecret {
		log.Println("【严重警告】生产环境正在使用默认 Session 密钥！请立即设置 SESSION_SECRET 环境变量。")
	}

	return &Config{
		Env:           env,
		Port:          getEnv("PORT", "5005"),
		OMDbAPIKey:    strings.TrimSpace(os.Getenv("OMDB_API_KEY")),
		OMDbBaseURL:   getEnv("OMDB_BASE_URL", "https://www.omdbapi.com/"),
		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		DatabaseURL:   dbURL,
		FavoritesKey:  getEnv("FAVORITES_KEY", "movieExplorerFavorites"),
		SessionSecret: sessionSecret,
		FlowCacheSize: cacheSize,
		FlowTTL:       time.Duration(ttlMinutes) * time.Minute,
		InitialQuery:  strings.TrimSpace(os.Getenv("INITIAL_QUERY")),
	}
}

// Validate 校验配置，错误信息使用环境变量名
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("配置无效: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := envName(fe.StructField())
	switch fe.Tag() {
	case "required", "required_if":
		return name + " 未设置"
	case "oneof":
		return fmt.Sprintf("%s 必须是 [%s] 之一", name, fe.Param())
	case "min", "gt":
		return fmt.Sprintf("%s 取值过小", name)
	default:
		return fmt.Sprintf("%s 格式不正确 (%s)", name, fe.Tag())
	}
}

var envNames = map[string]string{
	"Env":           "APP_ENV",
	"Port":          "PORT",
	"OMDbAPIKey":    "OMDB_API_KEY",
	"OMDbBaseURL":   "OMDB_BASE_URL",
	"StorageDriver": "STORAGE_DRIVER",
	"DatabaseURL":   "DATABASE_URL",
	"FavoritesKey":  "FAVORITES_KEY",
	"SessionSecret": "SESSION_SECRET",
	"FlowCacheSize": "FLOW_CACHE_SIZE",
	"FlowTTL":       "FLOW_TTL_MINUTES",
}

func envName(field string) string {
	if name, ok := envNames[field]; ok {
		return name
	}
	return field
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
