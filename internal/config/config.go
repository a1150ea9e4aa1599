package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Tiktok           Tiktok           `mapstructure:",squash"`
	Storage          Storage          `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	TiktokImportSync TiktokImportSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Tiktok struct {
	BaseURL     string        `mapstructure:"tiktok_base_url"`
	AppID       string        `mapstructure:"tiktok_app_id"`
	AppSecret   string        `mapstructure:"tiktok_app_secret"`
	AccessToken string        `mapstructure:"tiktok_access_token"`
	Timeout     time.Duration `mapstructure:"tiktok_timeout"`
	RetryCount  int           `mapstructure:"tiktok_retry_count"`
	PageSize    int           `mapstructure:"tiktok_page_size"`
	UploadDir   string        `mapstructure:"tiktok_upload_dir"` // vazio desativa UPLOAD_BY_FILE
}

type Storage struct {
	S3Path         string `mapstructure:"storage_s3_path"`
	Region         string `mapstructure:"storage_region"`
	Endpoint       string `mapstructure:"storage_endpoint"`
	ForcePathStyle bool   `mapstructure:"storage_force_path_style"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type TiktokImportSync struct {
	CronSchedule string `mapstructure:"tiktok_import_sync_cron"`
	LookbackDays int    `mapstructure:"tiktok_import_sync_lookback_days"`
	Enabled      bool   `mapstructure:"tiktok_import_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tiktok")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_APP_ID", "")
	viper.SetDefault("TIKTOK_APP_SECRET", "")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "") // usado apenas pelo cron
	viper.SetDefault("TIKTOK_TIMEOUT", "30s")
	viper.SetDefault("TIKTOK_RETRY_COUNT", 2)
	viper.SetDefault("TIKTOK_PAGE_SIZE", 1000)
	viper.SetDefault("TIKTOK_UPLOAD_DIR", "")

	viper.SetDefault("STORAGE_S3_PATH", "")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_FORCE_PATH_STYLE", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults para importação diária
	viper.SetDefault("TIKTOK_IMPORT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("TIKTOK_IMPORT_SYNC_LOOKBACK_DAYS", 7)  // 7 dias de insights
	viper.SetDefault("TIKTOK_IMPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
