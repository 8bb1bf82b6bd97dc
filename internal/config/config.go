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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	ReportSnapshot ReportSnapshot `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	SSLMode      string        `mapstructure:"database_ssl_mode"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	RetryDelay   time.Duration `mapstructure:"database_retry_delay"`
	AutoMigrate  bool          `mapstructure:"auto_migrate"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

func (a App) IsProduction() bool {
	return a.Env == "production"
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Redis struct {
	URL     string `mapstructure:"redis_url"`
	Channel string `mapstructure:"redis_channel"`
}

type ReportSnapshot struct {
	CronSchedule string `mapstructure:"report_snapshot_cron"`
	LookbackDays int    `mapstructure:"report_snapshot_lookback_days"`
	Enabled      bool   `mapstructure:"report_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSL_MODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_RETRY_DELAY", "5s") // intervalo fixo entre tentativas em produção
	viper.SetDefault("AUTO_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "") // vazio desabilita a autenticação

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("REDIS_URL", "") // vazio mantém as notificações apenas no processo
	viper.SetDefault("REDIS_CHANNEL", "sales-analytics:dashboard")

	viper.SetDefault("REPORT_SNAPSHOT_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("REPORT_SNAPSHOT_LOOKBACK_DAYS", 1)
	viper.SetDefault("REPORT_SNAPSHOT_ENABLED", false)
}

func NewConfig() (*Config, error) {
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

	config.Database.DSN = buildDSN(config.Database)

	return config, nil
}

func buildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" {
		dsn = fmt.Sprintf("%s?sslmode=%s", dsn, db.SSLMode)
	}

	return dsn
}

// MaskedDSN esconde a senha do banco para exibição em diagnósticos
func (d Database) MaskedDSN() string {
	return buildDSN(Database{
		Driver:   d.Driver,
		User:     d.User,
		Password: "****",
		URL:      d.URL,
		SSLMode:  d.SSLMode,
	})
}

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
