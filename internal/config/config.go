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
	"github.com/vfg2006/feasibility-api/internal/domain"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Finance   Finance   `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	SecretKey string        `mapstructure:"secret_key"`
	TokenTTL  time.Duration `mapstructure:"auth_token_ttl"`
}

// Finance são as premissas financeiras aplicadas a toda análise nova
type Finance struct {
	WACC                float64 `mapstructure:"finance_wacc"`
	TaxRate             float64 `mapstructure:"finance_tax_rate"`
	BadDebtRate         float64 `mapstructure:"finance_bad_debt_rate"`
	MarketingRate       float64 `mapstructure:"finance_marketing_rate"`
	OperationalRate     float64 `mapstructure:"finance_operational_rate"`
	DepreciationPeriods int     `mapstructure:"finance_depreciation_periods"`
	OTCMultiplier       float64 `mapstructure:"finance_otc_multiplier"`
	COGSRate            float64 `mapstructure:"finance_cogs_rate"`
	IRRInitialGuess     float64 `mapstructure:"finance_irr_initial_guess"`
	IRRTolerance        float64 `mapstructure:"finance_irr_tolerance"`
	IRRMaxIterations    int     `mapstructure:"finance_irr_max_iterations"`
}

type Retention struct {
	CronSchedule  string `mapstructure:"analysis_retention_cron"`
	RetentionDays int    `mapstructure:"analysis_retention_days"`
	Enabled       bool   `mapstructure:"analysis_retention_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func (f Finance) Assumptions() domain.Assumptions {
	return domain.Assumptions{
		WACC:                f.WACC,
		TaxRate:             f.TaxRate,
		BadDebtRate:         f.BadDebtRate,
		MarketingRate:       f.MarketingRate,
		OperationalRate:     f.OperationalRate,
		DepreciationPeriods: f.DepreciationPeriods,
		OTCMultiplier:       f.OTCMultiplier,
		COGSRate:            f.COGSRate,
		IRRInitialGuess:     f.IRRInitialGuess,
		IRRTolerance:        f.IRRTolerance,
		IRRMaxIterations:    f.IRRMaxIterations,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/feasibility")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// Premissas financeiras padrão
	defaults := domain.DefaultAssumptions()
	viper.SetDefault("FINANCE_WACC", defaults.WACC)
	viper.SetDefault("FINANCE_TAX_RATE", defaults.TaxRate)
	viper.SetDefault("FINANCE_BAD_DEBT_RATE", defaults.BadDebtRate)
	viper.SetDefault("FINANCE_MARKETING_RATE", defaults.MarketingRate)
	viper.SetDefault("FINANCE_OPERATIONAL_RATE", defaults.OperationalRate)
	viper.SetDefault("FINANCE_DEPRECIATION_PERIODS", defaults.DepreciationPeriods)
	viper.SetDefault("FINANCE_OTC_MULTIPLIER", defaults.OTCMultiplier)
	viper.SetDefault("FINANCE_COGS_RATE", defaults.COGSRate)
	viper.SetDefault("FINANCE_IRR_INITIAL_GUESS", defaults.IRRInitialGuess)
	viper.SetDefault("FINANCE_IRR_TOLERANCE", defaults.IRRTolerance)
	viper.SetDefault("FINANCE_IRR_MAX_ITERATIONS", defaults.IRRMaxIterations)

	viper.SetDefault("ANALYSIS_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("ANALYSIS_RETENTION_DAYS", 365)         // Análises mantidas por um ano
	viper.SetDefault("ANALYSIS_RETENTION_ENABLED", false)    // Habilitar limpeza automática

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	if err := config.Finance.Assumptions().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
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
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
