package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	DRE               DRE               `mapstructure:",squash"`
	RestaurantRanking RestaurantRanking `mapstructure:",squash"`
	Metrics           Metrics           `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// DRE guarda as constantes de negócio do cálculo
type DRE struct {
	VariableRatioFallback  float64 `mapstructure:"dre_variable_ratio_fallback"`
	HistoricalTicketMonths int     `mapstructure:"dre_historical_ticket_months"`
	TopN                   int     `mapstructure:"dre_top_n"`
}

// VariableRatio retorna a razão de custo variável padrão como decimal
func (d DRE) VariableRatio() decimal.Decimal {
	return decimal.NewFromFloat(d.VariableRatioFallback)
}

type RestaurantRanking struct {
	CronSchedule string `mapstructure:"restaurant_ranking_cron"`
	SyncEnabled  bool   `mapstructure:"restaurant_ranking_sync_enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/restaurant_dre?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("DRE_VARIABLE_RATIO_FALLBACK", 0.30) // 30% de custo variável quando não há receita
	viper.SetDefault("DRE_HISTORICAL_TICKET_MONTHS", 6)   // Janela do ticket médio histórico
	viper.SetDefault("DRE_TOP_N", 5)                      // Itens nos rankings de canais e categorias

	viper.SetDefault("RESTAURANT_RANKING_CRON", "0 6 * * *")   // Todos os dias às 6h da manhã
	viper.SetDefault("RESTAURANT_RANKING_SYNC_ENABLED", false) // Habilitar ranking de restaurantes

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	if err := config.Validate(); err != nil {
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

// Validate rejeita valores que tornariam o cálculo do DRE inconsistente
func (c *Config) Validate() error {
	if c.DRE.VariableRatioFallback < 0 || c.DRE.VariableRatioFallback >= 1 {
		return fmt.Errorf("DRE_VARIABLE_RATIO_FALLBACK deve estar entre 0 e 1, recebido %v", c.DRE.VariableRatioFallback)
	}

	if c.DRE.HistoricalTicketMonths <= 0 {
		return fmt.Errorf("DRE_HISTORICAL_TICKET_MONTHS deve ser positivo, recebido %d", c.DRE.HistoricalTicketMonths)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
