package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/fsdevblog/club-loyal/internal/domain"
	"github.com/fsdevblog/club-loyal/internal/transport/events"
)

const defaultActivityWorkers uint = 4

type Config struct {
	RunAddress       string `env:"RUN_ADDRESS"`
	DatabaseDSN      string `env:"DATABASE_URI"`
	MigrationsDir    string `env:"MIGRATIONS_DIR"`
	SQLitePath       string `env:"SQLITE_PATH"`
	JWTSecret        string `env:"JWT_SECRET"`
	ActivityQueueURL string `env:"ACTIVITY_QUEUE_URL"`
	ActivityQueue    string `env:"ACTIVITY_QUEUE"`
	ActivityWorkers  uint   `env:"ACTIVITY_WORKERS"`
	DeliveryLimit    int64  `env:"ACTIVITY_DELIVERY_LIMIT"`
	LogLevel         string `env:"LOG_LEVEL"`

	Points PointsConfig `envPrefix:"POINTS_"`
}

// PointsConfig начальная таблица начислений.
type PointsConfig struct {
	GameParticipation       int64 `env:"GAME_PARTICIPATION"       envDefault:"10"`
	GameWin                 int64 `env:"GAME_WIN"                 envDefault:"25"`
	TournamentParticipation int64 `env:"TOURNAMENT_PARTICIPATION" envDefault:"50"`
	TournamentWin           int64 `env:"TOURNAMENT_WIN"           envDefault:"100"`
	ClassAttendance         int64 `env:"CLASS_ATTENDANCE"         envDefault:"15"`
	Referral                int64 `env:"REFERRAL"                 envDefault:"100"`
	Review                  int64 `env:"REVIEW"                   envDefault:"20"`
	Birthday                int64 `env:"BIRTHDAY"                 envDefault:"200"`
	MonthlyLoyalty          int64 `env:"MONTHLY_LOYALTY"          envDefault:"50"`
	FirstBooking            int64 `env:"FIRST_BOOKING"            envDefault:"50"`
}

func (p PointsConfig) Schedule() domain.PointSchedule {
	return domain.PointSchedule{
		GameParticipation:       p.GameParticipation,
		GameWin:                 p.GameWin,
		TournamentParticipation: p.TournamentParticipation,
		TournamentWin:           p.TournamentWin,
		ClassAttendance:         p.ClassAttendance,
		Referral:                p.Referral,
		Review:                  p.Review,
		Birthday:                p.Birthday,
		MonthlyLoyalty:          p.MonthlyLoyalty,
		FirstBooking:            p.FirstBooking,
	}
}

// String скрывает секрет и DSN при выводе конфигурации в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s DatabaseDSN:%s SQLitePath:%s MigrationsDir:%s ActivityQueue:%s ActivityWorkers:%d "+
			"DeliveryLimit:%d LogLevel:%s}",
		c.RunAddress, mask(c.DatabaseDSN), c.SQLitePath, c.MigrationsDir, c.ActivityQueue, c.ActivityWorkers,
		c.DeliveryLimit, c.LogLevel,
	)
}

// LoadConfig читает .env (если есть), переменные окружения и флаги командной строки. Переменные окружения
// приоритетнее флагов.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return loadConfig(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" && conf.SQLitePath == "" {
		return nil, errors.New("neither database DSN nor sqlite path is set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if err := conf.Points.Schedule().Validate(); err != nil {
		return nil, fmt.Errorf("points config: %w", err)
	}
	return conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("loyal", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.SQLitePath, "s", "", "SQLite database file, used when DSN is not set")
	fs.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret for service tokens")
	fs.StringVar(&flagConfig.ActivityQueueURL, "q", "", "AMQP URL of the activity events broker")
	fs.StringVar(&flagConfig.ActivityQueue, "queue", events.DefaultQueue, "Activity events queue name")
	fs.UintVar(&flagConfig.ActivityWorkers, "workers", defaultActivityWorkers, "Activity events workers")
	fs.Int64Var(&flagConfig.DeliveryLimit, "delivery-limit", events.DefaultDeliveryLimit,
		"Deliveries of a failing activity message before it is dead-lettered")
	fs.StringVar(&flagConfig.LogLevel, "l", "", "Log level")

	return fs.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		SQLitePath:       defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath),
		JWTSecret:        defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		ActivityQueueURL: defaultIfBlank(envConfig.ActivityQueueURL, flagsConfig.ActivityQueueURL),
		LogLevel:         defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		ActivityQueue:    defaultIfBlank(envConfig.ActivityQueue, flagsConfig.ActivityQueue),
		ActivityWorkers:  defaultIfZero(envConfig.ActivityWorkers, flagsConfig.ActivityWorkers),
		DeliveryLimit:    defaultIfZero(envConfig.DeliveryLimit, flagsConfig.DeliveryLimit),
		Points:           envConfig.Points,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T uint | int64](value, defaultValue T) T {
	if value == 0 {
		return defaultValue
	}
	return value
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return "***"
}
