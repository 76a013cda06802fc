package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/naphattraa1/irrigation-planner/internal/engine"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Satellite SatelliteConfig `mapstructure:"satellite"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpire time.Duration `mapstructure:"access_token_expire"`
	Issuer            string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig exposes the calculation policy knobs the source variants
// disagree on. Zero fields fall back to the engine-side defaults.
type EngineConfig struct {
	RainfallPolicy     string  `mapstructure:"rainfall_policy"`   // simple | usda-scs
	ValidationPolicy   string  `mapstructure:"validation_policy"` // binary | tiered
	OperatingHeadM     float64 `mapstructure:"operating_head_m"`
	MaxZoneCapacityLPD float64 `mapstructure:"max_zone_capacity_l_per_day"`
	MinLateralFloorM   float64 `mapstructure:"min_lateral_floor_m"` // 20 or 50
	HighDemandLPD      float64 `mapstructure:"high_demand_l_per_day"`
	LargeAreaM2        float64 `mapstructure:"large_area_m2"`
	PumpPricing        string  `mapstructure:"pump_pricing"` // flat | scaled
	InitialMonths      int     `mapstructure:"initial_months"`
	DevelopmentMonths  int     `mapstructure:"development_months"`
	MidMonths          int     `mapstructure:"mid_months"`
}

// ToEngineConfig maps the file/env representation onto engine.Config.
func (c EngineConfig) ToEngineConfig() engine.Config {
	return engine.Config{
		RainfallPolicy:         engine.RainfallPolicy(c.RainfallPolicy),
		ValidationPolicy:       engine.ValidationPolicy(c.ValidationPolicy),
		OperatingHeadM:         c.OperatingHeadM,
		MaxZoneCapacityLPerDay: c.MaxZoneCapacityLPD,
		MinLateralFloorM:       c.MinLateralFloorM,
		HighDemandLPerDay:      c.HighDemandLPD,
		LargeAreaM2:            c.LargeAreaM2,
		PumpPricing:            engine.PumpPricingMode(c.PumpPricing),
		Calendar: engine.SeasonCalendar{
			InitialMonths:     c.InitialMonths,
			DevelopmentMonths: c.DevelopmentMonths,
			MidMonths:         c.MidMonths,
		},
	}
}

// SatelliteConfig selects the annotation provider.
type SatelliteConfig struct {
	Mode string `mapstructure:"mode"` // off | static | mock
	Seed int64  `mapstructure:"seed"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: run on env vars and defaults.
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.dbname", "DB_NAME")

	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	v.BindEnv("jwt.secret", "JWT_SECRET")

	v.BindEnv("engine.rainfall_policy", "ENGINE_RAINFALL_POLICY")
	v.BindEnv("engine.validation_policy", "ENGINE_VALIDATION_POLICY")
	v.BindEnv("engine.pump_pricing", "ENGINE_PUMP_PRICING")

	v.BindEnv("satellite.mode", "SATELLITE_MODE")
	v.BindEnv("satellite.seed", "SATELLITE_SEED")
}

// GetEnvOrDefault returns an environment variable or a fallback.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
