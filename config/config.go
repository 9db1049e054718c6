package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"clockout/calc"
	"clockout/internal/timeparse"
)

const (
	KeyWeekTargetHours         = "week.target_hours"
	KeyWeekDefaultLunchMinutes = "week.default_lunch_minutes"
	KeyWeekAssumedDayHours     = "week.assumed_day_hours"
	KeyWeekFridayDefaultStart  = "week.friday_default_start"
	KeyServePort               = "serve.port"
)

type Config struct {
	Week  WeekConfig  `mapstructure:"week" validate:"required"`
	Serve ServeConfig `mapstructure:"serve"`
}

type WeekConfig struct {
	TargetHours         float64 `mapstructure:"target_hours" validate:"required,gt=0"`
	DefaultLunchMinutes int     `mapstructure:"default_lunch_minutes" validate:"min=0"`
	AssumedDayHours     float64 `mapstructure:"assumed_day_hours" validate:"gt=0"`
	FridayDefaultStart  string  `mapstructure:"friday_default_start" validate:"required"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# clockout configuration
week:
  target_hours: 40
  default_lunch_minutes: 60
  assumed_day_hours: 8
  friday_default_start: "8:00 AM"

serve:
  port: 8080
`
}

// CalcOptions converts the week section into engine options.
func (c *Config) CalcOptions() (calc.Options, error) {
	start, err := timeparse.Parse(c.Week.FridayDefaultStart, timeparse.RoleStart)
	if err != nil {
		return calc.Options{}, fmt.Errorf("invalid %s value %q: %w", KeyWeekFridayDefaultStart, c.Week.FridayDefaultStart, err)
	}

	return calc.Options{
		TargetHours:         c.Week.TargetHours,
		DefaultLunchMinutes: c.Week.DefaultLunchMinutes,
		AssumedDayHours:     c.Week.AssumedDayHours,
		FridayDefaultStart:  start,
	}, nil
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := cfg.CalcOptions(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWeekTargetHours, 40.0)
	v.SetDefault(KeyWeekDefaultLunchMinutes, 60)
	v.SetDefault(KeyWeekAssumedDayHours, 8.0)
	v.SetDefault(KeyWeekFridayDefaultStart, "8:00 AM")
	v.SetDefault(KeyServePort, 8080)
}
