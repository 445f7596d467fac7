package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type RemindersConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

func (config RemindersConfig) validate() error {
	if !config.Enabled {
		return nil
	}

	if config.Schedule == "" {
		return fmt.Errorf("missing variable: reminders schedule")
	}

	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		return fmt.Errorf("invalid reminders schedule %q: %w", config.Schedule, err)
	}

	return nil
}

func (config RemindersConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("reminders.enabled", "REMINDERS_ENABLED"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("reminders.schedule", "REMINDERS_SCHEDULE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
