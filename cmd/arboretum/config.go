package main

import (
	"github.com/eaugeas/arboretum/config"
	"github.com/eaugeas/arboretum/script"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	scriptKey    = "script"
	valueTypeKey = "value-type"
	logLevelKey  = "log-level"
)

// ScriptConfig holds the parameters of the script replay
type ScriptConfig struct {
	// Path of the script to replay. Empty reads from stdin
	Path string

	// ValueType is the type of the values stored in the tree
	ValueType string
}

// Bind implementation of config.Binder for ScriptConfig
func (c *ScriptConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(scriptKey, "", "path to the script to replay, stdin if empty")
	cmd.PersistentFlags().String(valueTypeKey, script.ValueTypeInt, "type of the values in the tree: int or string")
	v.SetDefault(valueTypeKey, script.ValueTypeInt)
	return nil
}

// Configure implementation of config.Binder for ScriptConfig
func (c *ScriptConfig) Configure(v *viper.Viper) error {
	c.Path = v.GetString(scriptKey)
	c.ValueType = v.GetString(valueTypeKey)
	return nil
}

// LogConfig holds the logging parameters
type LogConfig struct {
	Level logrus.Level
}

// Bind implementation of config.Binder for LogConfig
func (c *LogConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(logLevelKey, logrus.InfoLevel.String(), "lowest level of the logs written to stderr")
	v.SetDefault(logLevelKey, logrus.InfoLevel.String())
	return nil
}

// Configure implementation of config.Binder for LogConfig
func (c *LogConfig) Configure(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString(logLevelKey))
	if err != nil {
		return err
	}

	c.Level = level
	return nil
}

// Config is the configuration of the arboretum command
type Config struct {
	Script ScriptConfig
	Log    LogConfig
}

// Use implementation of config.Config for Config
func (c *Config) Use() string {
	return "arboretum"
}

// EnvPrefix implementation of config.Config for Config
func (c *Config) EnvPrefix() string {
	return "ARBORETUM"
}

// Binders implementation of config.Config for Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{&c.Script, &c.Log}
}
