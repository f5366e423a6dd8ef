package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrAlreadyParsed is returned when Parse is called more than once
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// Binder binds a group of configuration parameters to
// a viper instance
type Binder interface {
	// Bind declares the flags and defaults of the group
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads back the values once all sources
	// have been parsed
	Configure(v *viper.Viper) error
}

const configFileKey = "config"

// ConfigFile is the Binder for the optional configuration file. Any
// format supported by viper can be used
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(configFileKey, "", "path to a configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(configFileKey)
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", f.Path)
	}

	return nil
}
