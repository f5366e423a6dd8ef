package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config interface {
	Use() string
	EnvPrefix() string
	Binders() []Binder
}

type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse the command line arguments, excluding the program name. Values
// are resolved in the order flags, environment, config file, defaults
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

func Generate(app string, config Config) (*Parser, error) {
	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `_` to _.
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: config.Use()}
	if cmd.Use == "" {
		cmd.Use = app
	}

	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
