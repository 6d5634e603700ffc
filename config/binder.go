package config

import (
	stderr "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder defines a group of configuration values
type Binder interface {
	// Bind declares the flags and defaults of the group
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values of the group once the
	// flags have been parsed
	Configure(v *viper.Viper) error
}

const configFileKey = "config"

// ConfigFile is the Binder for the optional configuration file.
// Any format supported by viper can be used
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(configFileKey, "", "path to the configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(configFileKey)
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return stderr.Wrapf(err, "failed to read config file %s", f.Path)
	}

	return nil
}
