package config

import (
	"io"

	"github.com/eaugeas/ordered/container/tree"
	"github.com/eaugeas/ordered/logs"
	stderr "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	treeKindKey = "tree.kind"
	logLevelKey = "log.level"
)

// ContainerConfig is the Binder for the options used to
// create the containers
type ContainerConfig struct {
	// Kind of balancing used by the sorted sets
	Kind string

	// LogLevel of the container loggers
	LogLevel string
}

// Bind implementation of Binder for ContainerConfig
func (c *ContainerConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(treeKindKey, string(tree.KindAVL), "balancing of the sorted sets, avl or unbalanced")
	cmd.PersistentFlags().String(logLevelKey, "info", "log level of the containers")
	return nil
}

// Configure implementation of Binder for ContainerConfig
func (c *ContainerConfig) Configure(v *viper.Viper) error {
	c.Kind = v.GetString(treeKindKey)
	c.LogLevel = v.GetString(logLevelKey)

	if _, err := tree.ParseKind(c.Kind); err != nil {
		return stderr.Wrapf(err, "invalid %s %q", treeKindKey, c.Kind)
	}
	if _, err := logs.ParseLevel(c.LogLevel); err != nil {
		return stderr.Wrapf(err, "invalid %s", logLevelKey)
	}

	return nil
}

// Opts builds the options to create a tree. Log entries
// are written to out
func (c *ContainerConfig) Opts(out io.Writer) (tree.Opts, error) {
	kind, err := tree.ParseKind(c.Kind)
	if err != nil {
		return tree.Opts{}, err
	}

	logger, err := logs.NewLogger(c.LogLevel, out)
	if err != nil {
		return tree.Opts{}, err
	}

	return tree.Opts{Kind: kind, Logger: logger}, nil
}
