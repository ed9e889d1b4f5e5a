package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Its-donkey/multistream/internal/config"
)

type rootOptions struct {
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	serve := newServeCmd(opts)

	root := &cobra.Command{
		Use:   "multistream",
		Short: "Serve a grid of Twitch and Kick players",
		Long: `multistream hosts a single page that shows several live streams side by side.

  Only one player is audible at a time. Streams are added by URL or channel name and the grid can be 1 to 10 columns wide.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a config file (default ./multistream.yaml when present)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded before the environment is read")
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newParseCmd(), newEmbedCmd(opts))
	return root
}

// loadConfig applies the env file, reads the config and then any flags the
// user set explicitly.
func (o *rootOptions) loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := applyFlagOverrides(&cfg, flags); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func applyFlagOverrides(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	var err error
	if flags.Changed("listen") {
		cfg.Server.Listen, err = flags.GetString("listen")
		if err != nil {
			return err
		}
	}
	if flags.Changed("assets") {
		cfg.Server.Assets, err = flags.GetString("assets")
		if err != nil {
			return err
		}
	}
	if flags.Changed("columns") {
		cfg.Grid.Columns, err = flags.GetInt("columns")
		if err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return err
		}
		cfg.Log.Level = strings.ToLower(level)
	}
	if flags.Changed("parent") {
		cfg.Embed.Parents, err = flags.GetStringSlice("parent")
		if err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
