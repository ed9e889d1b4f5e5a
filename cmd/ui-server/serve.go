package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/multistream/internal/ui/server"
	"github.com/Its-donkey/multistream/logging"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the viewer HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
				Site:   cfg.Site,
			})
			if err != nil {
				return err
			}
			opts, err := server.OptionsFromConfig(cfg, logger)
			if err != nil {
				return err
			}
			if err := server.Run(cmd.Context(), opts); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.String("listen", "", "address to serve the viewer (overrides server.listen)")
	flags.String("assets", "", "directory holding styles.css, wasm_exec.js and main.wasm")
	flags.Int("columns", 0, "initial grid columns, 1-10")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringSlice("parent", nil, "Twitch embed parent host, repeatable")
	return cmd
}
