package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/Its-donkey/multistream/internal/ui/embed"
	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/streamers"
)

var (
	okLabel   = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
	dim       = color.New(color.FgHiBlack)
)

func newParseCmd() *cobra.Command {
	var serverURL string
	cmd := &cobra.Command{
		Use:   "parse <input>...",
		Short: "Show how stream inputs are recognised",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := func(_ context.Context, input string) (model.ChannelRef, error) {
				return forms.ParseStreamURL(input)
			}
			if base := strings.TrimSpace(serverURL); base != "" {
				parse = func(ctx context.Context, input string) (model.ChannelRef, error) {
					return streamers.ParseRemote(ctx, base, input)
				}
			}
			return runParse(cmd.Context(), cmd.OutOrStdout(), args, parse)
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "", "ask a running viewer at this base URL instead of parsing locally")
	return cmd
}

func runParse(ctx context.Context, w io.Writer, inputs []string, parse func(context.Context, string) (model.ChannelRef, error)) error {
	var result *multierror.Error
	for _, input := range inputs {
		ref, err := parse(ctx, input)
		if err != nil {
			failLabel.Fprint(w, "✗ ")
			fmt.Fprintf(w, "%q ", input)
			dim.Fprintln(w, forms.FormatHint)
			result = multierror.Append(result, err)
			continue
		}
		okLabel.Fprintf(w, "✓ %s ", ref.Platform)
		fmt.Fprintf(w, "%s ", ref.Channel)
		dim.Fprintln(w, forms.ChannelURL(ref))
	}
	return result.ErrorOrNil()
}

func newEmbedCmd(root *rootOptions) *cobra.Command {
	var parents []string
	cmd := &cobra.Command{
		Use:   "embed <input>",
		Short: "Print the player URL for a stream input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("parent") {
				cfg, err := root.loadConfig(nil)
				if err != nil {
					return err
				}
				parents = cfg.Embed.Parents
			}
			return runEmbed(cmd.OutOrStdout(), args[0], parents)
		},
	}
	cmd.Flags().StringSliceVar(&parents, "parent", nil, "Twitch embed parent host, repeatable (default from config)")
	return cmd
}

func runEmbed(w io.Writer, input string, parents []string) error {
	ref, err := forms.ParseStreamURL(input)
	if err != nil {
		return err
	}
	stream := model.Stream{Platform: ref.Platform, Channel: ref.Channel, Muted: true}
	_, err = fmt.Fprintln(w, embed.URL(stream, parents))
	return err
}
