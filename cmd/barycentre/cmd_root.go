package main

import (
	"barycentre-service/internal/codec"
	"barycentre-service/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags every subcommand reads.
type rootOptions struct {
	friendsToken string
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "barycentre",
		Short: "find the meeting point of a group of friends",
		Long: `
barycentre geocodes a list of friends' addresses, computes their geographic
centre and reports each friend's driving distance and time to it.

The list travels as a "friends" token, the same JSON value used in share links:
  [{"name":"Alice","address":"Paris"},{"name":"Bob","address":"Lyon"}]
`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.friendsToken, "friends", "", "state token (JSON list of {name,address})")

	root.AddCommand(
		newRefreshCmd(opts),
		newAddCmd(opts),
		newRemoveCmd(opts),
		newShareCmd(opts),
	)

	return root
}

// registry seeds a registry from --friends. A malformed token starts empty.
func (o *rootOptions) registry() *domain.Registry {
	entries, ok := codec.Decode(o.friendsToken)
	if !ok {
		entries = nil
	}
	return domain.NewRegistry(entries)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func Execute(version string) {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
