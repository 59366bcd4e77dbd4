package main

import (
	"barycentre-service/internal/codec"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(root *rootOptions) *cobra.Command {
	var name, address string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a friend and print the new token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := root.registry()
			if !reg.Add(name, address) {
				return errors.New("--address is required and must be valid UTF-8")
			}

			fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(reg.All()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "friend's name (defaults to \"Friend\")")
	cmd.Flags().StringVar(&address, "address", "", "free-text address")

	return cmd
}

func newRemoveCmd(root *rootOptions) *cobra.Command {
	var index int
	var all bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the friend at --index (or every friend with --all) and print the new token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := root.registry()

			switch {
			case all:
				reg.Clear()
			case cmd.Flags().Changed("index"):
				// Out-of-range indexes leave the list unchanged.
				reg.RemoveAt(index)
			default:
				return errors.New("one of --index or --all is required")
			}

			fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(reg.All()))
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "zero-based position to remove")
	cmd.Flags().BoolVar(&all, "all", false, "remove every friend")

	return cmd
}

func newShareCmd(root *rootOptions) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the share query for the current list (empty when the list is empty)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := codec.ShareQuery(root.registry().All())
			if q == "" {
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), baseURL+q)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "page URL to prefix the query with")

	return cmd
}
