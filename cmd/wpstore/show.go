/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/registry"
	"github.com/suparena/wpstore/storagemodels"
)

var flagSummary bool

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print a snapshot as tagged JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		v, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if flagSummary {
			summary := map[string]any{
				"key":   args[0],
				"type":  registry.IdentifierOf(v),
				"items": sizeOf(v),
			}
			if c, ok := v.(interface{ Slugs() []string }); ok {
				summary["slugs"] = c.Slugs()
			}
			return printYAML(cmd, summary)
		}

		data, err := codec.ToJSON(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List stored snapshots",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		var opts []storagemodels.ListOption
		if len(args) == 1 {
			opts = append(opts, storagemodels.WithPrefix(args[0]))
		}
		infos, err := store.List(cmd.Context(), opts...)
		if err != nil {
			return err
		}
		return printYAML(cmd, infos)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		logger.Info("deleted snapshot", "key", args[0])
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&flagSummary, "summary", false, "print type, size and slugs instead of the document")
}

func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
