/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/wpstore"
	"github.com/suparena/wpstore/client"
	"github.com/suparena/wpstore/config"
	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/datastore/ddb"
	"github.com/suparena/wpstore/datastore/file"
)

// Global flag values.
var (
	flagEnvFile string
	flagOptions string
	flagStore   string
	flagVerbose bool
)

// Set by PersistentPreRunE for all subcommands.
var (
	options config.Options
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "wpstore",
	Short:         "Typed WordPress REST snapshots",
	Version:       wpstore.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		opts, err := config.LoadOptions(flagOptions)
		if err != nil {
			return err
		}
		options = opts
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env", config.DefaultEnvFile(), "dotenv file with AUTH_USER, AUTH_PASS and BASE_URL")
	rootCmd.PersistentFlags().StringVar(&flagOptions, "options", "", "YAML options file")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "file", "snapshot store: file or ddb")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient builds the REST client from the env file and the options.
func newClient() (*client.Client, error) {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return client.NewFromOptions(cfg, options, logger)
}

// openStore registers the configured backends and returns the one selected
// by --store.
func openStore(ctx context.Context) (datastore.DataStore, error) {
	sm := wpstore.NewStorageManager()

	local, err := file.New(options.SnapshotDir)
	if err != nil {
		return nil, err
	}
	if err := sm.RegisterDataStore("file", local); err != nil {
		return nil, err
	}

	if options.DynamoDB.Table != "" {
		dc, err := ddb.NewDynamoDBClient(ctx, os.Getenv("AWS_ACCESS_KEY"), os.Getenv("AWS_SECRET_KEY"), options.DynamoDB.Region)
		if err != nil {
			return nil, err
		}
		if err := sm.RegisterDataStore("ddb", ddb.New(dc, options.DynamoDB.Table)); err != nil {
			return nil, err
		}
	}

	ds, err := sm.GetDataStore(flagStore)
	if err != nil {
		return nil, fmt.Errorf("store %q is not configured (have %v): %w", flagStore, sm.ListDataStores(), err)
	}
	logger.Debug("snapshot store", "name", flagStore)
	return ds, nil
}
