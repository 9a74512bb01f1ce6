/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command wpstore fetches WordPress content into typed snapshots and
// inspects stored snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
