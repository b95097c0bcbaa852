// Command sv is the interactive SecureVault client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/securevault/internal/client/cli"
	"github.com/dmitrijs2005/securevault/internal/client/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sv:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(config.LoadConfig())
	if err != nil {
		return err
	}
	app.Run(ctx)
	return nil
}
