// Command fstree copies, archives and fingerprints directory trees.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmgilman/go/fstree/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], cli.DefaultApp())
	stop()
	os.Exit(code)
}
