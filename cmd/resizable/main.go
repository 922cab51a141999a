// Command resizable inspects and drives panel group layouts from the terminal.
//
// Usage:
//
//	resizable distribute layout.yaml                   Print the initial sizes
//	resizable adjust layout.yaml --boundary 0 --delta=-16
//	resizable preview layout.yaml --svg layout.svg     Draw the layout
//	resizable demo layout.yaml                         Resize interactively
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, a := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error(err)
		return err
	}
	return nil
}
