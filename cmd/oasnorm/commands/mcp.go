package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasnorm/internal/cliutil"
	"github.com/erraggy/oasnorm/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio and blocks until the client
// disconnects or the process receives SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasnorm mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the dedupe_enums and property_names tools over MCP (stdio).\n")
		cliutil.Writef(fs.Output(), "Defaults are read from OASNORM_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
