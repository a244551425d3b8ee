package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrijs2005/userauth/internal/client/cli"
	"github.com/dmitrijs2005/userauth/internal/client/config"
)

// commandArgs strips the -a server flag and its value, leaving the
// subcommand and its positional arguments.
func commandArgs(args []string) []string {
	out := []string{}
	for i := 0; i < len(args); i++ {
		if args[i] == "-a" || args[i] == "--a" {
			i++
			continue
		}
		if strings.HasPrefix(args[i], "-a=") || strings.HasPrefix(args[i], "--a=") {
			continue
		}
		out = append(out, args[i])
	}
	return out
}

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, commandArgs(os.Args[1:])); err != nil {
		log.Fatalf("%v", err)
	}
}
