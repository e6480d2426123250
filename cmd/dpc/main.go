package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/doeshing/dpc-go/internal/infrastructure/cli"
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	opts := cli.Options{Verbose: isVerbose(), ConfigPath: configPathFromArgs(os.Args[1:])}

	root, closeContainer, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		return err
	}
	execErr := root.ExecuteContext(ctx)
	return errors.Join(execErr, closeContainer())
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("DPC_DEBUG"), "1") || strings.EqualFold(os.Getenv("DPC_DEBUG"), "true")
}

// configPathFromArgs finds --config before cobra parses flags, since the
// container has to be built first.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
