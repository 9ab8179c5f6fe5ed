// Command waybar-helper is the minimal variant: it knows only "wayeyes",
// takes no flags and always uses the default configuration.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bryanchriswhite/swaybar-helper/internal/args"
	"github.com/bryanchriswhite/swaybar-helper/internal/config"
	"github.com/bryanchriswhite/swaybar-helper/internal/logger"
	"github.com/bryanchriswhite/swaybar-helper/internal/shutdown"
	"github.com/bryanchriswhite/swaybar-helper/internal/status"
)

var subscriber status.Subscriber = status.SwaySubscriber{}

func main() {
	logger.Init("warn", false)
	os.Exit(run(context.Background(), args.FromOS(), shutdown.New(), os.Stdout, os.Stderr))
}

func run(ctx context.Context, a args.Executable, stop *shutdown.Flag, stdout, stderr io.Writer) int {
	if !a.HasExecutable() {
		fmt.Fprintln(stderr, "executable not valid")
		return 1
	}

	switch a.Command {
	case "wayeyes":
		if a.Count() > 0 {
			fmt.Fprintln(stderr, "invalid arguments for wayeyes")
			printUsage(stdout, a)
			return 3
		}

		stop.Install()
		defer stop.Stop()

		runner := status.NewRunner(config.Default(), subscriber, stop, stdout)
		if err := runner.Run(ctx); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	default:
		printUsage(stdout, a)
	}
	return 0
}

func printUsage(w io.Writer, a args.Executable) {
	fmt.Fprintf(w, "%q wayeyes\n", a.Path)
}
