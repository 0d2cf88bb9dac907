package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
)

func main() {
	err := newRootCmd(newApp(os.Stdout)).ExecuteContext(context.Background())
	logging.Sync()
	if err != nil {
		abort(os.Stderr, err)
		os.Exit(1)
	}
}

// abort prints the failure banner. Nothing of the report has been written
// by the time a command fails.
func abort(w io.Writer, err error) {
	logging.Debug("command aborted", zap.Error(err))

	banner := color.New(color.FgRed, color.Bold, color.Underline)
	red := color.New(color.FgRed)

	banner.Fprintln(w, "*** ABORT ***")
	fmt.Fprintln(w)
	red.Fprintln(w, "Software aborted with the following error:")
	red.Fprintln(w, err.Error())
}
