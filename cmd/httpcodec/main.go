// Command httpcodec exercises the decoder/encoder pipeline end to end:
// serve accepts connections and echoes a fixed response for every decoded
// request, dump parses a single message from stdin and prints a summary.
package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	if _, err := maxprocs.Set(maxprocs.Logger(func(string, ...any) {})); err != nil {
		fmt.Fprintf(os.Stderr, "httpcodec: maxprocs: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "httpcodec: %v\n", err)
		os.Exit(1)
	}
}
