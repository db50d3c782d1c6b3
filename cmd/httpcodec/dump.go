package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coreframe/httpcodec/httpcore"
	"github.com/coreframe/httpcodec/httpmsg"
	"github.com/coreframe/httpcodec/internal/streamio"
)

var dumpKind string

var dumpCmd = &cobra.Command{
	Use:     "dump",
	Short:   "Parse a single HTTP/1.1 message from stdin and print a summary",
	RunE:    runDump,
	Example: "# httpcodec dump --kind request < request.txt",
}

func init() {
	dumpCmd.Flags().StringVar(&dumpKind, "kind", "request", "Message kind to parse: request or response")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	base := streamio.NewBufferStream()
	defer base.Release()
	consumed := false
	in := streamio.NewInputStream(base, streamio.RefillerFunc(func(s streamio.Stream) error {
		if consumed {
			return httpmsg.ErrEndOfStream
		}
		consumed = true
		buf := s.Reserve(len(raw))
		copy(buf, raw)
		s.Commit(len(raw))
		return nil
	}))

	parser := httpcore.NewParser(cfg.ParserOptions(), in)

	switch dumpKind {
	case "request":
		var req httpmsg.Request
		if err := parser.GetRequest(&req); err != nil {
			return err
		}
		printRequest(&req)
		return printBody(parser)
	case "response":
		var resp httpmsg.Response
		if err := parser.GetResponse(&resp); err != nil {
			return err
		}
		printResponse(&resp)
		return printBody(parser)
	default:
		return fmt.Errorf("unknown --kind %q, want request or response", dumpKind)
	}
}

func printRequest(req *httpmsg.Request) {
	fmt.Printf("%s %s HTTP/%d.%d\n", req.Method, req.URI.PathName, req.MajorVersion, req.MinorVersion)
	printHeader(&req.Header)
}

func printResponse(resp *httpmsg.Response) {
	fmt.Printf("HTTP/%d.%d %d %s\n", resp.MajorVersion, resp.MinorVersion, resp.StatusCode, resp.ReasonPhrase)
	printHeader(&resp.Header)
}

func printHeader(h *httpmsg.Header) {
	h.Traverse(func(_ int, name, value string) bool {
		fmt.Printf("  %s: %s\n", name, value)
		return true
	})
}

func printBody(parser *httpcore.Parser) error {
	var total uint64
	for parser.BodyIsChunked() || parser.RemainingBodyOrChunkSize() != 0 {
		n := parser.RemainingBodyOrChunkSize()
		if _, err := parser.PeekPayload(n); err != nil {
			return err
		}
		if err := parser.DiscardPayload(n); err != nil {
			return err
		}
		total += n
	}
	fmt.Printf("body: %d bytes\n", total)
	return nil
}
