package main

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/coreframe/httpcodec/httpcore"
	"github.com/coreframe/httpcodec/httpmsg"
	"github.com/coreframe/httpcodec/internal/obslog"
)

var (
	serveAddr        string
	serveMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Accept connections and echo a fixed response for every decoded request",
	RunE:    runServe,
	Example: "# httpcodec serve --addr :8080 --metrics-addr :9090",
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveMetricsAddr, "metrics-addr", ":9090", "Address to serve /metrics on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	obslog.SetLevel(cfg.Logging.Level)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		obslog.Infof("metrics listening on %s", serveMetricsAddr)
		if err := http.ListenAndServe(serveMetricsAddr, mux); err != nil {
			obslog.Errorf("metrics server stopped: %v", err)
		}
	}()

	ln, err := net.Listen("tcp", serveAddr)
	if err != nil {
		return err
	}
	defer ln.Close()
	obslog.Infof("listening on %s", serveAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		obslog.Infof("shutting down")
		ln.Close()
	}()

	popts := cfg.ParserOptions()
	for {
		conn, err := ln.Accept()
		if err != nil {
			return nil
		}
		go handleConn(conn, popts, cfg.Connection.MinReadBufferSize)
	}
}

func handleConn(netConn net.Conn, popts httpcore.ParserOptions, minReadBufferSize int) {
	c := httpcore.NewConnection(netConn, popts, httpcore.DefaultDumperOptions(), minReadBufferSize)
	defer c.Close()

	var req httpmsg.Request
	for {
		req.Reset()
		if err := c.ReadRequest(&req); err != nil {
			return
		}
		if err := drainRequestBody(c); err != nil {
			return
		}

		var resp httpmsg.Response
		resp.MajorVersion, resp.MinorVersion = 1, 1
		resp.StatusCode = httpmsg.StatusOK
		resp.ReasonPhrase, _ = httpmsg.DescribeStatus(httpmsg.StatusOK)
		if err := c.WriteResponse(&resp, 0); err != nil {
			return
		}
	}
}

func drainRequestBody(c *httpcore.Connection) error {
	for c.Parser.BodyIsChunked() || c.Parser.RemainingBodyOrChunkSize() != 0 {
		n := c.Parser.RemainingBodyOrChunkSize()
		if _, err := c.PeekPayload(n); err != nil {
			return err
		}
		if err := c.DiscardPayload(n); err != nil {
			return err
		}
	}
	return nil
}
