package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joshuapare/reg2ps/internal/server"
)

var (
	serveAddr string
	serveJoin bool
)

func init() {
	cmd := newServeCmd()
	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&serveJoin, "join-continuations", false,
		"Join lines ending in '\\' with the next line before converting")
	rootCmd.AddCommand(cmd)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter over HTTP",
		Long: `The serve command starts an HTTP API:

  POST /api/convert   .reg text (or {"input": "..."}) -> {"script", "keys", "values"}
  POST /api/download  .reg text -> PowerShell script as an attachment
  GET  /healthz

Example:
  reg2ps serve --addr 127.0.0.1:8080
  curl --data-binary @settings.reg localhost:8080/api/convert`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			addr := serveAddr
			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv := server.New(serverOptions())
			printInfo("Listening on %s\n", addr)
			return srv.Start(ctx, addr)
		},
	}
}

func serverOptions() server.Options {
	return server.Options{
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		Header:            cfg.Output.Header,
		FileName:          cfg.Output.FileName,
		JoinContinuations: serveJoin || cfg.Output.JoinContinuations,
	}
}
