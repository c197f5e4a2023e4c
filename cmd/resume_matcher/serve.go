package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/feedback"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume matcher HTTP API server",
	Long: `Starts the REST API: resume analysis, skill filtering, paginated job
search and a server-sent-events state stream.

Configuration can be loaded from a JSON file using --config; environment
variables override file values.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (overrides config)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	comps, err := buildComponents(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer comps.Close() //nolint:errcheck

	// The server's broadcast is the orchestrator's change listener. The server
	// needs the orchestrator to exist first, so the callback closes over the
	// server variable; no intent can run before Start anyway.
	var srv *server.Server
	orch := buildOrchestrator(comps, cfg, func(state pipeline.State) {
		if srv != nil {
			srv.Broadcast(state)
		}
	})
	srv = server.New(orch, feedback.LogSender{}, server.Config{Port: cfg.Port})

	return srv.Start()
}
