// Command lean-mcp starts the filesystem tool server. MCP clients that spawn
// the binary with a pipe on stdin get the stdio transport; interactive runs
// serve HTTP.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lean-mcp/internal/config"
	"lean-mcp/internal/logging"
	"lean-mcp/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewDefault()
		log.Warn("invalid logging config, using defaults", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{
		Host:  cfg.Server.Host,
		Port:  cfg.Server.Port,
		Token: cfg.Server.Token,
	}, log)

	if useStdio(cfg.Transport.Mode) {
		log.Info("starting stdio transport")
		if err := srv.ServeStdio(context.Background(), os.Stdin, os.Stdout); err != nil {
			log.Fatal("stdio transport error", zap.Error(err))
		}
		return
	}

	if cfg.Server.Token == "" {
		log.Warn("MCP_TOKEN not set; endpoints will be open")
	}
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Info("starting http transport", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

// useStdio resolves the configured transport mode. In "auto" mode stdio wins
// when stdin is not a terminal, which is how MCP clients spawn servers.
func useStdio(mode string) bool {
	switch mode {
	case "stdio":
		return true
	case "http":
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}
