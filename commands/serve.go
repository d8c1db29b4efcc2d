package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/csvdata"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/sink"
	"github.com/warp/payroll-engine/store/sqlite"
)

func newServeCmd(config *Config) *cobra.Command {
	var (
		port    int
		dataDir string
		dbPath  string
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the payroll API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := config.Log

			st, err := sqlite.New(dbPath)
			if err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			defer st.Close()

			loader := csvdata.NewLoader(dataDir, log)
			csvSink := sink.NewCSV(filepath.Join(dataDir, sink.DefaultOutputFile), log)
			runner := payroll.NewRunner(loader, []payroll.Sink{csvSink}, log)

			handler := api.NewHandler(runner, st, log)
			router := api.NewRouter(handler)

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", port),
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				log.WithField("port", port).Info("server starting")
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Fatal("server failed")
				}
			}()

			// Wait for interrupt signal
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Info("shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("forced shutdown: %w", err)
			}

			log.Info("server stopped")
			return nil
		},
	}

	serveCmd.Flags().IntVar(&port, "port", 8080, "HTTP server port")
	serveCmd.Flags().StringVar(&dataDir, "data", "data", "input data directory")
	serveCmd.Flags().StringVar(&dbPath, "db", "payroll.db", "SQLite database path")

	return serveCmd
}
