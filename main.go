package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "occurrencecalc",
	Short: "Tally column B labels of a spreadsheet and compute net counts",
	Long: `Count every label in column B of the first sheet of a spreadsheet
(.xlsx, .xls or .csv) and derive the net values:

  W_Net         W_In - W_Off
  Painting_Net  Painting_In - Painting_Out
  PBS_Net       PBS_IN - PBS_Off

Commands:
  serve  Run the upload web interface.
  tally  Calculate the results for a local file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	port       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the upload web interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if port > 0 {
			cfg.Web.Port = port
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "occurrencecalc.yaml", "path to config file")
	serveCmd.Flags().IntVar(&port, "port", 0, "HTTP port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *Config) error {
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running on http://%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
