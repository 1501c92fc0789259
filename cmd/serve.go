package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taroutcy/claudemd-landing/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the generated page over HTTP",
	Long:  `Serves the output directory on localhost so the page can be checked in a browser. Use --build to regenerate the page first.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the preview server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("build", false, "generate the page before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	build, _ := cmd.Flags().GetBool("build")
	if build {
		if err := buildPage(cfg.OutputPath()); err != nil {
			return err
		}
	}
	if _, err := os.Stat(cfg.OutputPath()); os.IsNotExist(err) {
		return fmt.Errorf("%s not found\nRun `landing generate` first or pass --build", cfg.OutputPath())
	}

	port, _ := cmd.Flags().GetInt("port")
	srv := server.New(server.Config{Port: port, Dir: cfg.OutputDir})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openBrowser, _ := cmd.Flags().GetBool("open")
	if openBrowser {
		if err := server.OpenBrowser(srv.URL()); err != nil {
			slog.Warn("could not open browser", "url", srv.URL(), "error", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at %s — press Ctrl+C to stop\n", cfg.OutputDir, srv.URL())
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serving preview: %w", err)
	}
	return nil
}
