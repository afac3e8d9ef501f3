package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/unilookup/internal/browser"
	"github.com/f3rmion/unilookup/internal/details"
	"github.com/f3rmion/unilookup/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lookup page and JSON API over HTTP",
	Long: `Serve a lookup form at / and a JSON API at /api/lookup?q=<query>.

The listen address defaults to server.addr from config.yaml
(127.0.0.1:5000). With --browser the default browser opens the page
one second after the server starts.

Example:
  unilookup serve
  unilookup serve --addr :8080 --prefix /unicode --browser`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default from config, 127.0.0.1:5000)")
	serveCmd.Flags().Bool("browser", false, "open the page in the default browser")
	serveCmd.Flags().String("prefix", "", "URL path to mount the routes under")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.browser", serveCmd.Flags().Lookup("browser"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prefix, _ := cmd.Flags().GetString("prefix")

	srv, err := web.New(newEngine(cfg, true), details.NewInspector(), prefix)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Browser {
		t := browser.OpenAfter(time.Second, pageURL(cfg.Server.Addr, prefix))
		defer t.Stop()
	}

	if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("serving on %s: %w", cfg.Server.Addr, err)
	}
	return nil
}

// pageURL turns a listen address into a URL a browser can open.
func pageURL(addr, prefix string) string {
	host := addr
	switch {
	case strings.HasPrefix(addr, ":"):
		host = "127.0.0.1" + addr
	case strings.HasPrefix(addr, "0.0.0.0:"):
		host = "127.0.0.1" + strings.TrimPrefix(addr, "0.0.0.0")
	}
	return "http://" + host + strings.TrimSuffix(prefix, "/") + "/"
}
