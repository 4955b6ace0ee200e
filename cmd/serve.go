package cmd

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/middlemath/internal/api"
	"github.com/abhisek/middlemath/internal/problemgen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve problems and answer checks over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if h, _ := cmd.Flags().GetString("host"); h != "" {
			cfg.Server.Host = h
		}
		if p, _ := cmd.Flags().GetInt("port"); p != 0 {
			cfg.Server.Port = p
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if cfg.Log.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		router := api.NewRouter(api.NewHandlers(problemgen.Default(), st.EventRepo(), version))
		srv := api.NewServer(cfg.Server.Addr(), router)

		slog.Info("middlemath api", "version", version, "addr", srv.Addr)
		return api.Serve(cmd.Context(), srv)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "Listen host (overrides config)")
	serveCmd.Flags().Int("port", 0, "Listen port (overrides config)")
}
