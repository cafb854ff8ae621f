package main

import (
	"github.com/spf13/cobra"

	"github.com/glptrst/platform-game/internal/platform/tui"
)

var serveConfig = tui.DefaultSSHServerConfig()

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the games over SSH",
	Long: `Run an SSH server. Every connection with a terminal gets the game
picker; everyone shares one scores database.

The host key is generated at ~/.platform/host_key on first start unless
--host-key names one.

Examples:
  platform serve
  platform serve --ssh :2222 --idle-timeout 10m
  platform serve --host-key ./host_key --db ./scores.db

Then connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := serveConfig
		cfg.DBPath = flagDBPath
		cfg.TickRate = flagFPS
		cfg.Logger = newLogger("platform-ssh")

		server, err := tui.NewSSHServer(cfg)
		if err != nil {
			return err
		}
		return server.ListenAndServe()
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveConfig.Address, "ssh", serveConfig.Address, "Listen address (host:port)")
	f.StringVar(&serveConfig.HostKeyPath, "host-key", "", "Host key file, generated when missing")
	f.DurationVar(&serveConfig.IdleTimeout, "idle-timeout", serveConfig.IdleTimeout, "Disconnect sessions idle for this long")
}
