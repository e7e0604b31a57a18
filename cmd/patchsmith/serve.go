package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KhanNadman/llm-patchsmith/internal/web"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the patch notes web UI",
		Long: `Start the PatchSmith web server.

Examples:
  patchsmith serve
  patchsmith serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}

			engine := buildEngine(cfg)
			server := web.NewServer(engine)

			fmt.Printf("Starting web server at http://localhost%s\n", cfg.Addr)
			return server.Run(cfg.Addr)
		},
	}

	cmd.Flags().String("addr", "", "web server address (overrides config)")

	return cmd
}
