package main

import (
	"fmt"
	"net"
	"os"

	"github.com/aero-sizing/wingweight/pkg/config"
	"github.com/aero-sizing/wingweight/pkg/rest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var host, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST server (" + config.RestHostEnvName + ", " + config.RestPortEnvName + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := serveAddress(host, port, os.Getenv)
			if err != nil {
				return err
			}
			return rest.NewServer(prometheus.NewRegistry()).Run(addr)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host, overrides "+config.RestHostEnvName)
	cmd.Flags().StringVar(&port, "port", "", "listen port, overrides "+config.RestPortEnvName)
	return cmd
}

// flags take precedence over the environment, which takes precedence over the defaults
func serveAddress(host, port string, getenv func(string) string) (string, error) {
	h, p, err := net.SplitHostPort(config.GetRestAddress(getenv))
	if err != nil {
		return "", fmt.Errorf("invalid %s or %s: %w", config.RestHostEnvName, config.RestPortEnvName, err)
	}
	if host != "" {
		h = host
	}
	if port != "" {
		p = port
	}
	return net.JoinHostPort(h, p), nil
}
