package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sysutil/internal/conf"
	"sysutil/internal/console"
	"sysutil/internal/envstore"
	"sysutil/internal/netprobe"
	"sysutil/internal/runner"
	"sysutil/internal/system"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "sysutil",
	Short:         "Interactive OS introspection utility",
	Long:          "sysutil shows system info, processes, permissions, folder sizes, environment variables, ping results and CPU/RAM samples from one menu.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.LoadConfig(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		}
		setupLogging(conf.GetLog().Level)

		ctx := context.Background()
		caps := system.Probe(ctx)
		exec := runner.Exec{}

		// Interrupts are only honoured at the prompt
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)

		app := console.NewApp(os.Stdin, os.Stdout, interrupts)
		app.Info = system.NewCollector(caps, exec)
		app.Processes = system.NewProcessLister(caps, exec)
		app.Pinger = netprobe.NewProber(exec, conf.GetSSHConfigPath())
		app.Sampler = system.NewSampler(caps)
		app.Env = envstore.OS{}
		monitor := conf.GetMonitor()
		app.Options = console.Options{
			TopN:            conf.GetProcess().TopN,
			PingTimeoutSec:  conf.GetPing().TimeoutSec,
			MonitorDuration: time.Duration(monitor.DurationSec) * time.Second,
			MonitorInterval: time.Duration(monitor.IntervalSec * float64(time.Second)),
		}
		return app.Run(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.toml", "optional TOML config file")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
