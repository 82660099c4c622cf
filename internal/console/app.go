package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"sysutil/internal/envstore"
	"sysutil/internal/fsinfo"
	"sysutil/internal/netprobe"
	"sysutil/internal/system"
)

type InfoCollector interface {
	Collect(ctx context.Context) system.SystemInfo
}

type ProcessLister interface {
	List(ctx context.Context, topN int) []system.ProcessRecord
}

type Pinger interface {
	Ping(ctx context.Context, host string, timeoutSec int) netprobe.PingResult
}

type ResourceMonitor interface {
	Monitor(ctx context.Context, duration, interval time.Duration) []system.Sample
}

// Options are the tunables the menu passes to operations
type Options struct {
	TopN            int
	PingTimeoutSec  int
	MonitorDuration time.Duration
	MonitorInterval time.Duration
}

// App is the interactive menu loop
type App struct {
	Info      InfoCollector
	Processes ProcessLister
	Pinger    Pinger
	Sampler   ResourceMonitor
	Env       envstore.Store
	Options   Options

	out    io.Writer
	styles Styles
	prompt *Prompter
}

// NewApp wires an App reading from in and writing to out
func NewApp(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *App {
	styles := NewStyles(out)
	return &App{
		Env:    envstore.OS{},
		out:    out,
		styles: styles,
		prompt: NewPrompter(in, out, styles, interrupts),
	}
}

// Run shows the main menu until the user exits or input ends
func (a *App) Run(ctx context.Context) error {
	a.header("System Utility")
	for {
		a.mainMenu()
		choice, err := a.prompt.Ask("Select: ")
		if errors.Is(err, io.EOF) {
			a.info("Goodbye!")
			return nil
		}

		switch choice {
		case "1":
			a.header("System info")
			a.pretty(a.Info.Collect(ctx))
		case "2":
			a.header("Top processes")
			a.pretty(processRows(a.Processes.List(ctx, a.Options.TopN)))
		case "3":
			path, _ := a.prompt.Ask("Enter file/folder path: ")
			a.header("Permissions")
			a.pretty(fsinfo.CheckPermissions(path))
		case "4":
			path, _ := a.prompt.Ask("Enter folder path: ")
			a.header("Folder size")
			a.pretty(fsinfo.FolderSize(path))
		case "5":
			a.header("Environment Variables")
			a.warning("Note: Changes affect current process only.")
			a.runEnvMenu()
		case "6":
			path, _ := a.prompt.Ask("Enter folder path: ")
			a.header("Count files & directories")
			a.pretty(fsinfo.CountEntries(path))
		case "7":
			host, _ := a.prompt.Ask("Enter host to ping (e.g., 8.8.8.8 or example.com): ")
			a.header("Ping " + host)
			res := a.Pinger.Ping(ctx, host, a.Options.PingTimeoutSec)
			if res.Success {
				a.success("SUCCESS")
			} else {
				a.failure("FAILED")
			}
			if res.Target != res.Host {
				a.info("Target: " + res.Target)
			}
			fmt.Fprintln(a.out, res.Output)
		case "8":
			a.header(fmt.Sprintf("Monitor CPU/RAM (%gs)", a.Options.MonitorDuration.Seconds()))
			samples := a.Sampler.Monitor(ctx, a.Options.MonitorDuration, a.Options.MonitorInterval)
			if len(samples) == 0 {
				a.failure("CPU/RAM sampling is not available on this system.")
			} else {
				a.pretty(samples)
			}
		case "0":
			a.info("Goodbye!")
			return nil
		default:
			a.failure("Invalid choice.")
		}
	}
}

func (a *App) runEnvMenu() {
	for {
		a.envMenu()
		choice, err := a.prompt.Ask("Select (env): ")
		if errors.Is(err, io.EOF) {
			return
		}

		switch choice {
		case "1":
			a.info("All environment variables:")
			a.pretty(envstore.List(a.Env))
		case "2":
			key, _ := a.prompt.Ask("Key to get: ")
			val, ok := envstore.Get(a.Env, key)
			if !ok {
				val = "(not set)"
			}
			fmt.Fprintln(a.out, a.styles.Info.Render(key+"=")+val)
		case "3":
			key, _ := a.prompt.Ask("Key to set: ")
			value, _ := a.prompt.Ask("Value: ")
			envstore.Set(a.Env, key, value)
			a.success(fmt.Sprintf("Set %s.", key))
		case "4":
			key, _ := a.prompt.Ask("Key to delete: ")
			if envstore.Delete(a.Env, key) {
				a.success(key + " deleted.")
			} else {
				a.success(key + " not found.")
			}
		case "0":
			return
		default:
			a.failure("Invalid choice.")
		}
	}
}

// pretty prints v as indented JSON, keeping non-ASCII text as is
func (a *App) pretty(v any) {
	enc := json.NewEncoder(a.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		a.failure(fmt.Sprintf("failed to render result: %v", err))
	}
}

type processRow struct {
	PID  *int32   `json:"pid"`
	Name string   `json:"name"`
	User *string  `json:"user"`
	CPU  *float64 `json:"cpu%"`
	RSS  *string  `json:"rss"`
}

// processRows swaps raw RSS for a readable size
func processRows(records []system.ProcessRecord) []any {
	rows := make([]any, 0, len(records))
	for _, r := range records {
		if r.Error != "" {
			rows = append(rows, map[string]string{"error": r.Error})
			continue
		}
		row := processRow{PID: r.PID, Name: r.Name, User: r.User, CPU: r.CPU}
		if r.RSS != nil {
			rss := system.HumanBytes(*r.RSS)
			row.RSS = &rss
		}
		rows = append(rows, row)
	}
	return rows
}
