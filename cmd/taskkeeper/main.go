package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Atharvmulik/taskkeeper/internal/config"
	"github.com/Atharvmulik/taskkeeper/internal/db"
	"github.com/Atharvmulik/taskkeeper/internal/logging"
	"github.com/Atharvmulik/taskkeeper/internal/remote"
	"github.com/Atharvmulik/taskkeeper/internal/taskkeeper"
	"github.com/Atharvmulik/taskkeeper/internal/ui"
	"github.com/Atharvmulik/taskkeeper/internal/ui/views"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		apiURL      string
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&showVersion, "v", false, "print version and exit (shorthand)")
	flag.StringVar(&configPath, "config", "", "path to config.yaml")
	flag.StringVar(&apiURL, "api-url", "", "task API base URL (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("taskkeeper %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("version", version), zap.String("api_url", cfg.APIURL))

	// Form defaults are a convenience; run without them if the db can't open
	var settings views.FormSettings
	database, err := db.New(cfg.SettingsDB)
	if err != nil {
		logger.Warn("settings database unavailable", zap.String("path", cfg.SettingsDB), zap.Error(err))
	} else {
		defer database.Close()
		settings = database
	}

	client := remote.New(cfg.APIURL, cfg.RequestTimeout)
	list := taskkeeper.NewTaskList(client, taskkeeper.WithLogger(logger))
	scanner := taskkeeper.NewScanner(list, cfg.SettleDelay, cfg.ScanInterval, logger)

	// Create and run the application
	app := ui.NewApp(list, scanner, settings, logger)
	defer app.Shutdown()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.Shutdown()
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
