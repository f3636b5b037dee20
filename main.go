package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/vibedesk/internal/app"
	"github.com/kmacinski/vibedesk/internal/apps"
	"github.com/kmacinski/vibedesk/internal/config"
	"github.com/kmacinski/vibedesk/internal/logging"
	"go.uber.org/zap"
)

var (
	version = "dev"
)

func main() {
	// Parse flags
	var (
		showVersion bool
		showHelp    bool
		configPath  string
		bgPath      string
		logLevel    string
	)

	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.StringVar(&configPath, "c", "", "Config file")
	flag.StringVar(&configPath, "config", "", "Config file")
	flag.StringVar(&bgPath, "b", "", "Background image")
	flag.StringVar(&bgPath, "background", "", "Background image")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	if showVersion {
		fmt.Printf("vibedesk %s\n", version)
		os.Exit(0)
	}

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if bgPath != "" {
		cfg.Background.Path = bgPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, err := logging.NewFile(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Info("starting", zap.String("version", version))

	application := app.New(cfg, logger, apps.Builtin())

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	application.SetProgram(p)
	defer application.Cleanup()

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		application.Cleanup()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	var (
		res *config.LoadResult
		err error
	)
	if path != "" {
		res, err = config.LoadFromPath(path)
	} else {
		res, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

func printHelp() {
	fmt.Println(`vibedesk - a desktop in your terminal

A background canvas, a dock of mini apps, and floating windows you can
drag and resize with the mouse.

Usage:
  vibedesk [flags]

Flags:
  -c, --config      Config file (default: ~/.config/vibedesk/config.yaml)
  -b, --background  Background image to start with
      --log-level   Log level: debug, info, warn, error
  -h, --help        Show help
  -v, --version     Show version

Mouse:
  click dock entry  Open app window
  drag title bar    Move window
  drag ◢            Resize window
  click ×           Close window

Keybindings:
  1-9               Open dock app
  x                 Close top window
  b                 Change background
  y                 Copy playlist link
  o                 Open playlist in browser
  ?                 Toggle help
  q                 Quit`)
}
