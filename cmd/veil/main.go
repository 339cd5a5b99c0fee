// Package main is the entry point for the veil pager.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/quorik/veil/internal/conceal"
	"github.com/quorik/veil/internal/config"
	"github.com/quorik/veil/internal/document"
	"github.com/quorik/veil/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var themePath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&themePath, "theme", "", "Path to theme file (overrides config)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if showVersion {
		fmt.Printf("veil %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		return 2
	}

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if themePath != "" {
		cfg.ThemePath = themePath
	}

	th := theme.Default()
	if cfg.ThemePath != "" {
		th, err = theme.Load(cfg.ThemePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	doc, err := document.Load(flag.Arg(0), documentOptions(cfg)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	pager, err := newPager(doc, cfg, th)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	defer pager.Close()

	// Reload configuration while running.
	watcher, err := config.NewWatcher(configPath, pager.PostConfig)
	if err == nil {
		defer watcher.Close()
	}

	// Restore the terminal on SIGINT/SIGTERM.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		pager.Quit()
	}()

	if err := pager.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// documentOptions translates configuration into document options.
func documentOptions(cfg config.Config) []document.Option {
	var rules []conceal.Rule
	if cfg.Conceal.Tabs {
		rules = append(rules, conceal.TabRule(cfg.View.TabWidth))
	}
	if cfg.Conceal.NonPrintable {
		rules = append(rules, conceal.NonPrintableRule())
	}

	opts := []document.Option{document.WithConcealRules(rules...)}
	if cfg.Editor.MaxUndoEntries > 0 {
		opts = append(opts, document.WithMaxUndoEntries(cfg.Editor.MaxUndoEntries))
	}
	return opts
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "veil.toml"
	}
	return filepath.Join(dir, "veil", "veil.toml")
}
