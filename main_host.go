//go:build !tinygo

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"taskdeck/app"
	"taskdeck/deck/feed"
	"taskdeck/deck/feed/filefeed"
	"taskdeck/deck/feed/mqttfeed"
	"taskdeck/deck/logger"
	"taskdeck/deck/termview"
	"taskdeck/hal"
	"taskdeck/internal/buildinfo"
	"taskdeck/internal/config"
)

func main() {
	var (
		cfgPath     string
		headless    hal.HeadlessConfig
		runHeadless bool
		tui         bool
		logFile     string
		printConfig bool
		version     bool
	)
	flag.StringVarP(&cfgPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/taskdeck/config.toml).")
	flag.BoolVar(&runHeadless, "headless", false, "Run without a window.")
	flag.DurationVar(&headless.Duration, "duration", 0, "Stop after this long in headless mode (0 = run until interrupted).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the framebuffer to this PNG in headless mode.")
	flag.BoolVar(&tui, "tui", false, "Preview in the terminal.")
	flag.StringVar(&logFile, "log-file", "", "Append log lines to this file instead of stderr.")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective config and exit.")
	flag.BoolVarP(&version, "version", "v", false, "Print the version and exit.")

	mode := flag.String("mode", "", "Display mode: lcd or epaper.")
	broker := flag.String("broker", "", "MQTT broker URL.")
	topic := flag.String("topic", "", "MQTT topic carrying task snapshots.")
	feedFile := flag.String("feed-file", "", "Watch a JSON file instead of the broker.")
	scroll := flag.Duration("scroll", 0, "Scroll period.")
	clockEvery := flag.Duration("clock", 0, "Clock refresh period.")
	width := flag.Int("width", 0, "Panel width in pixels.")
	height := flag.Int("height", 0, "Panel height in pixels.")
	level := flag.String("log-level", "", "Log level: debug, info, warn, error.")
	flag.Parse()

	if version {
		fmt.Println("taskdeck", buildinfo.String())
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Display.Mode = *mode
		case "broker":
			cfg.Broker.URL = *broker
		case "topic":
			cfg.Broker.Topic = *topic
		case "feed-file":
			cfg.Feed.File = *feedFile
		case "scroll":
			cfg.Schedule.Scroll.Duration = *scroll
		case "clock":
			cfg.Schedule.Clock.Duration = *clockEvery
		case "width":
			cfg.Display.Width = *width
		case "height":
			cfg.Display.Height = *height
		case "log-level":
			cfg.Log.Level = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if printConfig {
		if err := config.Print(cfg, os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		fatal(fmt.Errorf("log level: %w", err))
	}

	var logOut io.Writer = os.Stderr
	color := isatty.IsTerminal(os.Stderr.Fd())
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		logOut, color = f, false
	case tui:
		// The preview owns the terminal.
		logOut, color = io.Discard, false
	}

	opts := hal.Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		EPaper: cfg.Display.Mode == config.ModeEPaper,
	}
	run := func(ctx context.Context, h hal.HAL) error {
		log := logger.New(h.Logger(), logger.Options{Level: lvl, Color: color, Time: true})
		log.Info("taskdeck", "version", buildinfo.Short(), "mode", cfg.Display.Mode)
		dcfg := app.Config{
			Mode:   cfg.Display.Mode,
			Scroll: cfg.Schedule.Scroll.Duration,
			Clock:  cfg.Schedule.Clock.Duration,
			Source: newSource(cfg, logger.For(log, "feed")),
			Logger: log,
		}
		if tui {
			dcfg.Display = termview.New()
		}
		d, err := app.New(h, dcfg)
		if err != nil {
			return err
		}
		return d.Run(ctx)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case tui:
		err = run(ctx, hal.NewWithOutput(opts, logOut))
	case runHeadless:
		err = hal.RunHeadless(ctx, opts, headless, run)
	default:
		err = hal.RunWindow(ctx, opts, run)
	}
	if err != nil && err != context.Canceled {
		fatal(err)
	}
}

func newSource(cfg *config.Config, log *slog.Logger) feed.Source {
	switch {
	case cfg.Feed.File != "":
		return filefeed.New(cfg.Feed.File, filefeed.WithLogger(log))
	case cfg.Broker.URL != "":
		return mqttfeed.New(brokerConfig(cfg), log)
	default:
		log.Warn("no feed configured; set broker.url or feed.file")
		return nil
	}
}

func brokerConfig(cfg *config.Config) mqttfeed.Config {
	return mqttfeed.Config{
		Broker:      cfg.Broker.URL,
		ClientID:    cfg.Broker.ClientID,
		Username:    cfg.Broker.Username,
		Password:    cfg.Broker.Password,
		Topic:       cfg.Broker.Topic,
		QoS:         byte(cfg.Broker.QoS),
		CAFile:      cfg.Broker.CAFile,
		WillTopic:   cfg.Broker.WillTopic,
		WillPayload: cfg.Broker.WillPayload,
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "taskdeck:", err)
	os.Exit(1)
}
