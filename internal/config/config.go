// Package config loads the deck configuration.
//
// Precedence is defaults, then the TOML file, then TASKDECK_* environment
// variables. Host flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

const (
	ModeLCD    = "lcd"
	ModeEPaper = "epaper"
)

// Duration is a time.Duration written as a string ("10s") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Broker struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Topic    string `toml:"topic"`
	CAFile   string `toml:"ca_file"`
	ClientID string `toml:"client_id"`
	QoS      int    `toml:"qos"`

	// WillTopic receives WillPayload, retained, when the deck drops off.
	WillTopic   string `toml:"will_topic"`
	WillPayload string `toml:"will_payload"`
}

type Display struct {
	Mode   string `toml:"mode"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Schedule struct {
	Clock  Duration `toml:"clock"`
	Scroll Duration `toml:"scroll"`
}

type Feed struct {
	// File, when set, is watched instead of connecting to the broker.
	File string `toml:"file"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Broker   Broker   `toml:"broker"`
	Display  Display  `toml:"display"`
	Schedule Schedule `toml:"schedule"`
	Feed     Feed     `toml:"feed"`
	Log      Log      `toml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Broker: Broker{
			Topic: "feishu/messages/tasks",
			QoS:   1,
		},
		Display: Display{
			Mode:   ModeLCD,
			Width:  240,
			Height: 240,
		},
		Schedule: Schedule{
			Clock:  Duration{10 * time.Second},
			Scroll: Duration{3 * time.Second},
		},
		Log: Log{Level: "info"},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskdeck", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taskdeck", "config.toml")
}

// Load reads path over the defaults and applies the environment. An empty path
// means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, err
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// ApplyEnv overrides fields from TASKDECK_* variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Broker.URL, "TASKDECK_BROKER_URL")
	set(&c.Broker.Username, "TASKDECK_USERNAME")
	set(&c.Broker.Password, "TASKDECK_PASSWORD")
	set(&c.Broker.Topic, "TASKDECK_TOPIC")
	set(&c.Feed.File, "TASKDECK_FEED_FILE")
}

func (c *Config) Validate() error {
	switch c.Display.Mode {
	case ModeLCD, ModeEPaper:
	default:
		return fmt.Errorf("%w: display.mode %q (want %s or %s)", ErrInvalid, c.Display.Mode, ModeLCD, ModeEPaper)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	}
	if c.Schedule.Clock.Duration <= 0 {
		return fmt.Errorf("%w: schedule.clock must be positive", ErrInvalid)
	}
	if c.Schedule.Scroll.Duration <= 0 {
		return fmt.Errorf("%w: schedule.scroll must be positive", ErrInvalid)
	}
	if c.Broker.QoS < 0 || c.Broker.QoS > 2 {
		return fmt.Errorf("%w: broker.qos %d", ErrInvalid, c.Broker.QoS)
	}
	if c.Broker.Topic == "" {
		return fmt.Errorf("%w: broker.topic is empty", ErrInvalid)
	}
	if c.Broker.WillPayload != "" && c.Broker.WillTopic == "" {
		return fmt.Errorf("%w: broker.will_payload without will_topic", ErrInvalid)
	}
	return nil
}

// Print writes c as TOML. The password is masked.
func Print(c *Config, w io.Writer) error {
	out := *c
	if out.Broker.Password != "" {
		out.Broker.Password = "********"
	}
	return toml.NewEncoder(w).Encode(out)
}
