package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	for _, k := range []string{"TASKDECK_BROKER_URL", "TASKDECK_USERNAME", "TASKDECK_PASSWORD", "TASKDECK_TOPIC", "TASKDECK_FEED_FILE"} {
		t.Setenv(k, "")
	}
}

func TestLoadFileOverDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[broker]
url = "mqtts://broker.example:8883"
username = "deck"

[display]
mode = "epaper"
width = 200
height = 200

[schedule]
scroll = "5s"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Broker.URL = "mqtts://broker.example:8883"
	want.Broker.Username = "deck"
	want.Display = Display{Mode: ModeEPaper, Width: 200, Height: 200}
	want.Schedule.Scroll = Duration{5 * time.Second}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[broker]
url = "tcp://file:1883"
topic = "from/file"
`)
	clearEnv(t)
	t.Setenv("TASKDECK_BROKER_URL", "tcp://env:1883")
	t.Setenv("TASKDECK_FEED_FILE", "/tmp/tasks.json")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Broker.URL != "tcp://env:1883" || cfg.Broker.Topic != "from/file" || cfg.Feed.File != "/tmp/tasks.json" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadWill(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[broker]
url = "tcp://broker:1883"
will_topic = "desk/status"
will_payload = "offline"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Broker.WillTopic != "desk/status" || cfg.Broker.WillPayload != "offline" {
		t.Fatalf("broker = %+v", cfg.Broker)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("explicit missing file accepted")
	}
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.Mode != ModeLCD {
		t.Fatalf("mode = %q", cfg.Display.Mode)
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, "[schedule]\nclock = \"soon\"\n")
	if _, err := Load(path); err == nil {
		t.Fatal("bad duration accepted")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"mode", func(c *Config) { c.Display.Mode = "oled" }},
		{"size", func(c *Config) { c.Display.Width = 0 }},
		{"clock", func(c *Config) { c.Schedule.Clock = Duration{} }},
		{"scroll", func(c *Config) { c.Schedule.Scroll = Duration{-time.Second} }},
		{"qos", func(c *Config) { c.Broker.QoS = 3 }},
		{"topic", func(c *Config) { c.Broker.Topic = "" }},
		{"will", func(c *Config) { c.Broker.WillPayload = "offline" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mut(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: Validate = %v", tc.name, err)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestPrintMasksPassword(t *testing.T) {
	cfg := Default()
	cfg.Broker.Password = "hunter2"
	var buf bytes.Buffer
	if err := Print(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "hunter2") || !strings.Contains(out, `clock = "10s"`) {
		t.Fatalf("printed:\n%s", out)
	}
	if cfg.Broker.Password != "hunter2" {
		t.Fatal("Print modified the config")
	}
}
