package mqttfeed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type message struct {
	topic   string
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return 1 }
func (m *message) Retained() bool    { return true }
func (m *message) Topic() string     { return m.topic }
func (m *message) MessageID() uint16 { return 1 }
func (m *message) Payload() []byte   { return m.payload }
func (m *message) Ack()              {}

func TestHandlerDeliversCopy(t *testing.T) {
	s := New(Config{Broker: "tcp://localhost:1883"}, nil)
	var got []byte
	h := s.handler(func(p []byte) { got = p })

	m := &message{topic: DefaultTopic, payload: []byte(`[{"summary":"a"}]`)}
	h(nil, m)
	m.payload[0] = 'X'
	if string(got) != `[{"summary":"a"}]` {
		t.Fatalf("delivered %q", got)
	}
}

func TestClientOptions(t *testing.T) {
	s := New(Config{Broker: "tcp://broker:1883", Username: "u", Password: "p", QoS: 1}, nil)
	opts, err := s.clientOptions(func([]byte) {})
	if err != nil {
		t.Fatal(err)
	}
	if len(opts.Servers) != 1 || opts.Servers[0].Host != "broker:1883" {
		t.Fatalf("servers = %v", opts.Servers)
	}
	if !strings.HasPrefix(opts.ClientID, "taskdeck-") || opts.Username != "u" || opts.Password != "p" {
		t.Fatalf("identity = %q %q %q", opts.ClientID, opts.Username, opts.Password)
	}
	if !opts.AutoReconnect || !opts.ConnectRetry {
		t.Fatal("reconnect not enabled")
	}
	if s.cfg.Topic != DefaultTopic {
		t.Fatalf("topic = %q", s.cfg.Topic)
	}
}

func TestClientOptionsErrors(t *testing.T) {
	if _, err := New(Config{}, nil).clientOptions(nil); err == nil {
		t.Fatal("missing broker accepted")
	}

	bad := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(bad, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := New(Config{Broker: "ssl://b:8883", CAFile: bad}, nil).clientOptions(nil)
	if err == nil || !strings.Contains(err.Error(), "no certificates") {
		t.Fatalf("err = %v", err)
	}
	if _, err := New(Config{Broker: "ssl://b:8883", CAFile: bad + ".missing"}, nil).clientOptions(nil); err == nil {
		t.Fatal("missing ca accepted")
	}
}
