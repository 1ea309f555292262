package publish

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher sends one snapshot.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// BrokerConfig is the publisher's broker connection.
type BrokerConfig struct {
	URL      string
	ClientID string
	Username string
	Password string
	CAFile   string
	Timeout  time.Duration
}

// MQTT publishes retained QoS 1 messages.
type MQTT struct {
	client  mqtt.Client
	timeout time.Duration
}

// Dial connects to the broker.
func Dial(cfg BrokerConfig) (*MQTT, error) {
	if cfg.URL == "" {
		return nil, errors.New("publish: no broker url")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.ClientID == "" {
		cfg.ClientID = fmt.Sprintf("taskpub-%d", time.Now().UnixNano())
	}
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetConnectTimeout(cfg.Timeout)
	if cfg.CAFile != "" {
		pem, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("publish: read ca: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("publish: no certificates in %s", cfg.CAFile)
		}
		opts.SetTLSConfig(&tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12})
	}

	c := mqtt.NewClient(opts)
	tok := c.Connect()
	if !tok.WaitTimeout(cfg.Timeout) {
		return nil, fmt.Errorf("publish: connect %s: timed out", cfg.URL)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("publish: connect %s: %w", cfg.URL, err)
	}
	return &MQTT{client: c, timeout: cfg.Timeout}, nil
}

func (m *MQTT) Publish(topic string, payload []byte) error {
	tok := m.client.Publish(topic, 1, true, payload)
	if !tok.WaitTimeout(m.timeout) {
		return fmt.Errorf("publish %s: timed out", topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (m *MQTT) Close() {
	m.client.Disconnect(250)
}

// Snapshot builds, encodes and publishes tasks. It returns the items sent.
func Snapshot(p Publisher, topic string, tasks []Task) ([]Item, error) {
	items := Build(tasks)
	payload, err := Encode(items)
	if err != nil {
		return nil, err
	}
	if err := p.Publish(topic, payload); err != nil {
		return nil, err
	}
	return items, nil
}
