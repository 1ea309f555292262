// Package mqttfeed subscribes to the task snapshot topic on an MQTT broker.
package mqttfeed

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// DefaultTopic is the topic the publisher writes snapshots to.
const DefaultTopic = "feishu/messages/tasks"

// Config is the broker connection.
type Config struct {
	Broker   string // e.g. mqtts://host:8883
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte

	// CAFile is a PEM bundle pinned as the only trusted roots.
	CAFile string

	// Will is published retained by the broker when the connection drops.
	WillTopic   string
	WillPayload string

	ConnectTimeout time.Duration
}

// Source is a feed.Source backed by paho.
type Source struct {
	cfg Config
	log *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Source {
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}
	if cfg.ClientID == "" {
		host, _ := os.Hostname()
		cfg.ClientID = "taskdeck-" + host
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 30 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Source{cfg: cfg, log: log}
}

// Run connects, subscribes on every (re)connect and delivers payload copies until
// ctx is done.
func (s *Source) Run(ctx context.Context, deliver func([]byte)) error {
	opts, err := s.clientOptions(deliver)
	if err != nil {
		return err
	}
	c := mqtt.NewClient(opts)

	tok := c.Connect()
	select {
	case <-ctx.Done():
		c.Disconnect(250)
		return ctx.Err()
	case <-tok.Done():
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqttfeed: connect %s: %w", s.cfg.Broker, err)
	}

	<-ctx.Done()
	c.Disconnect(250)
	return ctx.Err()
}

func (s *Source) clientOptions(deliver func([]byte)) (*mqtt.ClientOptions, error) {
	if s.cfg.Broker == "" {
		return nil, errors.New("mqttfeed: no broker url")
	}
	opts := mqtt.NewClientOptions().
		AddBroker(s.cfg.Broker).
		SetClientID(s.cfg.ClientID).
		SetUsername(s.cfg.Username).
		SetPassword(s.cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(s.cfg.ConnectTimeout)

	if s.cfg.CAFile != "" {
		tlsCfg, err := loadTLS(s.cfg.CAFile)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if s.cfg.WillTopic != "" {
		opts.SetWill(s.cfg.WillTopic, s.cfg.WillPayload, 1, true)
	}

	handler := s.handler(deliver)
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		s.log.Info("connected", "broker", s.cfg.Broker)
		tok := c.Subscribe(s.cfg.Topic, s.cfg.QoS, handler)
		go func() {
			if !tok.WaitTimeout(s.cfg.ConnectTimeout) {
				s.log.Warn("subscribe timed out", "topic", s.cfg.Topic)
				return
			}
			if err := tok.Error(); err != nil {
				s.log.Error("subscribe failed", "topic", s.cfg.Topic, "err", err)
				return
			}
			s.log.Info("subscribed", "topic", s.cfg.Topic, "qos", s.cfg.QoS)
		}()
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		s.log.Warn("connection lost", "err", err)
	})
	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		s.log.Info("reconnecting", "broker", s.cfg.Broker)
	})
	return opts, nil
}

func (s *Source) handler(deliver func([]byte)) mqtt.MessageHandler {
	return func(_ mqtt.Client, m mqtt.Message) {
		s.log.Debug("snapshot received", "topic", m.Topic(), "bytes", len(m.Payload()), "retained", m.Retained())
		deliver(bytes.Clone(m.Payload()))
	}
}

func loadTLS(caFile string) (*tls.Config, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("mqttfeed: read ca: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("mqttfeed: no certificates in %s", caFile)
	}
	return &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}, nil
}
