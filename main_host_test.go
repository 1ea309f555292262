//go:build !tinygo

package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"taskdeck/deck/feed/mqttfeed"
	"taskdeck/internal/config"
)

func TestBrokerConfigCarriesWill(t *testing.T) {
	cfg := config.Default()
	cfg.Broker.URL = "mqtts://broker:8883"
	cfg.Broker.ClientID = "deck-1"
	cfg.Broker.CAFile = "/etc/ca.pem"
	cfg.Broker.WillTopic = "desk/status"
	cfg.Broker.WillPayload = "offline"

	want := mqttfeed.Config{
		Broker:      "mqtts://broker:8883",
		ClientID:    "deck-1",
		Topic:       "feishu/messages/tasks",
		QoS:         1,
		CAFile:      "/etc/ca.pem",
		WillTopic:   "desk/status",
		WillPayload: "offline",
	}
	if diff := cmp.Diff(want, brokerConfig(cfg)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
