package controller

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"wake/wake_station/db"
)

// Publisher sends wake events to whoever listens for them.
type Publisher interface {
	Publish(event db.WakeEvent) error
	Close() error
}

type mqttPublisher struct {
	client paho.Client
	topic  string
}

func newMqttPublisher(broker, clientId, topic string) (Publisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientId).
		SetAutoReconnect(true).
		SetConnectRetry(true)
	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connect to %s: timeout", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}
	return &mqttPublisher{client: client, topic: topic}, nil
}

func (p *mqttPublisher) Publish(event db.WakeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	token := p.client.Publish(p.topic, 1, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish to %s: timeout", p.topic)
	}
	return token.Error()
}

func (p *mqttPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
