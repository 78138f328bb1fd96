// Package alert publishes risk register entries over MQTT so downstream
// consumers (ops dashboards, pagers) learn about plan violations as soon
// as a run completes.
package alert

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"techops/core/logger"
	"techops/core/model"
	infralogger "techops/infra/logger"
)

// Publisher sends risk entries to downstream consumers.
type Publisher interface {
	PublishRisk(entry model.RiskEntry) error
	Close() error
}

type riskPayload struct {
	AircraftID string `json:"aircraft_id"`
	Base       string `json:"base"`
	TaskID     string `json:"task_id"`
	Kind       string `json:"risk_kind"`
	DueDate    string `json:"due_date"`
	Detail     string `json:"detail"`
}

const publishTimeout = 5 * time.Second

// PahoPublisher implements Publisher using Eclipse Paho.
type PahoPublisher struct {
	cli    paho.Client
	prefix string
	qos    byte
	log    logger.Logger
}

// NewPahoPublisher connects to the configured broker.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "techops-alert-" + uuid.NewString()[:8]
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetConnectTimeout(publishTimeout)

	cli := paho.NewClient(opts)
	tok := cli.Connect()
	if !tok.WaitTimeout(publishTimeout) {
		return nil, fmt.Errorf("mqtt connect timeout to %s", cfg.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return &PahoPublisher{
		cli:    cli,
		prefix: cfg.Prefix(),
		qos:    cfg.QoS,
		log:    infralogger.New("risk-alert"),
	}, nil
}

// PublishRisk sends one entry on <prefix>/<kind>.
func (p *PahoPublisher) PublishRisk(entry model.RiskEntry) error {
	payload, err := json.Marshal(riskPayload{
		AircraftID: entry.Item.Aircraft.ID,
		Base:       entry.Item.Aircraft.Base,
		TaskID:     entry.Item.Task.ID,
		Kind:       entry.Kind.String(),
		DueDate:    entry.Item.DueDate.Format("2006-01-02"),
		Detail:     entry.Detail,
	})
	if err != nil {
		return err
	}
	topic := p.prefix + "/" + strings.ToLower(entry.Kind.String())
	tok := p.cli.Publish(topic, p.qos, false, payload)
	if !tok.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish timeout on %s", topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	p.log.Debugf("published %s for %s/%s", entry.Kind, entry.Item.Aircraft.ID, entry.Item.Task.ID)
	return nil
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() error {
	p.cli.Disconnect(250)
	return nil
}
