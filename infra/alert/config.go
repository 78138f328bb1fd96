package alert

import "fmt"

// Config defines the connection parameters for the risk alert publisher.
type Config struct {
	Enabled     bool   `json:"enabled"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         byte   `json:"qos"`
}

// Validate checks mandatory fields when alerting is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("alerts.broker is required when alerts are enabled")
	}
	return nil
}

// Prefix returns the configured topic prefix or the default.
func (c Config) Prefix() string {
	if c.TopicPrefix == "" {
		return "techops/risk"
	}
	return c.TopicPrefix
}
