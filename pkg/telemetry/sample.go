// Package telemetry defines the sample feed published by the daemon.
package telemetry

import (
	"encoding/json"
	"time"

	"github.com/picdaq/rs485.go/pkg/measure"
)

// Sample is one measurement published to the feed, as JSON.
type Sample struct {
	Node        string               `json:"node"`
	Time        time.Time            `json:"time"`
	Readings    measure.Readings     `json:"readings"`
	Resistances *measure.Resistances `json:"resistances,omitempty"`
}

// SampleTopic is the per-node topic a Sample is published under,
// relative to the queue's topic prefix.
func SampleTopic(nodeID byte) string {
	return string(nodeID) + "/sample"
}

// Encode marshals the sample for publishing.
func (s *Sample) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSample unmarshals a published sample.
func DecodeSample(payload []byte) (*Sample, error) {
	var s Sample
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
