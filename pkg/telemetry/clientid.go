package telemetry

import (
	"fmt"

	"github.com/denisbrodbeck/machineid"
)

// ClientID derives a stable MQTT client identity for this machine, so
// that a restarted daemon takes over its own session on the broker.
func ClientID(app string) (string, error) {
	id, err := machineid.ProtectedID(app)
	if err != nil {
		return "", fmt.Errorf("machine id: %w", err)
	}
	return app + "-" + id[:12], nil
}
