package main

import (
	"flag"
	"log"
	"os"

	"github.com/picdaq/rs485.go/pkg/telemetry"
	"github.com/picdaq/rs485.go/pkg/telemetry/mqtt"
)

var (
	mqttURL = "mqtt://localhost:1883/rs485/"
)

func init() {
	if val := os.Getenv("RS485_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		s, err := telemetry.DecodeSample(payload)
		if err != nil {
			log.Printf("%s: bad sample: %v", topic, err)
			return
		}
		if s.Resistances != nil {
			log.Printf("%s: node=%s a8=%d a2=%d a4=%d a5=%d a6=%d  %s",
				topic, s.Node,
				s.Readings.A8, s.Readings.A2, s.Readings.A4, s.Readings.A5, s.Readings.A6,
				s.Resistances)
			return
		}
		log.Printf("%s: node=%s a8=%d a2=%d a4=%d a5=%d a6=%d",
			topic, s.Node,
			s.Readings.A8, s.Readings.A2, s.Readings.A4, s.Readings.A5, s.Readings.A6)
	}))
	<-(chan struct{})(nil)
}
