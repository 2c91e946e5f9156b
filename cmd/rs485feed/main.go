package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/picdaq/rs485.go/pkg/bus"
	"github.com/picdaq/rs485.go/pkg/device"
	"github.com/picdaq/rs485.go/pkg/measure"
	"github.com/picdaq/rs485.go/pkg/run"
	"github.com/picdaq/rs485.go/pkg/serialport"
	"github.com/picdaq/rs485.go/pkg/telemetry"
	"github.com/picdaq/rs485.go/pkg/telemetry/mqtt"
)

var (
	portName  = "/dev/ttyUSB0"
	identity  = "N"
	mqttURL   = "mqtt://localhost:1883/rs485/"
	interval  = time.Second
	vrefLevel = 255
)

func init() {
	if val := os.Getenv("RS485_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&portName, "port", portName, "Serial port name.")
	flag.StringVar(&identity, "identity", identity, "Single-character node identity.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.DurationVar(&interval, "interval", interval, "Sampling interval.")
	flag.IntVar(&vrefLevel, "vref", vrefLevel, "Analog reference level (0-255).")
}

// feed samples the node periodically and publishes to the queue.
type feed struct {
	client *device.Client
	queue  *mqtt.Queue
}

func (f *feed) Run(ctx context.Context) error {
	if err := f.startup(); err != nil {
		return err
	}
	defer f.shutdown()

	timer := time.NewTicker(interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := f.sample(); err != nil {
				glog.Errorf("sample failed: %v", err)
			}
		}
	}
}

// startup checks the node is alive and enables the reference output,
// blinking the LED once as the original bring-up procedure does.
func (f *feed) startup() error {
	if err := f.client.SetLED(1); err != nil {
		return err
	}
	version, err := f.client.Version()
	if err != nil {
		return err
	}
	glog.Infof("node %c firmware: %s", f.client.Node().ID(), version)
	time.Sleep(time.Second)
	if err = f.client.SetLED(0); err != nil {
		return err
	}
	return f.client.SetVREFOn(vrefLevel)
}

func (f *feed) shutdown() {
	if err := f.client.SetVREFOff(); err != nil {
		glog.Warningf("disable VREF: %v", err)
	}
}

func (f *feed) sample() error {
	txt, err := f.client.ReadADC()
	if err != nil {
		return err
	}
	readings, err := measure.ParseReadings(txt)
	if err != nil {
		return err
	}
	s := &telemetry.Sample{
		Node:     string(f.client.Node().ID()),
		Time:     time.Now().UTC(),
		Readings: readings,
	}
	if res, err := readings.Resistances(measure.DefaultRref); err == nil {
		s.Resistances = &res
	} else {
		glog.Warningf("resistances not computed: %v", err)
	}
	payload, err := s.Encode()
	if err != nil {
		return err
	}
	f.queue.Pub(telemetry.SampleTopic(f.client.Node().ID()), payload)
	glog.V(1).Infof("sample %s %v", s.Node, s.Readings)
	return nil
}

func main() {
	flag.Parse()

	if len(identity) != 1 {
		log.Fatalln("identity must be a single character")
	}

	port, err := serialport.Open(serialport.Config{Name: portName})
	if err != nil {
		log.Fatalln(err)
	}
	defer port.Close()
	node, err := bus.NewNode(identity[0], port)
	if err != nil {
		log.Fatalln(err)
	}

	opts, topicPrefix, err := mqtt.ClientOptionsFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if clientID, err := telemetry.ClientID("rs485feed"); err == nil {
		opts.SetClientID(clientID)
	} else {
		glog.Warningf("machine client id unavailable: %v", err)
	}
	queue := mqtt.NewQueue(opts, topicPrefix)
	if token := queue.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer queue.Close()

	f := &feed{client: device.NewClient(node), queue: queue}
	if err := run.NewRunner().HandleSignals().Go(f).Wait(); err != nil {
		log.Fatalln(err)
	}
}
