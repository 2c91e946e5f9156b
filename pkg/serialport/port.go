// Package serialport implements the bus transport over a serial port.
package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// Config describes how to open the port. Construct one explicitly per
// session; there are no process-wide defaults.
type Config struct {
	// Name is the port device name, e.g. /dev/ttyUSB0 or COM3.
	Name string
	// Baud is the line rate. Defaults to 115200.
	Baud int
	// Timeout bounds each read. Defaults to 500ms.
	Timeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Baud == 0 {
		c.Baud = 115200
	}
	if c.Timeout == 0 {
		c.Timeout = 500 * time.Millisecond
	}
	return c
}

// Port is an open serial port implementing bus.Transport.
type Port struct {
	port serial.Port
}

// ListPorts enumerates the serial ports visible on this machine.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

// Open opens the serial port described by conf.
func Open(conf Config) (*Port, error) {
	conf = conf.withDefaults()
	if conf.Name == "" {
		return nil, fmt.Errorf("no serial port name")
	}
	port, err := serial.Open(conf.Name, &serial.Mode{BaudRate: conf.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", conf.Name, err)
	}
	if err = port.SetReadTimeout(conf.Timeout); err != nil {
		port.Close()
		return nil, err
	}
	return &Port{port: port}, nil
}

// ResetInput implements bus.Transport.
func (p *Port) ResetInput() error {
	return p.port.ResetInputBuffer()
}

// Write implements bus.Transport.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Flush implements bus.Transport.
func (p *Port) Flush() error {
	return p.port.Drain()
}

// ReadLine implements bus.Transport. It reads byte-wise until a newline
// or until the port's read timeout elapses, returning whatever
// accumulated. The trailing newline is included when seen.
func (p *Port) ReadLine() (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := p.port.Read(buf)
		if err != nil {
			return string(line), err
		}
		if n == 0 {
			// read timeout
			return string(line), nil
		}
		line = append(line, buf[0])
		if buf[0] == '\n' {
			return string(line), nil
		}
	}
}

// Close closes the port.
func (p *Port) Close() error {
	return p.port.Close()
}
