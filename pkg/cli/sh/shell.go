// Package sh provides the ishell backed interactive session with a node.
package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/picdaq/rs485.go/pkg/bus"
	"github.com/picdaq/rs485.go/pkg/device"
	"github.com/picdaq/rs485.go/pkg/serialport"
)

// Config selects the port and node identity for a session.
type Config struct {
	Port     serialport.Config
	Identity byte
}

// Shell provides the interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *Config

	port   *serialport.Port
	client *device.Client
}

const (
	shellKey     = "$shell"
	closedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	portName   string
	identity   string

	// commands
	commands = []*ishell.Cmd{
		&PortsCmd,
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// SetupFlags registers session flags.
func SetupFlags() {
	flag.StringVar(&portName, "port", portName, "Serial port name, e.g. /dev/ttyUSB0.")
	flag.StringVar(&identity, "identity", "N", "Single-character node identity.")
}

// NewConfig builds a Config from flags.
func NewConfig() *Config {
	conf := &Config{Identity: 'N'}
	conf.Port.Name = portName
	if identity != "" {
		conf.Identity = identity[0]
	}
	return conf
}

// AddCmds is used by command providers during init.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Client gets the current session client, or nil when no port is open.
func (s *Shell) Client() *device.Client {
	return s.client
}

// MustBeOpen wraps a command func that requires an open session.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).client == nil {
			c.Err(fmt.Errorf("no port open"))
			return
		}
		fn(c)
	}
}

// Print writes a result, honoring the -json flag.
func (s *Shell) Print(c *ishell.Context, v interface{}, plain string) {
	if s.OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(plain)
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the configured port and starts a node session.
func (s *Shell) Open(conf Config) error {
	port, err := serialport.Open(conf.Port)
	if err != nil {
		return err
	}
	node, err := bus.NewNode(conf.Identity, port)
	if err != nil {
		port.Close()
		return err
	}
	s.Close()
	s.port = port
	s.client = device.NewClient(node)
	s.Shell.SetPrompt(fmt.Sprintf("%c@%s > ", conf.Identity, conf.Port.Name))
	return nil
}

// Close ends the current session.
func (s *Shell) Close() {
	if s.port != nil {
		s.port.Close()
		s.port, s.client = nil, nil
		s.Shell.SetPrompt(closedPrompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoOpen && s.Config.Port.Name != "" {
		if s.Interactive {
			s.Shell.Printf("Opening %s ...\n", s.Config.Port.Name)
		}
		if err := s.Open(*s.Config); err != nil {
			log.Fatalf("open %q failed: %v", s.Config.Port.Name, err)
		}
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		s.Close()
		return
	}
	log.Fatalln("command expected")
}

var (
	// PortsCmd lists serial ports.
	PortsCmd = ishell.Cmd{
		Name:    "ports",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			names, err := serialport.ListPorts()
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if names == nil {
					names = []string{}
				}
				out, err := json.Marshal(names)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(names) == 0 {
				c.Println("No serial ports found")
				return
			}
			for _, name := range names {
				c.Println(name)
			}
		},
	}

	// OpenCmd opens a port and starts a session.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "PORT [ID]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			conf := *s.Config
			if len(c.Args) >= 1 {
				conf.Port.Name = c.Args[0]
			}
			if len(c.Args) >= 2 {
				if len(c.Args[1]) != 1 {
					c.Err(fmt.Errorf("identity must be a single character"))
					return
				}
				conf.Identity = c.Args[1][0]
			}
			if conf.Port.Name == "" {
				c.Err(fmt.Errorf("no port name"))
				return
			}
			if err := s.Open(conf); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd ends the current session.
	CloseCmd = ishell.Cmd{
		Name:    "close",
		Aliases: []string{"c"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)

// MonitorInterval is the default delay between monitor samples.
const MonitorInterval = time.Second

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(NewConfig()).WithAutoOpen(true).Run(flag.Args()...)
}
