package device

import (
	"strings"
	"sync"

	"github.com/golang/glog"

	"github.com/picdaq/rs485.go/pkg/bus"
)

// Client executes commands against a node over the bus framing layer.
//
// The bus is half-duplex by convention: a mutex serializes exchanges so
// that one request is outstanding at a time. A call in progress runs to
// completion or to transport timeout; there is no mid-call cancellation.
type Client struct {
	node *bus.Node
	lock sync.Mutex
}

// NewClient wraps a bus node.
func NewClient(node *bus.Node) *Client {
	return &Client{node: node}
}

// Node gets the wrapped node.
func (c *Client) Node() *bus.Node {
	return c.node
}

// NodeRejected tests the soft-failure convention: a node that could not
// act on a command answers with the word "error" somewhere in its result
// text. The node-side error vocabulary is not contractually fixed, so
// callers inspect the text rather than a structured code.
func NodeRejected(result string) bool {
	return strings.Contains(result, "error")
}

// Exec performs one command/response round-trip. The first character of
// cmd is the command code; the response must start with the same code or
// Exec fails with CodeMismatchError. Exactly one leading code character
// is stripped from the response and the remainder trimmed.
//
// A result containing the word "error" is a soft failure: the node
// rejected the command. The raw text is still returned, with a logged
// warning, so the caller keeps the diagnostic content.
func (c *Client) Exec(cmd string) (string, error) {
	if cmd == "" {
		return "", bus.ErrEmptyCommand
	}
	code := cmd[0]

	c.lock.Lock()
	err := c.node.Send(cmd)
	var txt string
	if err == nil {
		txt, err = c.node.Receive()
	}
	c.lock.Unlock()
	if err != nil {
		return "", err
	}

	if len(txt) == 0 || txt[0] != code {
		return "", &CodeMismatchError{Code: code, Response: txt}
	}
	result := strings.TrimSpace(txt[1:])
	if NodeRejected(result) {
		glog.Warningf("node %c rejected command %q: %q", c.node.ID(), cmd, result)
	}
	return result, nil
}
