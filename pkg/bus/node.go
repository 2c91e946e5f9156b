package bus

import (
	"strings"

	"github.com/golang/glog"
)

// Transport is the serial line below the framing layer.
// Encoding is UTF-8 text over raw bytes.
type Transport interface {
	// ResetInput discards bytes already buffered on the input side.
	ResetInput() error
	// Write writes raw bytes.
	Write(p []byte) (int, error)
	// Flush blocks until written bytes are on the wire.
	Flush() error
	// ReadLine reads one newline-terminated line, or whatever accumulated
	// before the transport's read timeout.
	ReadLine() (string, error)
}

// Node addresses one peripheral on the bus.
//
// A Node owns its Transport exclusively for the lifetime of the session.
// Sharing one Transport between multiple Nodes is unsupported: Send clears
// the shared input buffer and an overlapping response would be
// misattributed.
type Node struct {
	id byte
	t  Transport
}

// NewNode creates a Node with a single-character identity. The identity
// '0' is reserved for the controller and rejected here.
func NewNode(id byte, t Transport) (*Node, error) {
	if !ValidID(id) {
		return nil, ErrBadID
	}
	return &Node{id: id, t: t}, nil
}

// ID returns the node identity character.
func (n *Node) ID() byte {
	return n.id
}

// Send wraps cmd in the bus envelope and writes it to the transport.
// Stale input left over from a previous, possibly timed-out exchange is
// discarded first, and the write is flushed before Send returns.
func (n *Node) Send(cmd string) error {
	if cmd == "" {
		return ErrEmptyCommand
	}
	if strings.ContainsAny(cmd, "/!") {
		return &BadCommandError{Cmd: cmd}
	}
	if err := n.t.ResetInput(); err != nil {
		return err
	}
	frame := Wrap(n.id, cmd)
	glog.V(2).Infof("SND %q", frame)
	if _, err := n.t.Write(frame); err != nil {
		return err
	}
	return n.t.Flush()
}

// Receive reads one line from the transport and unwraps it as a
// controller response. It blocks until a line is available or the
// transport's read timeout elapses; a timed-out short read fails
// validation in Unwrap.
func (n *Node) Receive() (string, error) {
	line, err := n.t.ReadLine()
	if err != nil {
		return "", err
	}
	glog.V(2).Infof("RCV %q", line)
	return Unwrap(strings.TrimSpace(line))
}
