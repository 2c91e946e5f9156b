package bus

import (
	"strings"

	"github.com/golang/glog"
)

// Envelope delimiters on the wire.
const (
	FrameStart  byte = '/'
	FrameEnd    byte = '!'
	ResponseEnd byte = '#'

	// ControllerID is the reserved identity of the controlling node.
	ControllerID byte = '0'
)

const responsePrefix = "/0"

// ValidID checks if id is usable as a peripheral node identity.
// The controller identity and the envelope delimiters are excluded.
func ValidID(id byte) bool {
	if id <= ' ' || id > '~' {
		return false
	}
	switch id {
	case ControllerID, FrameStart, FrameEnd, ResponseEnd:
		return false
	}
	return true
}

// Wrap builds the outgoing frame bytes for a command addressed to id.
func Wrap(id byte, cmd string) []byte {
	b := make([]byte, 0, len(cmd)+4)
	b = append(b, FrameStart, id)
	b = append(b, cmd...)
	b = append(b, FrameEnd, '\n')
	return b
}

// Unwrap validates a received line against the controller envelope and
// strips the markers: the leading "/0" and the trailing '#', each only at
// its first occurrence. The remaining text is trimmed of whitespace.
//
// A line without the "/0" prefix fails with InvalidFrameError. A line with
// the prefix but no '#' is incomplete: it is reported via log and the
// stripped text is returned best-effort, since the transport's line reader
// already terminated it.
func Unwrap(line string) (string, error) {
	if !strings.HasPrefix(line, responsePrefix) {
		return "", &InvalidFrameError{Raw: line}
	}
	txt := line[len(responsePrefix):]
	if i := strings.IndexByte(txt, ResponseEnd); i >= 0 {
		txt = txt[:i] + txt[i+1:]
	} else {
		glog.Warningf("incomplete response: %q", line)
	}
	return strings.TrimSpace(txt), nil
}
