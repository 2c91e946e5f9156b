// Package bus provides RS-485 envelope framing and node addressing.
package bus

// Many nodes share the same multi-drop wire. Every node listens to all
// traffic and acts only on frames addressed to its own single-character
// identity. The controlling node (master) has identity '0'; peripheral
// nodes may use any other printable character, e.g. '1'-'9', 'A'-'Z',
// 'a'-'z'.
//
// Frames are UTF-8 text, one per line:
//
//	Outgoing: '/' + identity + command text + '!' + '\n'
//	Incoming: "/0" + payload + '#'  (from the controller's viewpoint)
//
// The bus is half-duplex by convention: one outstanding request per node,
// strictly send-then-receive. There is no retry or arbitration at this
// layer; a transport read timeout surfaces as a short or empty line that
// fails frame validation downstream.
//
// Producer: node firmware
// Consumer: controller (this package)
