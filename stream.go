package blaze

/*
stream.go implements the async/sync codec bridge (spec §4.7, §6.3):
a stream-frame codec for growable byte buffers, plus a goroutine-based
reader loop for net.Conn-shaped transports. This sits above the pure
codec path and is the one place this module does I/O or suspends
(spec §5).
*/

import (
	"bufio"
	"context"
	"io"

	"github.com/google/uuid"
)

// StreamCodec frames Packets off (or onto) a growable byte buffer, the
// shape used by length-prefixed stream-framing frameworks (spec §6.3).
// The zero value is ready to use; it carries no state between calls
// other than what's in the buffer the caller passes in.
type StreamCodec struct{}

// Decode returns a complete Packet and true iff buf holds at least one
// full packet; the consumed bytes are removed from buf. Otherwise it
// returns false with buf untouched - "need more data," never an error
// (spec §7: incomplete-frame conditions are not errors).
func (StreamCodec) Decode(buf *[]byte) (Packet, bool, error) {
	b := *buf
	if len(b) < headerLen {
		return Packet{}, false, nil
	}
	h, hdrLen, err := decodeHeader(b)
	if err != nil {
		return Packet{}, false, nil
	}
	total := hdrLen + int(h.Length)
	if len(b) < total {
		return Packet{}, false, nil
	}

	payload := append([]byte(nil), b[hdrLen:total]...)
	*buf = append(b[:0:0], b[total:]...)
	return Packet{Header: h, Payload: payload}, true, nil
}

// Encode appends packet's wire bytes to buf (spec §6.3). Infallible.
func (StreamCodec) Encode(packet Packet, buf *[]byte) {
	*buf = packet.Encode(*buf)
}

// Conn is the minimal transport shape the stream bridge needs: a
// synchronous byte reader and writer. A net.Conn satisfies it directly;
// establishing that connection (plain TCP vs TLS) is an external
// collaborator's job (spec §1).
type Conn interface {
	io.Reader
	io.Writer
}

// StreamBridge frames Packets onto and off of a Conn using buffered
// I/O, logging under a per-connection correlation id so concurrent
// connections are distinguishable in a shared log stream.
type StreamBridge struct {
	conn   Conn
	br     *bufio.Reader
	connID uuid.UUID
}

// NewStreamBridge wraps conn for framed packet I/O.
func NewStreamBridge(conn Conn) *StreamBridge {
	return &StreamBridge{conn: conn, br: bufio.NewReader(conn), connID: uuid.New()}
}

// ConnID returns the bridge's per-connection correlation id, useful
// for correlating log lines across a long-lived connection.
func (b *StreamBridge) ConnID() uuid.UUID { return b.connID }

// ReadPacket blocks until one full packet has been read from the
// underlying connection, or ctx is done.
func (b *StreamBridge) ReadPacket(ctx context.Context) (Packet, error) {
	type result struct {
		pkt Packet
		err error
	}
	done := make(chan result, 1)
	go func() {
		pkt, err := DecodePacket(b.br)
		done <- result{pkt, err}
	}()

	select {
	case <-ctx.Done():
		return Packet{}, ctx.Err()
	case r := <-done:
		if r.err != nil {
			logger().Warn().Str("conn", b.connID.String()).Err(r.err).Msg("blaze: frame read failed")
		}
		return r.pkt, r.err
	}
}

// WritePacket encodes and writes packet to the underlying connection.
func (b *StreamBridge) WritePacket(packet Packet) error {
	_, err := b.conn.Write(packet.Encode(nil))
	return err
}
