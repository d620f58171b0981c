package blaze

/*
packet.go implements the Packet abstraction (spec §3.3, §4.7): a
Header plus an opaque payload body. Packets own their payload bytes;
a Packet value is cheap to copy since Go slices already share their
backing array - Clone returns a new Packet value over the same bytes
without a defensive copy, matching spec §3.5's reference-counted-slice
ownership model.
*/

import (
	"fmt"
	"io"
)

// Packet is a decoded or to-be-encoded Blaze packet: header fields
// plus an opaque payload body.
type Packet struct {
	Header  Header
	Payload []byte
}

// Clone returns a shallow copy of p. The returned Packet shares the
// same backing payload array; mutating one's Payload in place (not
// reslicing) is visible to the other.
func (p Packet) Clone() Packet { return p }

// Reader returns a *Reader positioned at the start of the packet's
// payload, for decoding a typed body.
func (p Packet) Reader() *Reader { return NewReader(p.Payload) }

func (p Packet) String() string {
	return fmt.Sprintf("Packet{%s component=%#04x command=%#04x error=%#04x id=%#04x len=%d}",
		p.Header.Type, p.Header.Component, p.Header.Command, p.Header.Error, p.Header.ID, len(p.Payload))
}

// Encode appends the packet's wire bytes (header + payload) to dst and
// returns the result. The header's extension flag and extended-length
// suffix are kept coherent with len(p.Payload) regardless of what
// p.Header.Length previously held (spec I7).
func (p Packet) Encode(dst []byte) []byte {
	h := p.Header
	h.Length = uint32(len(p.Payload))
	dst = h.encode(dst)
	dst = append(dst, p.Payload...)
	return dst
}

// DecodePacket synchronously decodes one packet from r: the fixed
// header, the optional extended-length suffix, then the payload body
// (spec §4.7). It blocks until a full packet (or an error) is
// available.
func DecodePacket(r io.Reader) (Packet, error) {
	hdr := make([]byte, headerLen)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return Packet{}, err
	}

	extFlag := hdr[9]
	low16 := uint16(hdr[0])<<8 | uint16(hdr[1])

	var length uint32
	if extFlag == extFlagPresent {
		ext := make([]byte, extLen)
		if _, err := io.ReadFull(r, ext); err != nil {
			return Packet{}, err
		}
		length = uint32(ext[0])<<24 | uint32(ext[1])<<16 | uint32(low16)
	} else {
		length = uint32(low16)
	}

	h := Header{
		Component: uint16(hdr[2])<<8 | uint16(hdr[3]),
		Command:   uint16(hdr[4])<<8 | uint16(hdr[5]),
		Error:     uint16(hdr[6])<<8 | uint16(hdr[7]),
		Type:      PacketType(hdr[8]),
		ID:        uint16(hdr[10])<<8 | uint16(hdr[11]),
		Length:    length,
	}

	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Packet{}, err
		}
	}
	return Packet{Header: h, Payload: payload}, nil
}

// NewRequest builds a Request packet addressed to component/command,
// carrying id as the caller-supplied correlation id (spec §4.7: a
// monotonic counter or generator is the caller's responsibility).
func NewRequest(component, command Kind16, id uint16, payload []byte) Packet {
	return Packet{
		Header: Header{
			Component: uint16(component),
			Command:   uint16(command),
			Type:      TypeRequest,
			ID:        id,
		},
		Payload: payload,
	}
}

// NewNotify builds a Notify packet (id is always zero - spec §4.7).
func NewNotify(component, command Kind16, payload []byte) Packet {
	return Packet{
		Header: Header{
			Component: uint16(component),
			Command:   uint16(command),
			Type:      TypeNotify,
		},
		Payload: payload,
	}
}

// Response builds a Response packet that mirrors req's header fields
// (component, command, id), setting the type to Response, clearing the
// error code, and carrying payload (spec §4.7).
func (req Packet) Response(payload []byte) Packet {
	h := req.Header
	h.Type = TypeResponse
	h.Error = 0
	return Packet{Header: h, Payload: payload}
}

// Error builds an Error packet that mirrors req's header fields,
// setting the type to Error and the error code to code (spec §4.7).
func (req Packet) Error(code uint16, payload []byte) Packet {
	h := req.Header
	h.Type = TypeError
	h.Error = code
	return Packet{Header: h, Payload: payload}
}

// Kind16 is a routing-key numeric id (component or command), the type
// of the component and command parameters of NewRequest/NewNotify.
// Both parameters share this type, so it does not stop them from being
// passed in swapped order.
type Kind16 uint16
