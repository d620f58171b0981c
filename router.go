package blaze

/*
router.go implements the request router (spec §4.8): a
component-keyed dispatch table that decodes a typed request, invokes a
handler, and turns its return value into a response packet. The
route table is read-only after construction and safe for concurrent
Handle/HandleAsync calls (spec §5) - it holds no per-request state, so
a cancelled or dropped handler future is side-effect-free at the
router level.

Go has no sum-typed Result with an error variant baked into the type
system; the idiomatic equivalent a Go handler already returns -
(Resp, error) - is exactly spec §4.8's "result/option wrapper": a
non-nil error is the error branch and is rendered as an Error packet
via the handler wrapper's call to req.Error, while a nil error takes
the success branch through the response type's EncodeBody.
*/

import (
	"context"
	"errors"
	"fmt"
)

// Body lets a concrete request type decode itself from a packet's
// payload (spec §4.8's "decode from packet body" conversion). The
// identity case - the packet itself as the request type - needs no
// such method; see decodeRequest.
type Body interface {
	DecodeBody(r *Reader) error
}

// ResponseBody lets a concrete response type render its payload bytes
// (spec §4.8's "into packet given the request packet" conversion,
// success branch). The router wraps the result with req.Response.
type ResponseBody interface {
	EncodeBody() []byte
}

// Coder lets a handler-returned error carry a specific wire error
// code; otherwise DefaultErrorCode is used.
type Coder interface {
	Code() uint16
}

// DefaultErrorCode is the error code used for a handler error that
// does not implement Coder.
const DefaultErrorCode uint16 = 1

// Handler is the canonical, type-erased handler shape the router
// dispatch table stores. The four arities of spec §4.8 are all
// adapted down to this shape by HandlerXxx below.
type Handler func(ctx context.Context, state any, req Packet) (Packet, error)

// DecodeError wraps a request-body decode failure (spec §7's "Decoding"
// category), distinct from a handler's own application-level error.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return "blaze: router: decoding request: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// MissingHandlerError wraps the packet for which no route was found,
// so a caller can still build a fallback response (spec §4.8 step 1-2,
// §8.2 scenario 5).
type MissingHandlerError struct{ Packet Packet }

func (e *MissingHandlerError) Error() string {
	h := e.Packet.Header
	return fmt.Sprintf("blaze: missing handler for component=%#04x command=%#04x notify=%v",
		h.Component, h.Command, h.Type == TypeNotify)
}
func (e *MissingHandlerError) Unwrap() error { return ErrMissingHandler }

func decodeRequest[Req any](pkt Packet) (Req, error) {
	var req Req
	if p, ok := any(&req).(*Packet); ok {
		*p = pkt
		return req, nil
	}
	if b, ok := any(&req).(Body); ok {
		if err := b.DecodeBody(pkt.Reader()); err != nil {
			var zero Req
			return zero, err
		}
		return req, nil
	}
	var zero Req
	return zero, errOtherf("request type does not implement Body")
}

func encodeResponse[Resp any](resp Resp, req Packet) (Packet, error) {
	if p, ok := any(resp).(Packet); ok {
		return p, nil
	}
	if r, ok := any(resp).(ResponseBody); ok {
		return req.Response(r.EncodeBody()), nil
	}
	return Packet{}, errOtherf("response type does not implement ResponseBody")
}

func toErrorPacket(req Packet, err error) Packet {
	code := DefaultErrorCode
	if c, ok := err.(Coder); ok {
		code = c.Code()
	}
	return req.Error(code, []byte(err.Error()))
}

// HandlerStateRequest adapts shape 1: (state, request) -> response.
func HandlerStateRequest[S, Req, Resp any](fn func(ctx context.Context, state S, req Req) (Resp, error)) Handler {
	return func(ctx context.Context, state any, pkt Packet) (Packet, error) {
		s, _ := state.(S)
		req, err := decodeRequest[Req](pkt)
		if err != nil {
			return Packet{}, &DecodeError{Err: err}
		}
		resp, err := fn(ctx, s, req)
		if err != nil {
			return toErrorPacket(pkt, err), nil
		}
		return encodeResponse(resp, pkt)
	}
}

// HandlerState adapts shape 2: (state) -> response.
func HandlerState[S, Resp any](fn func(ctx context.Context, state S) (Resp, error)) Handler {
	return func(ctx context.Context, state any, pkt Packet) (Packet, error) {
		s, _ := state.(S)
		resp, err := fn(ctx, s)
		if err != nil {
			return toErrorPacket(pkt, err), nil
		}
		return encodeResponse(resp, pkt)
	}
}

// HandlerRequest adapts shape 3: (request) -> response.
func HandlerRequest[Req, Resp any](fn func(ctx context.Context, req Req) (Resp, error)) Handler {
	return func(ctx context.Context, _ any, pkt Packet) (Packet, error) {
		req, err := decodeRequest[Req](pkt)
		if err != nil {
			return Packet{}, &DecodeError{Err: err}
		}
		resp, err := fn(ctx, req)
		if err != nil {
			return toErrorPacket(pkt, err), nil
		}
		return encodeResponse(resp, pkt)
	}
}

// HandlerNoArgs adapts shape 4: () -> response.
func HandlerNoArgs[Resp any](fn func(ctx context.Context) (Resp, error)) Handler {
	return func(ctx context.Context, _ any, pkt Packet) (Packet, error) {
		resp, err := fn(ctx)
		if err != nil {
			return toErrorPacket(pkt, err), nil
		}
		return encodeResponse(resp, pkt)
	}
}

// Router dispatches incoming packets to registered handlers by
// (component, command, notify) routing key. The zero value is not
// usable; build one with NewRouter.
type Router struct {
	table    *ComponentTable
	handlers map[RouteKey]Handler
}

// NewRouter builds a Router resolving routing keys against table.
func NewRouter(table *ComponentTable) *Router {
	return &Router{table: table, handlers: make(map[RouteKey]Handler)}
}

// Register binds a Handler to the (componentID, commandID, notify)
// routing key, looked up by id in the router's ComponentTable. It
// panics if the table has no such route - this is a construction-time
// wiring error, not a runtime condition (the table is built once,
// before any packet is handled).
func (r *Router) Register(componentID, commandID uint16, notify bool, h Handler) {
	key, ok := r.table.FromValues(componentID, commandID, notify)
	if !ok {
		panic(fmt.Sprintf("blaze: Register: no such route component=%#04x command=%#04x notify=%v", componentID, commandID, notify))
	}
	r.handlers[key] = h
}

// Handle dispatches one packet synchronously (spec §4.8):
//  1. Resolve the routing key from the header; MissingHandlerError if
//     none exists.
//  2. Look up the handler; MissingHandlerError if absent.
//  3. Decode the request and invoke the handler.
//  4. Convert its result into a response packet mirroring req's
//     header (type=Response, same id) - or an Error packet if the
//     handler itself reported an application error.
func (r *Router) Handle(ctx context.Context, state any, pkt Packet) (Packet, error) {
	key, ok := r.table.FromValues(pkt.Header.Component, pkt.Header.Command, pkt.Header.Type == TypeNotify)
	if !ok {
		return Packet{}, &MissingHandlerError{Packet: pkt}
	}
	h, ok := r.handlers[key]
	if !ok {
		return Packet{}, &MissingHandlerError{Packet: pkt}
	}
	resp, err := h(ctx, state, pkt)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			logger().Warn().Str("component", key.ComponentName).Str("command", key.CommandName).Err(err).Msg("blaze: router: bad request body")
		}
		return Packet{}, err
	}
	return resp, nil
}

// HandleResult is the outcome of an asynchronous dispatch.
type HandleResult struct {
	Packet Packet
	Err    error
}

// HandleAsync dispatches pkt on its own goroutine, supporting the
// router's no-ordering-guarantee-between-invocations model (spec §5).
// The caller may abandon the returned channel (e.g. on ctx
// cancellation); the router holds no state that needs cleanup.
func (r *Router) HandleAsync(ctx context.Context, state any, pkt Packet) <-chan HandleResult {
	out := make(chan HandleResult, 1)
	go func() {
		resp, err := r.Handle(ctx, state, pkt)
		out <- HandleResult{Packet: resp, Err: err}
	}()
	return out
}
