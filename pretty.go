package blaze

/*
pretty.go implements the diagnostic pretty-printer (spec §4.9): a
human-readable dump of a TDF payload for logs. It must never panic on
malformed input - on the first parse error it truncates the output
with a "remaining: N bytes, cause: ..." annotation instead of
propagating the error to the caller, since this is a debugging aid,
not a decode path a caller can act on.

Grounded on the kryptco-kr CLI's use of fatih/color for readable
terminal output (krd/krd.go and friends print colorized diagnostic
state); go-isatty gates color the same way that codebase checks
stdout before colorizing.
*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer renders a TDF payload as an indented, human-readable dump.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w. Color defaults to on iff
// w exposes an Fd() (such as an *os.File) that refers to a terminal;
// callers can override with SetColor.
func NewPrinter(w io.Writer) *Printer {
	enable := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		enable = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Printer{w: w, color: enable}
}

// SetColor overrides the Printer's color default.
func (p *Printer) SetColor(enabled bool) { p.color = enabled }

var (
	tagColor  = color.New(color.FgCyan)
	kindColor = color.New(color.FgYellow)
	valColor  = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed, color.Bold)
)

func (p *Printer) colorize(c *color.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

// Dump writes a line per top-level tagged field in payload, recursing
// into composite kinds, until the reader is exhausted or a parse
// error occurs. A parse error truncates the dump with an annotation
// rather than returning the error to the caller.
func (p *Printer) Dump(payload []byte) {
	r := NewReader(payload)
	for r.Len() > 0 {
		if err := p.dumpField(r, 0); err != nil {
			fmt.Fprintf(p.w, "%s\n", p.colorize(errColor,
				fmt.Sprintf("  remaining: %d bytes, cause: %v", r.Len(), err)))
			return
		}
	}
}

func (p *Printer) dumpField(r *Reader, depth int) error {
	label, kind, err := r.ReadTag()
	if err != nil {
		return err
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(p.w, "%s%s %s ", indent, p.colorize(tagColor, label), p.colorize(kindColor, kind.String()))
	return p.dumpValue(r, kind, depth)
}

func (p *Printer) dumpValue(r *Reader, kind Kind, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch kind {
	case KindVarInt:
		v, err := r.ReadVarUint()
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("%d", v)))
	case KindString:
		s, err := r.ReadString()
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("%q", s)))
	case KindBlob:
		b, err := r.ReadBlob()
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, hexDump(b)))
	case KindFloat:
		f, err := r.ReadF32()
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("%g", f)))
	case KindPair:
		pair, err := DecodePair(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("(%d, %d)", pair[0], pair[1])))
	case KindTriple:
		t, err := DecodeTriple(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("(%d, %d, %d)", t[0], t[1], t[2])))
	case KindVarIntList:
		l, err := DecodeVarIntList(r)
		if err != nil {
			return err
		}
		parts := make([]string, len(l))
		for i, v := range l {
			parts[i] = fmt.Sprintf("0x%X", v)
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, "["+strings.Join(parts, " ")+"]"))
	case KindUnion:
		u, err := DecodeUnion(r)
		if err != nil {
			return err
		}
		if !u.Set {
			fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, "unset"))
			return nil
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("key=0x%02X", u.Key)))
		sub := NewReader(append(EncodeLabelBytes(u.Field.Tag, u.Field.Kind), u.Field.Value...))
		return p.dumpField(sub, depth+1)
	case KindGroup:
		g, err := DecodeGroup(r)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("(2-prefix=%v)", g.TwoPrefix)))
		for _, f := range g.Fields {
			fmt.Fprintf(p.w, "%s  %s %s ", indent, p.colorize(tagColor, f.Tag), p.colorize(kindColor, f.Kind.String()))
			if err := p.dumpValue(NewReader(f.Value), f.Kind, depth+1); err != nil {
				return err
			}
		}
	case KindList:
		// DecodeList requires an expected element kind up front; the
		// printer has no schema, so it decodes the raw shape instead,
		// trusting the element-kind byte already on the wire.
		return p.dumpListAny(r, depth)
	case KindMap:
		return p.dumpMapAny(r, depth)
	default:
		return errUnknownKind(byte(kind))
	}
	return nil
}

// dumpListAny and dumpMapAny decode the List/Map wire shape trusting
// the embedded element-type byte(s) rather than an expected kind -
// the pretty-printer has no schema to validate against.
func (p *Printer) dumpListAny(r *Reader, depth int) error {
	elemKind, err := r.ReadKind()
	if err != nil {
		return err
	}
	n, err := r.ReadUsize()
	if err != nil {
		return err
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("[%s x%d]", elemKind, n)))
	for i := 0; i < n; i++ {
		fmt.Fprintf(p.w, "%s  - ", indent)
		if err := p.dumpValue(r, elemKind, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) dumpMapAny(r *Reader, depth int) error {
	keyKind, err := r.ReadKind()
	if err != nil {
		return err
	}
	valKind, err := r.ReadKind()
	if err != nil {
		return err
	}
	n, err := r.ReadUsize()
	if err != nil {
		return err
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(p.w, "%s\n", p.colorize(valColor, fmt.Sprintf("{%s -> %s, x%d}", keyKind, valKind, n)))
	for i := 0; i < n; i++ {
		fmt.Fprintf(p.w, "%s  k: ", indent)
		if err := p.dumpValue(r, keyKind, depth+1); err != nil {
			return err
		}
		fmt.Fprintf(p.w, "%s  v: ", indent)
		if err := p.dumpValue(r, valKind, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func hexDump(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("0x%02X", c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// EncodeLabelBytes packs label+kind into a standalone 4-byte tag
// sequence - used by the pretty-printer to replay a Union's inner
// field through dumpField without special-casing the no-tag-byte
// path.
func EncodeLabelBytes(label string, kind Kind) []byte {
	t := EncodeTag(label, kind)
	return t[:]
}
