package fieldpath

import (
	"fmt"
	"strings"
)

// SegmentKind identifies what kind of location a segment records.
type SegmentKind int

const (
	// KindField is a named field of an object schema.
	KindField SegmentKind = iota
	// KindIndex is a position inside a list, set, or tuple.
	KindIndex
	// KindKey is a key inside a string-keyed mapping.
	KindKey
	// KindMember is a member position inside a union.
	KindMember
)

// Segment is one step of a Path.
type Segment struct {
	Kind  SegmentKind
	Name  string // field name or map key
	Index int    // sequence index or union member position
}

func (s Segment) String() string {
	switch s.Kind {
	case KindField:
		return "." + s.Name
	case KindIndex:
		return fmt.Sprintf("[%d]", s.Index)
	case KindKey:
		return fmt.Sprintf("[%q]", s.Name)
	case KindMember:
		return fmt.Sprintf("<member %d>", s.Index)
	default:
		return ""
	}
}

// Path is an append-only location inside a configuration document.
// The zero value is an empty path. Extending a Path never mutates the
// receiver; every extension returns an independent copy.
type Path struct {
	root     string
	segments []Segment
}

// Root returns a Path anchored at the named schema.
func Root(name string) Path {
	return Path{root: name}
}

// Field returns a copy of p extended with a field-name segment.
func (p Path) Field(name string) Path {
	return p.push(Segment{Kind: KindField, Name: name})
}

// Index returns a copy of p extended with a sequence-index segment.
func (p Path) Index(i int) Path {
	return p.push(Segment{Kind: KindIndex, Index: i})
}

// Key returns a copy of p extended with a map-key segment.
func (p Path) Key(key string) Path {
	return p.push(Segment{Kind: KindKey, Name: key})
}

// Member returns a copy of p extended with a union-member segment.
func (p Path) Member(i int) Path {
	return p.push(Segment{Kind: KindMember, Index: i})
}

func (p Path) push(seg Segment) Path {
	segments := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)

	return Path{
		root:     p.root,
		segments: append(segments, seg),
	}
}

// Segments returns a copy of the recorded segments, outermost first.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)

	return out
}

// Len returns the number of recorded segments, excluding the root.
func (p Path) Len() int {
	return len(p.segments)
}

// Leaf returns the innermost segment and true, or a zero Segment and
// false when the path holds only its root.
func (p Path) Leaf() (Segment, bool) {
	if len(p.segments) == 0 {
		return Segment{}, false
	}

	return p.segments[len(p.segments)-1], true
}

// String renders the path outermost-first, e.g. "Config.servers[2].port".
func (p Path) String() string {
	var sb strings.Builder

	sb.WriteString(p.root)

	for _, seg := range p.segments {
		sb.WriteString(seg.String())
	}

	return sb.String()
}
