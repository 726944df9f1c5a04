package record

import (
	"fmt"
	"strings"
)

// SegmentKind distinguishes the two ways an error path descends a tree.
type SegmentKind int

const (
	// SegmentField descends into the nested instance at an attribute key.
	// As a path's final segment it names the erroring local attribute.
	SegmentField SegmentKind = iota

	// SegmentMember descends into a collection member by client identifier.
	SegmentMember
)

// Segment is one step of an error path.
type Segment struct {
	Kind SegmentKind

	// Key is the attribute key the segment addresses.
	Key string

	// MemberID is the target member's client identifier. SegmentMember only.
	MemberID string
}

// Path is a structured route through a nested tree: dot-separated field
// segments with collection members addressed as key[clientID]. It is parsed
// once and consumed by both error harvesting and distribution.
type Path []Segment

// ParsePath converts the wire form of an error path ("key.sub",
// "key[cid].sub") into a Path. An empty string, empty segment or unbalanced
// bracket yields ErrBadPath.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q", err, part, s)
		}
		p = append(p, seg)
	}
	return p, nil
}

func parseSegment(part string) (Segment, error) {
	if part == "" {
		return Segment{}, ErrBadPath
	}
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if strings.IndexByte(part, ']') >= 0 {
			return Segment{}, ErrBadPath
		}
		return Segment{Kind: SegmentField, Key: part}, nil
	}
	if open == 0 || !strings.HasSuffix(part, "]") {
		return Segment{}, ErrBadPath
	}
	member := part[open+1 : len(part)-1]
	if member == "" || strings.ContainsAny(member, "[]") {
		return Segment{}, ErrBadPath
	}
	return Segment{
		Kind:     SegmentMember,
		Key:      part[:open],
		MemberID: member,
	}, nil
}

// String renders the wire form of the path.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// String renders the wire form of the segment.
func (s Segment) String() string {
	if s.Kind == SegmentMember {
		return s.Key + "[" + s.MemberID + "]"
	}
	return s.Key
}
