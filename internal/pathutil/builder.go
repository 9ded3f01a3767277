package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder builds dotted document locations such as
// "paths./pets.get.parameters[status].schema" incrementally.
// Segments are pushed and popped while walking; the string is only
// materialized when String is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a dot-separated segment.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
	if len(p.segments) > 1 {
		p.length++ // For dot separator
	}
	p.length += len(segment)
}

// PushIndex adds an index segment: "[0]", "[1]", etc.
func (p *PathBuilder) PushIndex(i int) {
	p.pushBracket(strconv.Itoa(i))
}

// PushKey adds a bracketed key segment, e.g. "[status]".
func (p *PathBuilder) PushKey(key string) {
	p.pushBracket(key)
}

func (p *PathBuilder) pushBracket(inner string) {
	seg := "[" + inner + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg) // No dot separator for brackets
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last)
	if len(p.segments) > 0 && !isBracket(last) {
		p.length--
	}
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String materializes the full path.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if !isBracket(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isBracket(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}
