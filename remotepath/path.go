// Package remotepath provides an immutable, canonical representation of
// paths in the SiteForge remote namespace. Remote "folders" are implied
// by key prefixes, so a path is just an ordered list of non-empty,
// trimmed segments joined by "/".
package remotepath

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Separator joins path segments in the wire form.
const Separator = "/"

var ErrInvalidInput = errors.New("remotepath: unsupported input type")

// Path is a canonical remote path. The zero value is the root.
// Path values are immutable; transforms return a new Path.
type Path struct {
	segments []string
}

// New builds a canonical Path from segments. Each segment is split on
// the separator, trimmed, and empty pieces are dropped, so New("a/b"),
// New("a", "b") and New(" a ", "", "b") are all equivalent.
func New(segments ...string) Path {
	var out []string
	for _, seg := range segments {
		for _, part := range strings.Split(seg, Separator) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return Path{segments: out}
}

// Parse builds a canonical Path from its joined string form.
// A string of only separators (e.g. "///") parses to the root.
func Parse(s string) Path {
	return New(s)
}

// Sanitize canonicalizes any accepted path representation: a Path
// (returned as-is, making Sanitize idempotent), a joined string, a
// segment slice, or a mixed slice of strings and numbers. Anything
// else fails with ErrInvalidInput.
func Sanitize(v any) (Path, error) {
	switch x := v.(type) {
	case Path:
		return x, nil
	case string:
		return Parse(x), nil
	case []string:
		return New(x...), nil
	case []any:
		segs := make([]string, 0, len(x))
		for _, elem := range x {
			s, err := coerceSegment(elem)
			if err != nil {
				return Path{}, err
			}
			segs = append(segs, s)
		}
		return New(segs...), nil
	default:
		return Path{}, fmt.Errorf("%w: %T", ErrInvalidInput, v)
	}
}

func coerceSegment(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("%w: segment %T", ErrInvalidInput, v)
	}
}

// Append returns a new Path with the sanitized segments added.
// The receiver is never modified.
func (p Path) Append(segments ...string) Path {
	return p.Join(New(segments...))
}

// Join returns a new Path that is the concatenation of p and other.
func (p Path) Join(other Path) Path {
	if other.IsEmpty() {
		return p
	}
	if p.IsEmpty() {
		return other
	}
	merged := make([]string, 0, len(p.segments)+len(other.segments))
	merged = append(merged, p.segments...)
	merged = append(merged, other.segments...)
	return Path{segments: merged}
}

// Segments returns a copy of the canonical segment list.
func (p Path) Segments() []string {
	return slices.Clone(p.segments)
}

// String returns the separator-joined wire form. Root is "".
func (p Path) String() string {
	return strings.Join(p.segments, Separator)
}

// IsEmpty reports whether p is the root. Callers omit the path query
// parameter entirely for the root instead of sending an empty string.
func (p Path) IsEmpty() bool {
	return len(p.segments) == 0
}
