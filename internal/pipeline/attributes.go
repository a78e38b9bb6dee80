package pipeline

import (
	"regexp"
	"strings"
)

var (
	attrIDPattern     = regexp.MustCompile(`#([a-zA-Z0-9_:-]+)`)
	attrOptionPattern = regexp.MustCompile(`(\w+)=(?:"([^"]*)"|'([^']*)'|([^\s}"']+))`)
)

// AttributeBlock is a parsed {...} suffix carrying rendering options for a
// figure, table, or note. Unrecognized options are carried through and
// ignored by the converters, never fatal.
type AttributeBlock struct {
	ID      string // "#fig:key" identifier without the #, "" if none
	Options map[string]string
}

// parseAttributes parses the inside of an attribute block, e.g.
// `#fig:workflow tex_position="t" width=0.8`.
func parseAttributes(s string) AttributeBlock {
	attrs := AttributeBlock{Options: map[string]string{}}

	if m := attrIDPattern.FindStringSubmatch(s); m != nil {
		attrs.ID = m[1]
	}
	for _, m := range attrOptionPattern.FindAllStringSubmatch(s, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if value == "" {
			value = m[4]
		}
		attrs.Options[m[1]] = value
	}
	return attrs
}

// Get returns an option value, or def when absent.
func (a AttributeBlock) Get(key, def string) string {
	if v, ok := a.Options[key]; ok {
		return v
	}
	return def
}

// Label splits the ID into namespace and key. ok is false when there is no
// ID or the ID carries no namespace prefix.
func (a AttributeBlock) Label() (namespace, key string, ok bool) {
	if a.ID == "" {
		return "", "", false
	}
	namespace, key, found := strings.Cut(a.ID, ":")
	if !found || namespace == "" || key == "" {
		return "", "", false
	}
	return namespace, key, true
}
