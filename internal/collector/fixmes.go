package collector

import (
	"regexp"

	"pystats/internal/syntax"
)

// DefaultMarker is the suppression directive counted when no override is
// configured.
const DefaultMarker = "pyre-fixme"

// FixmeCollector tallies suppression comments of the form "# <marker>[<code>]:"
// by their embedded code.
type FixmeCollector struct {
	counts  map[string]int
	pattern *regexp.Regexp
}

// NewFixmeCollector creates a collector for the given marker keyword; an
// empty marker falls back to DefaultMarker. The counter map is always a
// fresh one, never shared between instances.
func NewFixmeCollector(marker string) *FixmeCollector {
	if marker == "" {
		marker = DefaultMarker
	}
	return &FixmeCollector{
		counts:  make(map[string]int),
		pattern: regexp.MustCompile(`^# ` + regexp.QuoteMeta(marker) + `\[(\d*)\]:`),
	}
}

func (c *FixmeCollector) Handlers() syntax.HandlerMap {
	return syntax.HandlerMap{
		syntax.KindComment: c.visitComment,
	}
}

// visitComment matches the marker pattern anchored at the start of the
// comment. The code is kept as a string key, preserving leading zeros and
// the empty code of a marker written without digits.
func (c *FixmeCollector) visitComment(n syntax.Node) {
	match := c.pattern.FindStringSubmatch(n.Text())
	if match == nil {
		return
	}
	c.counts[match[1]]++
}

func (c *FixmeCollector) Report() map[string]int {
	out := make(map[string]int, len(c.counts))
	for code, count := range c.counts {
		out[code] = count
	}
	return out
}
