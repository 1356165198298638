package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixmeCollector_CountsByCode(t *testing.T) {
	src := `# pyre-fixme[7]: first
# pyre-fixme[7]: second
# pyre-fixme[35]: other code
# not-a-fixme
x = 1
`
	rep := Run(parseAll(t, src), NewFixmeCollector("")).Report()
	assert.Equal(t, map[string]int{"7": 2, "35": 1}, rep)
}

func TestFixmeCollector_EmptyCodeIsKept(t *testing.T) {
	rep := Run(parseAll(t, "# pyre-fixme[]: no code\n"), NewFixmeCollector("")).Report()
	assert.Equal(t, map[string]int{"": 1}, rep)
}

func TestFixmeCollector_LeadingZerosPreserved(t *testing.T) {
	rep := Run(parseAll(t, "# pyre-fixme[007]: keep the zeros\n"), NewFixmeCollector("")).Report()
	assert.Equal(t, map[string]int{"007": 1}, rep)
}

func TestFixmeCollector_PatternAnchoredAtStart(t *testing.T) {
	src := `# see pyre-fixme[4]: mentioned, not a marker
## pyre-fixme[4]:
# pyre-fixme [4]: space before the bracket
`
	rep := Run(parseAll(t, src), NewFixmeCollector("")).Report()
	assert.Empty(t, rep)
}

func TestFixmeCollector_CustomMarker(t *testing.T) {
	src := "# todo-marker[3]: custom\n# pyre-fixme[3]: different marker\n"
	rep := Run(parseAll(t, src), NewFixmeCollector("todo-marker")).Report()
	assert.Equal(t, map[string]int{"3": 1}, rep)
}

func TestFixmeCollector_FreshStatePerInstance(t *testing.T) {
	trees := parseAll(t, "# pyre-fixme[1]:\n")

	driven := NewFixmeCollector("")
	idle := NewFixmeCollector("")
	Run(trees, driven)

	assert.Equal(t, map[string]int{"1": 1}, driven.Report())
	assert.Empty(t, idle.Report())
}

func TestFixmeCollector_EmptyBatch(t *testing.T) {
	rep := Run(nil, NewFixmeCollector("")).Report()
	assert.NotNil(t, rep)
	assert.Empty(t, rep)
}
