package collector

import "pystats/internal/syntax"

// AnnotationCollector counts how many function returns, parameters and
// assignments carry type annotations versus how many do not.
type AnnotationCollector struct {
	returnCount             int
	annotatedReturnCount    int
	globalsCount            int
	annotatedGlobalsCount   int
	parameterCount          int
	annotatedParameterCount int
}

// NewAnnotationCollector creates a collector with all counters at zero.
func NewAnnotationCollector() *AnnotationCollector {
	return &AnnotationCollector{}
}

func (c *AnnotationCollector) Handlers() syntax.HandlerMap {
	return syntax.HandlerMap{
		syntax.KindFunctionDef: c.visitFunctionDef,
		syntax.KindAssign:      c.visitAssign,
		syntax.KindAnnAssign:   c.visitAnnAssign,
	}
}

// visitFunctionDef fires for every function definition regardless of nesting
// depth. Parameters with defaults are processed before plain ones.
func (c *AnnotationCollector) visitFunctionDef(n syntax.Node) {
	c.returnCount++
	if n.HasReturnAnnotation() {
		c.annotatedReturnCount++
	}

	c.checkParameterAnnotations(n.DefaultParameters())
	c.checkParameterAnnotations(n.PlainParameters())
}

func (c *AnnotationCollector) checkParameterAnnotations(params []syntax.Param) {
	for _, param := range params {
		c.parameterCount++
		if param.Annotated {
			c.annotatedParameterCount++
		}
	}
}

// visitAssign fires for every plain assignment; class-level and module-level
// assignments are not distinguished here.
func (c *AnnotationCollector) visitAssign(syntax.Node) {
	c.globalsCount++
}

// visitAnnAssign counts an annotated assignment toward both the total and
// the annotated subset.
func (c *AnnotationCollector) visitAnnAssign(syntax.Node) {
	c.globalsCount++
	c.annotatedGlobalsCount++
}

func (c *AnnotationCollector) Report() map[string]int {
	return map[string]int{
		"return_count":              c.returnCount,
		"annotated_return_count":    c.annotatedReturnCount,
		"globals_count":             c.globalsCount,
		"annotated_globals_count":   c.annotatedGlobalsCount,
		"parameter_count":           c.parameterCount,
		"annotated_parameter_count": c.annotatedParameterCount,
	}
}
