package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Node is a read-only view of one syntax-tree node, handed to collector
// callbacks during a visit.
type Node struct {
	inner *sitter.Node
	src   []byte
}

// Text returns the node's source text.
func (n Node) Text() string { return n.inner.Content(n.src) }

// HasReturnAnnotation reports whether a function definition declares a
// return type. False for non-function nodes.
func (n Node) HasReturnAnnotation() bool {
	return n.inner.ChildByFieldName("return_type") != nil
}

// Param is one declared function parameter.
type Param struct {
	Name      string
	Annotated bool
}

// DefaultParameters returns the function's parameters that carry default
// values, in declaration order.
func (n Node) DefaultParameters() []Param { return n.parameters(true) }

// PlainParameters returns the function's parameters without default values,
// in declaration order.
func (n Node) PlainParameters() []Param { return n.parameters(false) }

func (n Node) parameters(withDefault bool) []Param {
	list := n.inner.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}
	var params []Param
	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)
		var param Param
		var hasDefault bool
		switch child.Type() {
		case "identifier":
			param = Param{Name: child.Content(n.src)}
		case "typed_parameter":
			param = Param{Name: paramName(child, n.src), Annotated: true}
		case "default_parameter":
			hasDefault = true
			param = Param{Name: paramName(child, n.src)}
		case "typed_default_parameter":
			hasDefault = true
			param = Param{Name: paramName(child, n.src), Annotated: true}
		case "keyword_separator", "list_splat_pattern":
			// everything after a bare "*" or "*args" is keyword-only
			// and outside the counted sub-lists
			return params
		default:
			// "**kwargs", the "/" separator and destructuring patterns
			// are not countable parameters
			continue
		}
		if hasDefault == withDefault {
			params = append(params, param)
		}
	}
	return params
}

// paramName extracts the identifier of a typed or defaulted parameter.
// typed_parameter has no "name" field in the grammar, so fall back to the
// first named child.
func paramName(n *sitter.Node, src []byte) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	if n.NamedChildCount() > 0 {
		return n.NamedChild(0).Content(src)
	}
	return ""
}
