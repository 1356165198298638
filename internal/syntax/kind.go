package syntax

// Kind identifies the node varieties that collectors can register handlers
// for. Raw tree-sitter kinds outside this set are never dispatched.
type Kind int

const (
	// KindFunctionDef is a function definition, at any nesting depth.
	KindFunctionDef Kind = iota
	// KindAssign is a plain assignment without a type annotation.
	KindAssign
	// KindAnnAssign is an assignment that carries a type annotation.
	KindAnnAssign
	// KindComment is a source comment, including its leading "#".
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindFunctionDef:
		return "function_def"
	case KindAssign:
		return "assign"
	case KindAnnAssign:
		return "ann_assign"
	case KindComment:
		return "comment"
	}
	return "unknown"
}
