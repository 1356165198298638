package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Handler receives one node during a traversal.
type Handler func(Node)

// HandlerMap registers at most one handler per node kind.
type HandlerMap map[Kind]Handler

// Visit walks the tree depth-first in pre-order (parent before children,
// children in source order) and fires the registered handler for every node
// whose kind appears in handlers. Kinds without a handler are skipped
// silently.
func Visit(t *Tree, handlers HandlerMap) {
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if kind, ok := classify(n); ok {
			if handler, ok := handlers[kind]; ok {
				handler(Node{inner: n, src: t.src})
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(t.tree.RootNode())
}

// classify maps raw tree-sitter node types onto the Kind enum. The python
// grammar has no dedicated annotated-assignment node; an assignment with a
// "type" field is one.
func classify(n *sitter.Node) (Kind, bool) {
	switch n.Type() {
	case "function_definition":
		return KindFunctionDef, true
	case "assignment":
		// Chained assignments (x = y = 1) nest in the grammar; only the
		// outermost node is the statement, so the inner ones are skipped.
		if parent := n.Parent(); parent != nil && parent.Type() == "assignment" {
			return 0, false
		}
		if n.ChildByFieldName("type") != nil {
			return KindAnnAssign, true
		}
		return KindAssign, true
	case "comment":
		return KindComment, true
	}
	return 0, false
}
