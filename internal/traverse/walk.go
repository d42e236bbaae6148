// Package traverse holds the pure read operations over a domain tree:
// pre-order enumeration, filtering, folds, and name search. Every
// function is total; trees are immutable so no coordination is needed
// between concurrent callers.
package traverse

import "vfstree/internal/domain"

// List returns the immediate children of a node. A file has none;
// asking is not an error, the answer is just empty.
func List(node domain.Node) []domain.Node {
	return node.Children()
}

// All enumerates the subtree rooted at node in pre-order: the node
// itself first, then each child's subtree in child order. The walk
// uses an explicit stack, children pushed in reverse, so the output
// matches naive recursion without growing the call stack on deep
// trees.
func All(node domain.Node) []domain.Node {
	out := make([]domain.Node, 0, 1)
	stack := []domain.Node{node}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, current)
		for index := current.ChildCount() - 1; index >= 0; index-- {
			stack = append(stack, current.Child(index))
		}
	}
	return out
}

// Walk visits the subtree in the same pre-order as All, handing each
// visit the name path from the root. Returning false from fn stops
// the walk.
func Walk(node domain.Node, fn func(path []string, node domain.Node) bool) {
	type frame struct {
		node domain.Node
		path []string
	}
	stack := []frame{{node: node, path: []string{node.Name()}}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(current.path, current.node) {
			return
		}
		for index := current.node.ChildCount() - 1; index >= 0; index-- {
			child := current.node.Child(index)
			childPath := make([]string, len(current.path)+1)
			copy(childPath, current.path)
			childPath[len(current.path)] = child.Name()
			stack = append(stack, frame{node: child, path: childPath})
		}
	}
}
