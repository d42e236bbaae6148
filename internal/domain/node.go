package domain

type NodeKind int

const (
	KindFile NodeKind = iota
	KindDir
)

func (kind NodeKind) String() string {
	if kind == KindDir {
		return "dir"
	}
	return "file"
}

// Node is an immutable element of a virtual filesystem tree. The only
// way to build one is through NewFile and NewDir, so a file never
// carries children and a directory never carries a size.
type Node struct {
	name     string
	kind     NodeKind
	size     int64
	children []Node
}

func NewFile(name string, size int64) Node {
	if size < 0 {
		size = 0
	}
	return Node{
		name: name,
		kind: KindFile,
		size: size,
	}
}

func NewDir(name string, children ...Node) Node {
	var owned []Node
	if len(children) > 0 {
		owned = make([]Node, len(children))
		copy(owned, children)
	}
	return Node{
		name:     name,
		kind:     KindDir,
		children: owned,
	}
}

func (node Node) Name() string {
	return node.name
}

func (node Node) Kind() NodeKind {
	return node.kind
}

// Size is the byte count of a file node; directories report 0.
func (node Node) Size() int64 {
	return node.size
}

// Children returns a copy of the ordered child sequence so callers
// cannot reach into the tree. Files have no children.
func (node Node) Children() []Node {
	if len(node.children) == 0 {
		return nil
	}
	owned := make([]Node, len(node.children))
	copy(owned, node.children)
	return owned
}

func (node Node) ChildCount() int {
	return len(node.children)
}

// Child gives positional access without the copy Children makes.
func (node Node) Child(index int) Node {
	return node.children[index]
}

func (node Node) IsDir() bool {
	return node.kind == KindDir
}

func (node Node) IsFile() bool {
	return node.kind == KindFile
}
