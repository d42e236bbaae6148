package state

import (
	"sort"
	"strings"

	"vfstree/internal/config"
	"vfstree/internal/domain"
	"vfstree/internal/traverse"
)

type Preferences struct {
	SortMode domain.SortMode
	Theme    string
}

// Row is one visible line of the tree panel: a node plus its
// slash-joined path (the node's identity) and indentation depth.
type Row struct {
	Node  domain.Node
	Path  string
	Depth int
}

// State carries the browser's navigation over an immutable tree. The
// tree itself never changes; only cursor, expansion, and filters do.
type State struct {
	Root     domain.Node
	Cursor   int
	Expanded map[string]bool
	Prefs    Preferences
	Query    string
}

func NewState(root domain.Node, cfg config.Config) *State {
	browseState := &State{
		Root:     root,
		Expanded: make(map[string]bool),
		Prefs: Preferences{
			SortMode: cfg.SortMode,
			Theme:    cfg.Theme,
		},
	}
	browseState.Expanded[root.Name()] = true
	return browseState
}

// VisibleNodes lists the rows the tree panel shows: the expanded
// portion of the tree in display order, optionally narrowed to rows
// whose name matches the query (directories stay when a descendant
// matches, so the path to a hit remains visible).
func (browseState *State) VisibleNodes() []Row {
	rows := make([]Row, 0)
	browseState.appendRows(&rows, browseState.Root, browseState.Root.Name(), 0)
	return rows
}

func (browseState *State) appendRows(rows *[]Row, node domain.Node, path string, depth int) {
	filtering := browseState.Query != ""
	if !filtering {
		*rows = append(*rows, Row{Node: node, Path: path, Depth: depth})
		if !node.IsDir() || !browseState.Expanded[path] {
			return
		}
		for _, child := range browseState.sortedChildren(node) {
			browseState.appendRows(rows, child, path+"/"+child.Name(), depth+1)
		}
		return
	}

	if node.IsFile() {
		if browseState.nodeMatches(node) {
			*rows = append(*rows, Row{Node: node, Path: path, Depth: depth})
		}
		return
	}
	children := browseState.sortedChildren(node)
	kept := make([]domain.Node, 0, len(children))
	for _, child := range children {
		if browseState.nodeMatches(child) || browseState.subtreeHasMatch(child) {
			kept = append(kept, child)
		}
	}
	if depth == 0 || browseState.nodeMatches(node) || len(kept) > 0 {
		*rows = append(*rows, Row{Node: node, Path: path, Depth: depth})
		if !browseState.Expanded[path] {
			return
		}
		for _, child := range kept {
			browseState.appendRows(rows, child, path+"/"+child.Name(), depth+1)
		}
	}
}

func (browseState *State) nodeMatches(node domain.Node) bool {
	if browseState.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(node.Name()), strings.ToLower(browseState.Query))
}

func (browseState *State) subtreeHasMatch(node domain.Node) bool {
	for _, candidate := range traverse.All(node) {
		if browseState.nodeMatches(candidate) {
			return true
		}
	}
	return false
}

func (browseState *State) sortedChildren(node domain.Node) []domain.Node {
	children := node.Children()
	if len(children) < 2 || browseState.Prefs.SortMode == domain.SortByTree {
		return children
	}
	less := func(i, j int) bool {
		if children[i].IsDir() != children[j].IsDir() {
			return children[i].IsDir()
		}
		if browseState.Prefs.SortMode == domain.SortByName {
			return children[i].Name() < children[j].Name()
		}
		return displaySize(children[i]) > displaySize(children[j])
	}
	sort.SliceStable(children, less)
	return children
}

// displaySize orders directories by their subtree total, files by
// their own size, matching what the panel prints next to each row.
func displaySize(node domain.Node) int64 {
	if node.IsDir() {
		return traverse.TotalSize(node)
	}
	return node.Size()
}

func (browseState *State) CurrentRow() *Row {
	rows := browseState.VisibleNodes()
	if len(rows) == 0 || browseState.Cursor < 0 || browseState.Cursor >= len(rows) {
		return nil
	}
	row := rows[browseState.Cursor]
	return &row
}

func (browseState *State) MoveCursor(delta int) {
	rows := browseState.VisibleNodes()
	if len(rows) == 0 {
		browseState.Cursor = 0
		return
	}
	next := browseState.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(rows)-1 {
		next = len(rows) - 1
	}
	browseState.Cursor = next
}

func (browseState *State) ToggleExpanded(path string) bool {
	if path == "" {
		return false
	}
	browseState.Expanded[path] = !browseState.Expanded[path]
	return browseState.Expanded[path]
}

func (browseState *State) ExpandAll() {
	traverse.Walk(browseState.Root, func(path []string, node domain.Node) bool {
		if node.IsDir() {
			browseState.Expanded[strings.Join(path, "/")] = true
		}
		return true
	})
}

func (browseState *State) CollapseAll() {
	browseState.Expanded = map[string]bool{browseState.Root.Name(): true}
	browseState.Cursor = 0
}

func (browseState *State) ToggleSortMode() domain.SortMode {
	switch browseState.Prefs.SortMode {
	case domain.SortByTree:
		browseState.Prefs.SortMode = domain.SortBySize
	case domain.SortBySize:
		browseState.Prefs.SortMode = domain.SortByName
	default:
		browseState.Prefs.SortMode = domain.SortByTree
	}
	return browseState.Prefs.SortMode
}

func (browseState *State) ClearQuery() {
	browseState.Query = ""
}

// Locate moves the cursor to the first directory in pre-order holding
// an immediate child with the given name, expanding ancestors so the
// row is visible. Same first-hit rule as traverse.WhereIs.
func (browseState *State) Locate(name string) bool {
	if name == "" {
		return false
	}
	var foundPath []string
	traverse.Walk(browseState.Root, func(path []string, node domain.Node) bool {
		if !node.IsDir() {
			return true
		}
		for index := 0; index < node.ChildCount(); index++ {
			if node.Child(index).Name() == name {
				foundPath = append([]string(nil), path...)
				return false
			}
		}
		return true
	})
	if foundPath == nil {
		return false
	}
	for length := 1; length <= len(foundPath); length++ {
		browseState.Expanded[strings.Join(foundPath[:length], "/")] = true
	}
	target := strings.Join(foundPath, "/")
	for index, row := range browseState.VisibleNodes() {
		if row.Path == target {
			browseState.Cursor = index
			return true
		}
	}
	return false
}
