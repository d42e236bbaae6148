package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"vfstree/internal/domain"
)

const documentVersion = 1

type treeDocument struct {
	Version int       `json:"version"`
	Root    treeEntry `json:"root"`
}

type treeEntry struct {
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	Size     *int64      `json:"size,omitempty"`
	Children []treeEntry `json:"children,omitempty"`
}

// Decode parses a versioned tree document and rebuilds the tree
// through the domain constructors. Documents breaking the node
// invariants (a file with children, a directory with a size, a
// negative size, an unknown kind) are rejected here so traversal
// never meets a malformed tree.
func Decode(data []byte) (domain.Node, error) {
	var document treeDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return domain.Node{}, fmt.Errorf("parse tree document: %w", err)
	}
	if document.Version != documentVersion {
		return domain.Node{}, fmt.Errorf("unsupported tree document version %d", document.Version)
	}
	return buildNode(document.Root, document.Root.Name)
}

func buildNode(entry treeEntry, path string) (domain.Node, error) {
	switch entry.Kind {
	case "file":
		if len(entry.Children) > 0 {
			return domain.Node{}, fmt.Errorf("file %q has children", path)
		}
		var size int64
		if entry.Size != nil {
			size = *entry.Size
		}
		if size < 0 {
			return domain.Node{}, fmt.Errorf("file %q has negative size %d", path, size)
		}
		return domain.NewFile(entry.Name, size), nil
	case "dir":
		if entry.Size != nil {
			return domain.Node{}, fmt.Errorf("directory %q has a size", path)
		}
		children := make([]domain.Node, 0, len(entry.Children))
		for _, childEntry := range entry.Children {
			child, err := buildNode(childEntry, path+"/"+childEntry.Name)
			if err != nil {
				return domain.Node{}, err
			}
			children = append(children, child)
		}
		return domain.NewDir(entry.Name, children...), nil
	default:
		return domain.Node{}, fmt.Errorf("node %q has unknown kind %q", path, entry.Kind)
	}
}

// Encode renders a tree as a document Decode accepts.
func Encode(root domain.Node) ([]byte, error) {
	document := treeDocument{
		Version: documentVersion,
		Root:    buildEntry(root),
	}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tree document: %w", err)
	}
	return data, nil
}

func buildEntry(node domain.Node) treeEntry {
	if node.IsFile() {
		size := node.Size()
		return treeEntry{Name: node.Name(), Kind: "file", Size: &size}
	}
	entry := treeEntry{Name: node.Name(), Kind: "dir"}
	for _, child := range node.Children() {
		entry.Children = append(entry.Children, buildEntry(child))
	}
	return entry
}

// Load reads a tree document from disk.
func Load(path string) (domain.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Node{}, fmt.Errorf("read tree document: %w", err)
	}
	return Decode(data)
}
