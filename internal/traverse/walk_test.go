package traverse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vfstree/internal/domain"
)

// sampleTree is the shared scenario across the package tests:
// /, bin(ls 10, cp 20), etc-note 5.
func sampleTree() domain.Node {
	return domain.NewDir("/",
		domain.NewDir("bin",
			domain.NewFile("ls", 10),
			domain.NewFile("cp", 20),
		),
		domain.NewFile("etc-note", 5),
	)
}

func names(nodes []domain.Node) []string {
	out := make([]string, len(nodes))
	for index, node := range nodes {
		out[index] = node.Name()
	}
	return out
}

func TestListChildren(t *testing.T) {
	root := sampleTree()
	require.Equal(t, []string{"bin", "etc-note"}, names(List(root)))
}

func TestListOnFileIsEmpty(t *testing.T) {
	require.Empty(t, List(domain.NewFile("ls", 10)))
}

func TestAllPreOrder(t *testing.T) {
	got := All(sampleTree())
	require.Equal(t, []string{"/", "bin", "ls", "cp", "etc-note"}, names(got))
}

func TestAllOnFileIsSingleton(t *testing.T) {
	file := domain.NewFile("ls", 10)
	got := All(file)
	require.Len(t, got, 1)
	require.Equal(t, "ls", got[0].Name())
}

func TestAllOnEmptyDir(t *testing.T) {
	got := All(domain.NewDir("empty"))
	require.Equal(t, []string{"empty"}, names(got))
}

func TestAllVisitsEveryNodeOnce(t *testing.T) {
	root := domain.NewDir("r",
		domain.NewDir("a",
			domain.NewDir("b",
				domain.NewFile("c", 1),
			),
			domain.NewFile("d", 2),
		),
		domain.NewDir("e"),
		domain.NewFile("f", 3),
	)
	got := names(All(root))
	require.Equal(t, []string{"r", "a", "b", "c", "d", "e", "f"}, got)

	seen := make(map[string]int)
	for _, name := range got {
		seen[name]++
	}
	for name, count := range seen {
		require.Equal(t, 1, count, "node %s repeated", name)
	}
}

func TestAllLengthMatchesCount(t *testing.T) {
	root := sampleTree()
	files, dirs := Count(root)
	require.Len(t, All(root), files+dirs)
}

func TestAllMatchesRecursiveDefinition(t *testing.T) {
	// [node, All(c1)..., All(c2)...] for every directory.
	root := sampleTree()
	want := []domain.Node{root}
	for _, child := range root.Children() {
		want = append(want, All(child)...)
	}
	require.Equal(t, want, All(root))
}

func TestAllSurvivesDeepTree(t *testing.T) {
	depth := 100000
	node := domain.NewFile("leaf", 1)
	for level := 0; level < depth; level++ {
		node = domain.NewDir("d", node)
	}
	require.Len(t, All(node), depth+1)
}

func TestWalkCarriesPaths(t *testing.T) {
	var paths [][]string
	Walk(sampleTree(), func(path []string, node domain.Node) bool {
		copied := append([]string(nil), path...)
		paths = append(paths, copied)
		return true
	})
	require.Equal(t, [][]string{
		{"/"},
		{"/", "bin"},
		{"/", "bin", "ls"},
		{"/", "bin", "cp"},
		{"/", "etc-note"},
	}, paths)
}

func TestWalkStopsEarly(t *testing.T) {
	var visited []string
	Walk(sampleTree(), func(path []string, node domain.Node) bool {
		visited = append(visited, node.Name())
		return node.Name() != "ls"
	})
	require.Equal(t, []string{"/", "bin", "ls"}, visited)
}
