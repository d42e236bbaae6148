package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vfstree/internal/config"
	"vfstree/internal/domain"
)

func testTree() domain.Node {
	return domain.NewDir("/",
		domain.NewDir("bin",
			domain.NewFile("ls", 10),
			domain.NewFile("cp", 20),
		),
		domain.NewFile("etc-note", 5),
	)
}

func newTestState(root domain.Node) *State {
	cfg := config.DefaultConfig()
	cfg.SortMode = domain.SortByTree
	return NewState(root, cfg)
}

func rowPaths(rows []Row) []string {
	paths := make([]string, len(rows))
	for index, row := range rows {
		paths[index] = row.Path
	}
	return paths
}

func TestVisibleNodesRootCollapsedChildren(t *testing.T) {
	browseState := newTestState(testTree())
	rows := browseState.VisibleNodes()
	require.Equal(t, []string{"/", "//bin", "//etc-note"}, rowPaths(rows))
	require.Equal(t, 0, rows[0].Depth)
	require.Equal(t, 1, rows[1].Depth)
}

func TestVisibleNodesExpanded(t *testing.T) {
	browseState := newTestState(testTree())
	browseState.ToggleExpanded("//bin")
	rows := browseState.VisibleNodes()
	require.Equal(t, []string{"/", "//bin", "//bin/ls", "//bin/cp", "//etc-note"}, rowPaths(rows))
}

func TestToggleExpandedCollapses(t *testing.T) {
	browseState := newTestState(testTree())
	require.True(t, browseState.ToggleExpanded("//bin"))
	require.False(t, browseState.ToggleExpanded("//bin"))
	require.Len(t, browseState.VisibleNodes(), 3)
}

func TestMoveCursorClamps(t *testing.T) {
	browseState := newTestState(testTree())
	browseState.MoveCursor(-5)
	require.Equal(t, 0, browseState.Cursor)
	browseState.MoveCursor(99)
	require.Equal(t, 2, browseState.Cursor)
}

func TestCurrentRow(t *testing.T) {
	browseState := newTestState(testTree())
	browseState.MoveCursor(1)
	row := browseState.CurrentRow()
	require.NotNil(t, row)
	require.Equal(t, "bin", row.Node.Name())
}

func TestSortBySizePutsDirsFirst(t *testing.T) {
	root := domain.NewDir("/",
		domain.NewFile("big", 100),
		domain.NewDir("small-dir", domain.NewFile("inner", 1)),
	)
	browseState := newTestState(root)
	browseState.Prefs.SortMode = domain.SortBySize
	rows := browseState.VisibleNodes()
	require.Equal(t, "small-dir", rows[1].Node.Name())
	require.Equal(t, "big", rows[2].Node.Name())
}

func TestSortByNameKeepsStableTies(t *testing.T) {
	root := domain.NewDir("/",
		domain.NewFile("b", 1),
		domain.NewFile("a", 2),
	)
	browseState := newTestState(root)
	browseState.Prefs.SortMode = domain.SortByName
	rows := browseState.VisibleNodes()
	require.Equal(t, "a", rows[1].Node.Name())
	require.Equal(t, "b", rows[2].Node.Name())
}

func TestToggleSortModeCycles(t *testing.T) {
	browseState := newTestState(testTree())
	browseState.Prefs.SortMode = domain.SortByTree
	require.Equal(t, domain.SortBySize, browseState.ToggleSortMode())
	require.Equal(t, domain.SortByName, browseState.ToggleSortMode())
	require.Equal(t, domain.SortByTree, browseState.ToggleSortMode())
}

func TestQueryFiltersRowsKeepingAncestors(t *testing.T) {
	browseState := newTestState(testTree())
	browseState.ExpandAll()
	browseState.Query = "ls"
	rows := browseState.VisibleNodes()
	require.Equal(t, []string{"/", "//bin", "//bin/ls"}, rowPaths(rows))
	browseState.ClearQuery()
	require.Len(t, browseState.VisibleNodes(), 5)
}

func TestExpandAllCollapseAll(t *testing.T) {
	browseState := newTestState(testTree())
	browseState.ExpandAll()
	require.Len(t, browseState.VisibleNodes(), 5)
	browseState.CollapseAll()
	require.Len(t, browseState.VisibleNodes(), 3)
}

func TestLocateJumpsToContainingDir(t *testing.T) {
	browseState := newTestState(testTree())
	require.True(t, browseState.Locate("ls"))
	row := browseState.CurrentRow()
	require.NotNil(t, row)
	require.Equal(t, "bin", row.Node.Name())
	require.True(t, browseState.Expanded["//bin"])
}

func TestLocateAbsentName(t *testing.T) {
	browseState := newTestState(testTree())
	require.False(t, browseState.Locate("cat"))
	require.False(t, browseState.Locate(""))
}

func TestLocateFirstPreOrderHit(t *testing.T) {
	root := domain.NewDir("/",
		domain.NewDir("earlier", domain.NewFile("dup", 1)),
		domain.NewDir("later", domain.NewFile("dup", 2)),
	)
	browseState := newTestState(root)
	require.True(t, browseState.Locate("dup"))
	row := browseState.CurrentRow()
	require.NotNil(t, row)
	require.Equal(t, "earlier", row.Node.Name())
}
