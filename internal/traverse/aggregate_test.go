package traverse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vfstree/internal/domain"
)

func TestOnlyFiles(t *testing.T) {
	got := OnlyFiles(sampleTree())
	require.Equal(t, []string{"ls", "cp", "etc-note"}, names(got))
	for _, node := range got {
		require.True(t, node.IsFile())
	}
}

func TestOnlyFilesIsAllWithoutDirs(t *testing.T) {
	root := sampleTree()
	want := make([]domain.Node, 0)
	for _, node := range All(root) {
		if node.IsFile() {
			want = append(want, node)
		}
	}
	require.Equal(t, want, OnlyFiles(root))
}

func TestOnlyFilesEmptySubtree(t *testing.T) {
	require.Empty(t, OnlyFiles(domain.NewDir("empty", domain.NewDir("inner"))))
}

func TestTotalSize(t *testing.T) {
	require.EqualValues(t, 35, TotalSize(sampleTree()))
}

func TestTotalSizeNoFiles(t *testing.T) {
	require.Zero(t, TotalSize(domain.NewDir("empty")))
}

func TestTotalSizeOfFile(t *testing.T) {
	require.EqualValues(t, 7, TotalSize(domain.NewFile("note", 7)))
}

func TestLargestSmallest(t *testing.T) {
	got := LargestSmallest(sampleTree())
	require.Len(t, got, 2)
	require.Equal(t, "etc-note", got[0].Name())
	require.EqualValues(t, 5, got[0].Size())
	require.Equal(t, "cp", got[1].Name())
	require.EqualValues(t, 20, got[1].Size())
}

func TestLargestSmallestNoFiles(t *testing.T) {
	require.Empty(t, LargestSmallest(domain.NewDir("empty")))
}

func TestLargestSmallestSingleFile(t *testing.T) {
	got := LargestSmallest(domain.NewDir("d", domain.NewFile("only", 3)))
	require.Len(t, got, 1)
	require.Equal(t, "only", got[0].Name())
}

func TestLargestSmallestTieBreaksOnFirstSeen(t *testing.T) {
	root := domain.NewDir("r",
		domain.NewFile("first-min", 1),
		domain.NewFile("first-max", 9),
		domain.NewFile("second-min", 1),
		domain.NewFile("second-max", 9),
	)
	got := LargestSmallest(root)
	require.Len(t, got, 2)
	require.Equal(t, "first-min", got[0].Name())
	require.Equal(t, "first-max", got[1].Name())
}

func TestLargestSmallestAllEqualSizes(t *testing.T) {
	root := domain.NewDir("r",
		domain.NewFile("a", 4),
		domain.NewFile("b", 4),
	)
	got := LargestSmallest(root)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].Name())
	require.Equal(t, "a", got[1].Name())
}

func TestCount(t *testing.T) {
	files, dirs := Count(sampleTree())
	require.Equal(t, 3, files)
	require.Equal(t, 2, dirs)
}

func TestCountOfFile(t *testing.T) {
	files, dirs := Count(domain.NewFile("f", 1))
	require.Equal(t, 1, files)
	require.Zero(t, dirs)
}
