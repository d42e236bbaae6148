package traverse

import "vfstree/internal/domain"

// OnlyFiles is All restricted to file nodes, relative order kept.
func OnlyFiles(node domain.Node) []domain.Node {
	all := All(node)
	files := make([]domain.Node, 0, len(all))
	for _, candidate := range all {
		if candidate.IsFile() {
			files = append(files, candidate)
		}
	}
	return files
}

// TotalSize sums file sizes across the subtree. A subtree with no
// files totals 0.
func TotalSize(node domain.Node) int64 {
	var total int64
	for _, file := range OnlyFiles(node) {
		total += file.Size()
	}
	return total
}

// LargestSmallest finds the extremes among the subtree's files in one
// pass. No files gives an empty result, a single file gives just that
// file, otherwise the result is [smallest, largest]. Strict
// comparisons keep the first pre-order occurrence on size ties.
func LargestSmallest(node domain.Node) []domain.Node {
	files := OnlyFiles(node)
	if len(files) == 0 {
		return nil
	}
	smallest := files[0]
	largest := files[0]
	for _, file := range files[1:] {
		if file.Size() < smallest.Size() {
			smallest = file
		}
		if file.Size() > largest.Size() {
			largest = file
		}
	}
	if len(files) == 1 {
		return []domain.Node{files[0]}
	}
	return []domain.Node{smallest, largest}
}

// Count reports how many files and directories the subtree holds,
// the node itself included.
func Count(node domain.Node) (files int, dirs int) {
	for _, candidate := range All(node) {
		if candidate.IsDir() {
			dirs++
		} else {
			files++
		}
	}
	return files, dirs
}
