package config

import "flag"

func ParseFlags(base Config) Config {
	treePath := flag.String("tree", base.TreePath, "Path to a tree document (JSON); empty uses the builtin demo tree")
	sortMode := flag.String("sort", string(base.SortMode), "Child ordering: tree, size, or name")
	theme := flag.String("theme", base.Theme, "Color theme: dark or light")
	flag.Parse()

	base.TreePath = *treePath
	base.SortMode = domainSortMode(*sortMode, base.SortMode)
	base.Theme = *theme
	return base
}
