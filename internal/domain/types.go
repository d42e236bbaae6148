package domain

type SortMode string

const (
	SortByTree SortMode = "tree"
	SortBySize SortMode = "size"
	SortByName SortMode = "name"
)
