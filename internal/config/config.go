package config

import "vfstree/internal/domain"

type Config struct {
	TreePath string          `json:"treePath"`
	SortMode domain.SortMode `json:"sortMode"`
	Theme    string          `json:"theme"`
}

type fileConfig struct {
	TreePath *string `json:"treePath"`
	SortMode *string `json:"sortMode"`
	Theme    *string `json:"theme"`
}
