// Package fixture supplies trees to browse: a builtin demo literal
// and a JSON document loader for user-supplied trees.
package fixture

import "vfstree/internal/domain"

// Demo is the builtin tree the browser starts on when no document is
// configured. It is a small unix-flavored layout that exercises every
// shape the operations care about: nesting, an empty directory, a
// file directly under the root, and duplicate names in different
// directories.
func Demo() domain.Node {
	return domain.NewDir("/",
		domain.NewDir("bin",
			domain.NewFile("ls", 10),
			domain.NewFile("cp", 20),
			domain.NewFile("mv", 20),
		),
		domain.NewDir("etc",
			domain.NewFile("hosts", 120),
			domain.NewDir("ssh",
				domain.NewFile("sshd_config", 3300),
			),
		),
		domain.NewDir("home",
			domain.NewDir("alice",
				domain.NewFile("notes.txt", 450),
				domain.NewFile("photo.png", 281000),
				domain.NewDir("projects",
					domain.NewFile("notes.txt", 90),
				),
			),
			domain.NewDir("bob"),
		),
		domain.NewDir("tmp"),
		domain.NewFile("etc-note", 5),
	)
}
