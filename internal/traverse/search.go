package traverse

import "vfstree/internal/domain"

// WhereIs locates the directory holding an immediate child named
// name. Directories are checked in pre-order and the first hit wins,
// so a name appearing under several directories resolves
// deterministically. Absence is the false return, never an error.
func WhereIs(root domain.Node, name string) (domain.Node, bool) {
	for _, candidate := range All(root) {
		if !candidate.IsDir() {
			continue
		}
		for _, child := range List(candidate) {
			if child.Name() == name {
				return candidate, true
			}
		}
	}
	return domain.Node{}, false
}
