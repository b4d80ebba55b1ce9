// Package pkg holds the identity of the lox distribution: its name, version
// and authors as shown by --version and the help screen.
//
//nolint:gochecknoglobals
package pkg

// Version is overridden in release builds with
//
//	-ldflags "-X github.com/ardnew/lox/pkg.Version=..."
var Version = "0.3.0"

const (
	// Name is the command name. It also names the per-user configuration
	// and cache directories.
	Name = "lox"
	// Description is the one-line summary printed under the usage line.
	Description = "Tree-walking interpreter for the Lox language"
)

// AuthorInfo identifies one author.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the maintainers.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
