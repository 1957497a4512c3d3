// assets/embed.go
//
// Embedded SQL migrations for the results database.

package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var FS embed.FS

// Migration is one embedded schema script.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns the embedded sql/*.sql scripts in lexical order.
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(FS, "sql")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, n := range names {
		b, err := fs.ReadFile(FS, "sql/"+n)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: n, SQL: string(b)})
	}
	return out, nil
}
