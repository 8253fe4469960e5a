package rhash

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

//go:embed names.txt
var names string

// Registry resolves hashes back to names for display. It is read-only after
// NewRegistry returns and can be shared between goroutines.
type Registry struct {
	nameByHash map[uint32]string
}

// NewRegistry hashes every catalog entry. When two names collide the later
// one wins; the format itself never needs the reverse mapping.
func NewRegistry(catalog []string) *Registry {
	return &Registry{
		nameByHash: lo.SliceToMap(
			catalog,
			func(name string) (uint32, string) {
				return HashString(name), name
			},
		),
	}
}

func (r *Registry) NameOf(hash uint32) (string, bool) {
	if r == nil {
		return "", false
	}
	name, ok := r.nameByHash[hash]
	return name, ok
}

// Label is the catalog name of hash, or its hex form when unknown.
func (r *Registry) Label(hash uint32) string {
	if name, ok := r.NameOf(hash); ok {
		return name
	}
	return fmt.Sprintf("0x%08X", hash)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.nameByHash)
}

// ParseCatalog reads one name per line. Blank lines and lines starting with
// '#' are dropped.
func ParseCatalog(reader io.Reader) ([]string, error) {
	catalog := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		catalog = append(catalog, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "rhash.ParseCatalog error")
	}
	return lo.Uniq(catalog), nil
}

func DefaultCatalog() []string {
	catalog, _ := ParseCatalog(strings.NewReader(names))
	return catalog
}
