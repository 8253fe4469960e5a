package rhash

import (
	"strings"
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	first := HashString("ItemDataID")
	second := HashString("ItemDataID")
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, HashString("Num"))

	utf16 := []byte{'K', 0, 'e', 0, 'y', 0}
	assert.Equal(t, murmur3.Sum32WithSeed(utf16, 0xFFFFFFFF), HashString("Key"))
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry([]string{"ItemDataID", "Num"})

	name, ok := registry.NameOf(HashString("Num"))
	assert.True(t, ok)
	assert.Equal(t, "Num", name)

	_, ok = registry.NameOf(HashString("SlotNo"))
	assert.False(t, ok)
	assert.Equal(t, "0x0000002A", registry.Label(42))
	assert.Equal(t, 2, registry.Len())

	var nilRegistry *Registry
	assert.Equal(t, "ItemDataID", NewRegistry(DefaultCatalog()).Label(HashString("ItemDataID")))
	assert.Equal(t, 0, nilRegistry.Len())
}

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog(strings.NewReader("# header\nA\n\n  B  \nA\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, catalog)
	assert.Contains(t, DefaultCatalog(), "ItemDataID")
}
