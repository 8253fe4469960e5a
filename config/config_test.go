package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"re-savior/rsave/rcrypt"
	"re-savior/rsave/rentry"
	"re-savior/rsave/rerr"
	"re-savior/rsave/rhash"
)

func write(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, rcrypt.Key, cfg.Key)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Lenient)

	registry, err := cfg.Registry()
	require.NoError(t, err)
	assert.Equal(t, len(rhash.DefaultCatalog()), registry.Len())
}

func TestLoadFile(t *testing.T) {
	names := write(t, "names.txt", "# extra\nMoney\n\nPosition\n")
	path := write(t, "resavior.yaml", `
names_file: `+names+`
lenient: true
log_level: debug
schemas:
  item:
    type: app.ItemSaveData
    fields:
      - {name: ItemDataID, type: UnicodeString}
      - {name: Num, type: int32}
      - {name: WeaponGunSaveData, type: Class}
  broken:
    type: app.Broken
    fields:
      - {name: X, type: Quaternion}
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, rcrypt.Key, cfg.Key, "unset keys keep their default")

	registry, err := cfg.Registry()
	require.NoError(t, err)
	name, ok := registry.NameOf(rhash.HashString("Money"))
	assert.True(t, ok)
	assert.Equal(t, "Money", name)
	_, ok = registry.NameOf(rhash.HashString("ItemDataID"))
	assert.True(t, ok)

	schema, err := cfg.Schema("item")
	require.NoError(t, err)
	assert.Equal(t, rhash.HashString("app.ItemSaveData"), schema.TypeHash)
	require.Len(t, schema.Fields, 3)
	assert.Equal(t, rentry.Int32, schema.Fields[1].Type)
	assert.Equal(t, rentry.Class, schema.Fields[2].Type)

	_, err = cfg.Schema("broken")
	assert.True(t, errors.Is(err, rerr.ErrUnsupportedType))
	_, err = cfg.Schema("missing")
	assert.Error(t, err)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(write(t, "bad.yaml", "lenient: [\n"))
	assert.Error(t, err)

	_, err = LoadFile(write(t, "nokey.yaml", "key: \"\"\n"))
	assert.Error(t, err)

	cfg, err := LoadFile(write(t, "names.yaml", "names_file: /nonexistent/names.txt\n"))
	require.NoError(t, err)
	_, err = cfg.Registry()
	assert.Error(t, err)
}
