package gomud_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	igomud "github.com/cory-johannsen/hoard/internal/importer/gomud"
)

func writeItem(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestGomudSource_Load(t *testing.T) {
	root := t.TempDir()
	writeItem(t, filepath.Join(root, "items", "consumables-30000"), "30001-small_healing_potion.yaml", potionYAML)
	writeItem(t, filepath.Join(root, "items", "weapons-10000"), "10002-steel_longsword.yaml", swordYAML)
	writeItem(t, filepath.Join(root, "items"), "README.md", "not an item")

	recs, err := igomud.NewSource(nil).Load(root)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "gomud-30001", recs[0].ID)
	assert.Equal(t, "gomud-10002", recs[1].ID)
}

func TestGomudSource_LogsWarningsAndSkips(t *testing.T) {
	root := t.TempDir()
	writeItem(t, filepath.Join(root, "items"), "a.yaml", potionYAML)
	writeItem(t, filepath.Join(root, "items"), "b.yaml", "itemid: 5\nvalue: 1\n")

	core, logs := observer.New(zapcore.WarnLevel)
	recs, err := igomud.NewSource(zap.New(core)).Load(root)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, 1, logs.FilterMessage("gomud item conversion").Len())
}

func TestGomudSource_MissingItemsDir(t *testing.T) {
	_, err := igomud.NewSource(nil).Load(t.TempDir())
	assert.Error(t, err)
}

func TestGomudSource_NoItems(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "items"), 0755))
	_, err := igomud.NewSource(nil).Load(root)
	assert.Error(t, err)
}

func TestGomudSource_InvalidFile(t *testing.T) {
	root := t.TempDir()
	writeItem(t, filepath.Join(root, "items"), "bad.yaml", "itemid: [unclosed")
	_, err := igomud.NewSource(nil).Load(root)
	assert.Error(t, err)
}
