package chrplunk

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir, err := ioutil.TempDir("", "chrplunk")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// Minimal valid image: 1 PRG bank, 1 CHR bank, vertical mirroring
	rom := append([]byte{'N', 'E', 'S', 0x1a, 1, 1, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0}, make([]byte, 16384+8192)...)
	file := filepath.Join(dir, "game.nes")
	require.NoError(t, ioutil.WriteFile(file, rom, 0644))

	// Neither of these should end up in the catalog
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "broken.nes"), []byte("NES"), 0644))

	db, err := NewROMDB(filepath.Join(dir, "catalog.db"))
	require.NoError(t, err)

	c := New(db, log.New(ioutil.Discard, "", 0))
	defer c.Close()

	require.NoError(t, c.Scan(dir))

	crc, err := crcFile(file)
	require.NoError(t, err)

	info, err := db.FindByCRC(crc)
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, "game", info.Name)
	assert.Equal(t, uint8(0), info.Mapper)
	assert.Equal(t, "Vertical", info.Mirroring)
	assert.Equal(t, 16384, info.PRGSize)
	assert.Equal(t, 8192, info.CHRSize)
	assert.Equal(t, 1, info.CHRBanks)
	assert.False(t, info.Trainer)
}
