package chrplunk

import (
	"fmt"
	"hash/crc32"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRCFileSkipsHeader(t *testing.T) {
	dir, err := ioutil.TempDir("", "chrplunk")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	payload := []byte("payload bytes for hashing")
	file := filepath.Join(dir, "test.nes")
	require.NoError(t, ioutil.WriteFile(file, append(make([]byte, headerSkip), payload...), 0644))

	crc, err := crcFile(file)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%08X", crc32.ChecksumIEEE(payload)), crc)
}
