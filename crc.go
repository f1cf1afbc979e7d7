package chrplunk

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

const headerSkip = 16

// crcFile hashes everything after the 16 byte iNES header so the same
// image with a patched header produces the same checksum.
func crcFile(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = f.Seek(headerSkip, io.SeekStart); err != nil {
		return "", err
	}

	h := crc32.NewIEEE()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%.*X", crc32.Size<<1, h.Sum(nil)), nil
}
