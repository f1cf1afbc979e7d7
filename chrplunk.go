/*
Package chrplunk is a library for working with NES graphics data: CHR
tile sheets, the iNES ROM images they are extracted from, and a catalog
of scanned ROM files.
*/
package chrplunk

import "log"

type CHRPlunk struct {
	db     *ROMDB
	logger *log.Logger
}

func New(db *ROMDB, logger *log.Logger) *CHRPlunk {
	return &CHRPlunk{
		db:     db,
		logger: logger,
	}
}

func (c *CHRPlunk) Close() error {
	return c.db.Close()
}
