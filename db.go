package chrplunk

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ROMDB is the catalog of scanned ROM images, keyed by payload CRC.
type ROMDB struct {
	db *sql.DB
}

// ROMInfo is one catalog entry.
type ROMInfo struct {
	Name      string
	CRC       string
	Mapper    uint8
	Mirroring string
	PRGSize   int
	CHRSize   int
	CHRBanks  int
	Trainer   bool
}

func NewROMDB(file string) (*ROMDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS rom (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, name STRING NOT NULL, mapper INTEGER NOT NULL, mirroring STRING NOT NULL, prg_size INTEGER NOT NULL, chr_size INTEGER NOT NULL, chr_banks INTEGER NOT NULL, trainer INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &ROMDB{
		db: db,
	}, nil
}

func (db *ROMDB) Close() error {
	return db.db.Close()
}

// Add inserts or replaces the catalog entry for info.CRC.
func (db *ROMDB) Add(info *ROMInfo) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO rom (crc, name, mapper, mirroring, prg_size, chr_size, chr_banks, trainer) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", info.CRC, info.Name, info.Mapper, info.Mirroring, info.PRGSize, info.CHRSize, info.CHRBanks, info.Trainer); err != nil {
		return err
	}
	return nil
}

// FindByCRC returns the catalog entry for crc, or nil if it is unknown.
func (db *ROMDB) FindByCRC(crc string) (*ROMInfo, error) {
	info := &ROMInfo{CRC: crc}
	switch err := db.db.QueryRow("SELECT name, mapper, mirroring, prg_size, chr_size, chr_banks, trainer FROM rom WHERE crc = ?", crc).Scan(&info.Name, &info.Mapper, &info.Mirroring, &info.PRGSize, &info.CHRSize, &info.CHRBanks, &info.Trainer); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return info, nil
	default:
		return nil, err
	}
}
