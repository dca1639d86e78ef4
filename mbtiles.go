package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const createMetadataSQL = `CREATE TABLE IF NOT EXISTS metadata (name TEXT, value TEXT);`

// archiveMetadata descriptive rows for the final archive. Shards carry no
// metadata, only the consolidated output does.
func archiveMetadata(format string) [][2]string {
	return [][2]string{
		{"name", "raster"},
		{"type", "baselayer"},
		{"version", "1.0"},
		{"description", "rendered vector tiles to " + format},
		{"format", format},
	}
}

// CreateArchive creates the destination mbtiles file with the tiles table,
// its unique index, and populated metadata. The path must not already
// exist: merging into prior content would silently mix unrelated runs.
func CreateArchive(path, format string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("output %s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", path, err)
	}
	defer db.Close()

	for _, q := range []string{createTilesSQL, createIndexSQL, createMetadataSQL} {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("create archive schema: %w", err)
		}
	}
	for _, kv := range archiveMetadata(format) {
		if _, err := db.Exec(`INSERT INTO metadata (name, value) VALUES (?, ?);`, kv[0], kv[1]); err != nil {
			return fmt.Errorf("insert metadata %s: %w", kv[0], err)
		}
	}
	return db.Close()
}

// ArchiveTileCount rows in the archive's tiles table. Callers use it to
// detect an incomplete merge.
func ArchiveTileCount(path string) (int64, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var n int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM tiles;`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
