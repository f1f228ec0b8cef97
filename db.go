package snesprite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SpriteDB caches converted sprites keyed by the SHA-1 of the source image
// and records every source path that produced each sprite
type SpriteDB struct {
	db *sql.DB
}

// NewSpriteDB opens or creates the database in file
func NewSpriteDB(file string) (*SpriteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, palette BLOB NOT NULL, tiles BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, sprite_id INTEGER NOT NULL, FOREIGN KEY(sprite_id) REFERENCES sprite(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &SpriteDB{
		db: db,
	}, nil
}

// Close closes the database
func (db *SpriteDB) Close() error {
	return db.db.Close()
}

// AddSprite stores the encoded palette and tiles for the given SHA-1 and
// returns the sprite ID. If the SHA-1 is already present the existing ID is
// returned and the stored data is left alone.
func (db *SpriteDB) AddSprite(sha string, palette, tiles []byte) (int64, error) {
	if _, err := db.db.Exec("INSERT OR IGNORE INTO sprite (sha1, palette, tiles) VALUES (?, ?, ?)", sha, palette, tiles); err != nil {
		return 0, err
	}

	var id int64
	if err := db.db.QueryRow("SELECT id FROM sprite WHERE sha1 = ?", sha).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindSpriteBySHA1 returns the cached palette and tiles for the given SHA-1.
// A zero ID is returned if there is no match.
func (db *SpriteDB) FindSpriteBySHA1(sha string) (int64, []byte, []byte, error) {
	var id int64
	var palette, tiles []byte
	switch err := db.db.QueryRow("SELECT id, palette, tiles FROM sprite WHERE sha1 = ?", sha).Scan(&id, &palette, &tiles); err {
	case sql.ErrNoRows:
		return 0, nil, nil, nil
	case nil:
		return id, palette, tiles, nil
	default:
		return 0, nil, nil, err
	}
}

// AddSource records that the image at path produced the given sprite
func (db *SpriteDB) AddSource(path string, sprite int64) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO source (path, sprite_id) VALUES (?, ?)", path, sprite); err != nil {
		return err
	}
	return nil
}

// Sources returns the paths of every image that produced the given sprite
func (db *SpriteDB) Sources(sprite int64) ([]string, error) {
	rows, err := db.db.Query("SELECT path FROM source WHERE sprite_id = ? ORDER BY path", sprite)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, rows.Err()
}
