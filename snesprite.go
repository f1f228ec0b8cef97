/*
Package snesprite is a library for converting images into SNES sprite data.

Each 16 by 16 image produces two files; a palette of BGR555 colors and 128
bytes of 4bpp planar sprite data. Sprite data is appended so that several
sprites can be collected into one file.
*/
package snesprite

import "log"

// Converter converts images into palette and sprite files, optionally
// caching the results in a SpriteDB
type Converter struct {
	db       *SpriteDB
	logger   *log.Logger
	truncate bool
}

// New returns a Converter. If dbFile is empty no cache is used.
func New(dbFile string, logger *log.Logger) (*Converter, error) {
	c := &Converter{
		logger: logger,
	}

	if dbFile != "" {
		db, err := NewSpriteDB(dbFile)
		if err != nil {
			return nil, err
		}
		c.db = db
	}

	return c, nil
}

// SetTruncate controls whether sprite files are truncated rather than
// appended to
func (c *Converter) SetTruncate(truncate bool) {
	c.truncate = truncate
}

// Close closes any underlying cache
func (c *Converter) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
