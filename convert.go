package snesprite

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bodgit/snesprite/palette"
	"github.com/bodgit/snesprite/sprite"
	_ "golang.org/x/image/bmp"
)

const paletteExt = ".pal"

// ErrImageSize is returned when the source image isn't 16 by 16 pixels
var ErrImageSize = errors.New("snesprite: image must be 16x16")

// PaletteFilename returns the palette filename to use alongside the sprite
// file output
func PaletteFilename(output string) string {
	ext := filepath.Ext(output)
	if ext == paletteExt {
		return output + paletteExt
	}
	return output[:len(output)-len(ext)] + paletteExt
}

// Encode converts m into the binary palette and sprite data
func Encode(m image.Image) ([]byte, []byte, error) {
	b := m.Bounds()
	if b.Empty() {
		return nil, nil, palette.ErrEmpty
	}
	if b.Dx() != sprite.Width || b.Dy() != sprite.Height {
		return nil, nil, ErrImageSize
	}

	p, indices, err := palette.Build(m)
	if err != nil {
		return nil, nil, err
	}

	pal, err := p.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}

	data := new(bytes.Buffer)
	if err := sprite.Encode(data, indices, b.Dx()); err != nil {
		return nil, nil, err
	}

	return pal, data.Bytes(), nil
}

// encodeFile returns the palette and sprite data for the image in file,
// using the cache where possible
func (c *Converter) encodeFile(file string) ([]byte, []byte, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}
	sha := fmt.Sprintf("%X", sha1.Sum(b))

	if c.db != nil {
		id, pal, data, err := c.db.FindSpriteBySHA1(sha)
		if err != nil {
			return nil, nil, err
		}
		if id != 0 {
			c.logger.Printf("Using cached sprite for \"%s\", with SHA1 \"%s\"\n", file, sha)
			return pal, data, c.addSource(file, id)
		}
	}

	m, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}

	pal, data, err := Encode(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", file, err)
	}

	if c.db != nil {
		id, err := c.db.AddSprite(sha, pal, data)
		if err != nil {
			return nil, nil, err
		}
		if err := c.addSource(file, id); err != nil {
			return nil, nil, err
		}
	}

	return pal, data, nil
}

func (c *Converter) addSource(file string, id int64) error {
	path, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	return c.db.AddSource(path, id)
}

func writeSprite(output string, data []byte, truncate bool) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if truncate {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(output, flag, 0644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (c *Converter) convert(input, output, pal string, truncate bool) error {
	if pal == "" {
		pal = PaletteFilename(output)
	}

	palData, data, err := c.encodeFile(input)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(pal, palData, 0644); err != nil {
		return err
	}
	c.logger.Printf("Wrote %d colors to \"%s\"\n", len(palData)/2-1, pal)

	if err := writeSprite(output, data, truncate); err != nil {
		// Don't leave a palette without its sprite
		os.Remove(pal)
		return err
	}
	c.logger.Printf("Wrote sprite to \"%s\"\n", output)

	return nil
}

// Convert converts the image in input, writing the palette to pal and
// appending the sprite data to output. If pal is empty the palette filename
// is derived from output. Nothing is written unless the image converts
// cleanly.
func (c *Converter) Convert(input, output, pal string) error {
	return c.convert(input, output, pal, c.truncate)
}
