package sprite

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(v byte) []byte {
	return bytes.Repeat([]byte{v}, Pixels)
}

func boxes() []byte {
	b := fill(1)
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			b[y*Width+x] = 2
		}
	}
	for y := 4; y < 8; y++ {
		for x := 5; x < 8; x++ {
			b[y*Width+x] = 3
		}
	}
	b[7*Width+7] = 4
	return b
}

// Returns the bytes of bitplane bp for each row of tile n
func plane(b []byte, n, bp int) (rows [8]byte) {
	t := b[n*32 : n*32+32]
	for row := range rows {
		rows[row] = t[bp>>1*16+row<<1+bp&1]
	}
	return
}

func TestEncodeUniform(t *testing.T) {
	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, fill(1), Width))
	require.Equal(t, Size, b.Len())

	for n := 0; n < Tiles; n++ {
		assert.Equal(t, [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, plane(b.Bytes(), n, 0))
		for bp := 1; bp < 4; bp++ {
			assert.Equal(t, [8]byte{}, plane(b.Bytes(), n, bp))
		}
	}
}

func TestEncodeBoxes(t *testing.T) {
	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, boxes(), Width))

	assert.Equal(t, [8]byte{0xff, 0xff, 0xc0, 0xc0, 0xc7, 0xc7, 0xc7, 0xc6}, plane(b.Bytes(), 0, 0))
	assert.Equal(t, [8]byte{0x00, 0x00, 0x3f, 0x3f, 0x3f, 0x3f, 0x3f, 0x3e}, plane(b.Bytes(), 0, 1))
	assert.Equal(t, [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, plane(b.Bytes(), 0, 2))
	assert.Equal(t, [8]byte{}, plane(b.Bytes(), 0, 3))

	// Remaining tiles are identical to a uniform sprite
	u := new(bytes.Buffer)
	require.Nil(t, Encode(u, fill(1), Width))
	assert.Equal(t, u.Bytes()[32:], b.Bytes()[32:])
}

func TestEncodeDeterministic(t *testing.T) {
	b1, b2 := new(bytes.Buffer), new(bytes.Buffer)
	require.Nil(t, Encode(b1, boxes(), Width))
	require.Nil(t, Encode(b2, boxes(), Width))
	assert.Equal(t, b1.Bytes(), b2.Bytes())
}

func TestEncodeInvalid(t *testing.T) {
	tables := []struct {
		name    string
		indices []byte
		stride  int
		err     error
	}{
		{"short", make([]byte, Pixels-1), Width, ErrShape},
		{"long", make([]byte, Pixels+1), Width, ErrShape},
		{"negative", make([]byte, 0), -1, ErrShape},
		{"8x8", make([]byte, 64), 8, ErrSize},
		{"32x32", make([]byte, 1024), 32, ErrSize},
		{"depth", append(make([]byte, Pixels-1), 16), Width, ErrDepth},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			assert.Equal(t, table.err, Encode(b, table.indices, table.stride))
			assert.Equal(t, 0, b.Len())
		})
	}
}

type failingWriter struct {
	writes int
	limit  int
	bytes.Buffer
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writes == w.limit {
		return 0, errWrite
	}
	w.writes++
	return w.Buffer.Write(p)
}

func TestEncodeWriteError(t *testing.T) {
	w := &failingWriter{limit: 2}
	assert.Equal(t, errWrite, Encode(w, boxes(), Width))
	assert.Equal(t, 2, w.writes)
	assert.Equal(t, 64, w.Len())
}

func TestDecode(t *testing.T) {
	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, boxes(), Width))
	require.Nil(t, Encode(b, fill(15), Width))

	indices, err := Decode(b)
	require.Nil(t, err)
	assert.Equal(t, boxes(), indices)

	indices, err = Decode(b)
	require.Nil(t, err)
	assert.Equal(t, fill(15), indices)

	_, err = Decode(b)
	assert.Equal(t, io.EOF, err)
}

func TestDecodeShort(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size-1)))
	assert.Equal(t, ErrShortRead, err)
}

func TestRoundTrip(t *testing.T) {
	indices := make([]byte, Pixels)
	for i := range indices {
		indices[i] = byte(i*5+i/16) & 0x0f
	}

	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, indices, Width))

	got, err := Decode(b)
	require.Nil(t, err)
	assert.Equal(t, indices, got)
}
