package fileiter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closeCounter struct {
	io.Reader
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestScannerIterator(t *testing.T) {
	as := assert.New(t)
	r := &closeCounter{Reader: strings.NewReader("first\nsecond\n\nlast")}
	it := NewWithScanner(r)

	var lines []string
	for {
		line, err := it.Next()
		if err == io.EOF {
			break
		}
		as.NoError(err)
		lines = append(lines, string(line))
	}
	as.Equal([]string{"first", "second", "", "last"}, lines)
	as.Equal(4, it.Line())

	_, err := it.Next()
	as.ErrorIs(err, io.EOF)

	as.NoError(it.Close())
	as.NoError(it.Close())
	as.Equal(1, r.closed)
}

func TestOpen(t *testing.T) {
	as := assert.New(t)
	filename := filepath.Join(t.TempDir(), "access.log")
	as.NoError(os.WriteFile(filename, []byte("2015 06 01 00 15\n"), 0644))

	it, err := Open(filename)
	if !as.NoError(err) {
		return
	}
	defer it.Close()
	line, err := it.Next()
	as.NoError(err)
	as.Equal("2015 06 01 00 15", string(line))

	_, err = Open(filepath.Join(t.TempDir(), "missing.log"))
	as.ErrorIs(err, os.ErrNotExist)
}
