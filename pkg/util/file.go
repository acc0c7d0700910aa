package util

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Stdin is the filename that stands for standard input.
const Stdin = "-"

type filteredReader struct {
	cmd *exec.Cmd
	in  io.Closer
	r   io.ReadCloser
}

func (fr *filteredReader) Read(p []byte) (n int, err error) {
	return fr.r.Read(p)
}

// Close closes the pipe first so that a decompressor still writing
// gets SIGPIPE instead of blocking Wait forever.
func (fr *filteredReader) Close() error {
	rerr := fr.r.Close()
	werr := fr.cmd.Wait()
	return errors.Join(rerr, werr, fr.in.Close())
}

func filterByCommand(r io.ReadCloser, args []string) (io.ReadCloser, error) {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = r
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		r.Close()
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		r.Close()
		return nil, err
	}
	return &filteredReader{cmd: cmd, in: r, r: stdout}, nil
}

type filterFunc func(r io.ReadCloser) (io.ReadCloser, error)

var fileTypes = map[string]filterFunc{
	".gz": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"gzip", "-cd"})
	},
	".xz": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"xz", "-cd", "-T", "0"})
	},
	".zst": func(r io.ReadCloser) (io.ReadCloser, error) {
		return filterByCommand(r, []string{"zstd", "-cd", "-T0"})
	},
}

// IsCompressed reports whether OpenFile would decompress filename.
func IsCompressed(filename string) bool {
	_, ok := fileTypes[filepath.Ext(filename)]
	return ok
}

// OpenFile opens filename for reading, decompressing it on the fly
// when the extension says so. Closing the result never closes stdin.
func OpenFile(filename string) (io.ReadCloser, error) {
	if filename == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if filter, ok := fileTypes[filepath.Ext(filename)]; ok {
		return filter(f)
	}
	return f, nil
}
