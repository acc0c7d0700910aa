package analyze

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/taoky/weblog/pkg/fileiter"
	"github.com/taoky/weblog/pkg/parser"
	"github.com/taoky/weblog/pkg/util"
)

// FileSource reads entries from a log file, reopening it for every pass.
type FileSource struct {
	Filename string
	Parser   parser.Parser
	// Logger receives malformed lines; log.Default() if nil.
	Logger *log.Logger
	// Strict fails the pass on the first malformed line instead of
	// skipping it.
	Strict bool
	// Progress, if set, receives a progress bar for each pass.
	Progress io.Writer
}

func (s *FileSource) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

func (s *FileSource) Open() (Pass, error) {
	return s.open()
}

func (s *FileSource) open() (*filePass, error) {
	f, err := util.OpenFile(s.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	p := &filePass{source: s, file: f}
	var r io.Reader = f
	if s.Progress != nil {
		p.progress = util.NewProgressReader(f, s.size(), filepath.Base(s.Filename), s.Progress)
		r = p.progress
	}
	p.iter = fileiter.NewWithScanner(r)
	return p, nil
}

func (s *FileSource) size() int64 {
	if s.Filename == util.Stdin || util.IsCompressed(s.Filename) {
		return -1
	}
	fileInfo, err := os.Stat(s.Filename)
	if err != nil {
		return -1
	}
	return fileInfo.Size()
}

// PrintData writes every record of the file in weblog format.
func (s *FileSource) PrintData(w io.Writer) (err error) {
	p, err := s.open()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, p.Close())
	}()
	for {
		item, err := p.nextItem()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, parser.FormatWeblog(item)); err != nil {
			return err
		}
	}
}

// parse returns a Discard item for lines that are skipped.
func (s *FileSource) parse(line []byte, lineno int) (parser.LogItem, error) {
	item, err := s.Parser.Parse(line)
	if err == nil {
		return item, nil
	}
	if errors.Is(err, parser.ErrExpectedIgnoredLog) {
		return parser.LogItem{Discard: true}, nil
	}
	err = fmt.Errorf("%s:%d: parse error: %w\ngot line: %q", s.Filename, lineno, err, line)
	if s.Strict {
		return parser.LogItem{}, err
	}
	s.logger().Print(err)
	return parser.LogItem{Discard: true}, nil
}

type filePass struct {
	source   *FileSource
	file     io.ReadCloser
	iter     fileiter.Iterator
	progress *util.ProgressReader
}

// nextItem returns the next record that is not skipped.
func (p *filePass) nextItem() (parser.LogItem, error) {
	for {
		line, err := p.iter.Next()
		if errors.Is(err, io.EOF) {
			return parser.LogItem{}, io.EOF
		}
		if err != nil {
			return parser.LogItem{}, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, p.source.Filename, err)
		}
		item, err := p.source.parse(line, p.iter.Line())
		if err != nil {
			return parser.LogItem{}, err
		}
		if !item.Discard {
			return item, nil
		}
	}
}

func (p *filePass) Next() (Entry, error) {
	item, err := p.nextItem()
	if err != nil {
		return Entry{}, err
	}
	entry, err := EntryFromItem(item)
	if err != nil {
		return Entry{}, fmt.Errorf("%s:%d: %w", p.source.Filename, p.iter.Line(), err)
	}
	return entry, nil
}

func (p *filePass) Close() error {
	var err error
	if p.progress != nil {
		err = p.progress.Finish()
	}
	return errors.Join(err, p.file.Close())
}
