package util

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressReader reports bytes read from r on w. A size of -1 shows a
// spinner, which is what compressed inputs get since their decompressed
// size is unknown.
type ProgressReader struct {
	r   io.Reader
	bar *progressbar.ProgressBar
}

func NewProgressReader(r io.Reader, size int64, description string, w io.Writer) *ProgressReader {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100 * time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &ProgressReader{r: r, bar: bar}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	// Add fails once a growing file passes the size taken at open;
	// the read itself is still good.
	_ = p.bar.Add(n)
	return n, err
}

// Finish clears the bar; the underlying reader is left open.
func (p *ProgressReader) Finish() error {
	return p.bar.Finish()
}
