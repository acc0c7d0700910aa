package parser

import (
	"fmt"
	"os"

	"github.com/taoky/goaccessfmt/pkg/goaccessfmt"
)

const goaccessConfigEnv = "GOACCESS_CONFIG"

func init() {
	RegisterParser(ParserMeta{
		Name:        "goaccess",
		Description: "Any format goaccess understands (set GOACCESS_CONFIG)",
		F: func() Parser {
			return &GoAccessFormatParser{}
		},
	})
}

// GoAccessFormatParser reads its log-format from the goaccess config
// file named by $GOACCESS_CONFIG on first use.
type GoAccessFormatParser struct {
	conf    goaccessfmt.Config
	loaded  bool
	loadErr error
}

func (p *GoAccessFormatParser) Prepare() error {
	if p.loaded {
		return p.loadErr
	}
	p.loaded = true
	confFile := os.Getenv(goaccessConfigEnv)
	file, err := os.Open(confFile)
	if err != nil {
		p.loadErr = fmt.Errorf("goaccess init failed (you might need to set %s): %w", goaccessConfigEnv, err)
		return p.loadErr
	}
	defer file.Close()
	p.conf, err = goaccessfmt.ParseConfigReader(file)
	if err != nil {
		p.loadErr = fmt.Errorf("goaccess init failed: %w", err)
	}
	return p.loadErr
}

func (p *GoAccessFormatParser) Parse(line []byte) (LogItem, error) {
	if err := p.Prepare(); err != nil {
		return LogItem{}, err
	}
	glogitem, err := goaccessfmt.ParseLine(p.conf, string(line))
	if err != nil {
		return LogItem{}, err
	}
	return ItemFromTime(glogitem.Dt), nil
}
