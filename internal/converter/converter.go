package converter

import (
	"github.com/takak2166/arc2bookmarks/internal/logger"
	"github.com/takak2166/arc2bookmarks/internal/netscape"
	"github.com/takak2166/arc2bookmarks/internal/parser"
	"github.com/takak2166/arc2bookmarks/internal/storage"
)

// Result summarizes a finished conversion
type Result struct {
	Count  int
	Output string
}

// Converter turns an Arc sidebar file into a Netscape bookmark file
type Converter struct {
	store  storage.Store
	parser *parser.Parser
	opts   netscape.Options
}

// New creates a new Converter
func New(store storage.Store, p *parser.Parser, opts netscape.Options) *Converter {
	return &Converter{
		store:  store,
		parser: p,
		opts:   opts,
	}
}

// Convert reads source, extracts its bookmarks and writes them to output.
// An empty result is only a warning; the output file is written regardless.
func (c *Converter) Convert(source, output string) (Result, error) {
	data, err := c.store.ReadSource(source)
	if err != nil {
		return Result{}, err
	}

	bookmarks, err := c.parser.Parse(data)
	if err != nil {
		return Result{}, err
	}

	if len(bookmarks) == 0 {
		logger.Warn("No bookmarks found in the file", map[string]interface{}{
			"source": source,
		})
	}

	html := netscape.Render(bookmarks, c.opts)
	if err := c.store.WriteOutput(output, html); err != nil {
		return Result{}, err
	}

	logger.Info("Conversion completed", map[string]interface{}{
		"bookmarks_count": len(bookmarks),
		"source":          source,
		"output":          output,
	})

	return Result{Count: len(bookmarks), Output: output}, nil
}
