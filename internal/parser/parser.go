package parser

import (
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/takak2166/arc2bookmarks/internal/errors"
	"github.com/takak2166/arc2bookmarks/internal/logger"
	"github.com/takak2166/arc2bookmarks/internal/models"
)

// Parser extracts bookmarks from Arc's StorableSidebar.json
type Parser struct {
	now func() time.Time
}

// Option configures a Parser
type Option func(*Parser)

// WithClock sets the clock used when an item has no usable createdAt
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// New creates a new Parser instance
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts bookmarks from every root container of the sidebar JSON.
// Only invalid JSON is an error; missing containers contribute nothing.
func (p *Parser) Parse(data []byte) ([]models.Bookmark, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.ErrCodeInvalidJSON, "source is not valid JSON")
	}

	root := gjson.ParseBytes(data)

	var bookmarks []models.Bookmark
	for _, path := range models.RootPaths {
		items := root.Get(path)
		if !items.Exists() {
			logger.Debug("Root container not present", map[string]interface{}{
				"path": path,
			})
			continue
		}

		found := p.ExtractItems(items)
		logger.Debug("Processed root container", map[string]interface{}{
			"path":            path,
			"bookmarks_count": len(found),
		})
		bookmarks = append(bookmarks, found...)
	}

	logger.Info("Successfully parsed Arc sidebar data", map[string]interface{}{
		"bookmarks_count": len(bookmarks),
	})

	return bookmarks, nil
}

// ExtractItems walks one Raw Item Pair sequence ([id, value, id, value, ...])
// and returns the bookmarks of every tab-bearing item in pre-order of first visit.
// Child ids resolve against the same sequence; each pair is visited at most once,
// so cycles and shared children stop the descent instead of recursing forever.
func (p *Parser) ExtractItems(items gjson.Result) []models.Bookmark {
	if !items.IsArray() {
		return nil
	}

	elems := items.Array()
	pairs := len(elems) / 2 // a trailing unpaired id is ignored

	// first occurrence of an id wins
	index := make(map[string]int, pairs)
	for i := 0; i < pairs; i++ {
		key := idKey(elems[2*i])
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	visited := make([]bool, pairs)
	var bookmarks []models.Bookmark

	var visit func(i int)
	visit = func(i int) {
		visited[i] = true

		value := effectiveValue(elems[2*i+1])
		if !value.IsObject() {
			return
		}

		if b, ok := p.bookmark(value); ok {
			bookmarks = append(bookmarks, b)
		}

		children := value.Get("childrenIds")
		if !children.IsArray() {
			return
		}
		for _, childID := range children.Array() {
			j, ok := index[idKey(childID)]
			if !ok {
				logger.Debug("Dropping unresolved child id", map[string]interface{}{
					"id": childID.String(),
				})
				continue
			}
			if visited[j] {
				logger.Debug("Skipping already visited item", map[string]interface{}{
					"id": childID.String(),
				})
				continue
			}
			visit(j)
		}
	}

	for i := 0; i < pairs; i++ {
		if !visited[i] {
			visit(i)
		}
	}

	return bookmarks
}

// bookmark builds a record from the tab payload of an effective value
func (p *Parser) bookmark(value gjson.Result) (models.Bookmark, bool) {
	tab := value.Get("data.tab")
	if !tab.IsObject() {
		return models.Bookmark{}, false
	}

	t := models.Tab{
		SavedTitle: tab.Get("savedTitle").String(),
		SavedURL:   tab.Get("savedURL").String(),
	}
	if t.SavedURL == "" {
		return models.Bookmark{}, false
	}

	title := t.SavedTitle
	if title == "" {
		title = t.SavedURL
	}

	return models.Bookmark{
		Title:   title,
		URL:     t.SavedURL,
		AddDate: NormalizeTimestamp(value.Get("createdAt"), p.now),
	}, true
}

// effectiveValue unwraps the optional "value" field some entries wrap their payload in
func effectiveValue(v gjson.Result) gjson.Result {
	if v.IsObject() {
		if inner := v.Get("value"); inner.Exists() {
			return inner
		}
	}
	return v
}

// idKey makes ids comparable by value: "1" and 1 differ, 1 and 1.0 do not
func idKey(id gjson.Result) string {
	switch id.Type {
	case gjson.String:
		return "s:" + id.Str
	case gjson.Number:
		return "n:" + strconv.FormatFloat(id.Num, 'g', -1, 64)
	default:
		return id.Type.String() + ":" + id.Raw
	}
}
