// Package netscape renders bookmarks in the Netscape Bookmark File format
// understood by the import dialogs of Chrome, Firefox, Safari and Edge.
package netscape

import (
	"fmt"
	"strings"
	"time"

	"github.com/takak2166/arc2bookmarks/internal/models"
)

// DefaultFolderTitle is the heading of the single top-level folder
const DefaultFolderTitle = "Arc Browser Bookmarks"

const preamble = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

// Options controls the folder heading of the rendered document
type Options struct {
	FolderTitle string
	Now         func() time.Time // stamps the folder ADD_DATE
}

func (o Options) withDefaults() Options {
	if o.FolderTitle == "" {
		o.FolderTitle = DefaultFolderTitle
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Render returns the complete bookmark document, one entry per bookmark in order.
// Titles and URLs are written verbatim without HTML escaping.
func Render(bookmarks []models.Bookmark, opts Options) string {
	opts = opts.withDefaults()

	var html strings.Builder

	html.WriteString(preamble)
	html.WriteString(fmt.Sprintf("    <DT><H3 ADD_DATE=\"%d\" PERSONAL_TOOLBAR=\"true\">%s</H3>\n", opts.Now().Unix(), opts.FolderTitle))
	html.WriteString("    <DL><p>")

	for _, b := range bookmarks {
		html.WriteString(fmt.Sprintf("\n        <DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>", b.URL, b.AddDate, b.Title))
	}

	html.WriteString("\n    </DL><p>\n</DL><p>")

	return html.String()
}
