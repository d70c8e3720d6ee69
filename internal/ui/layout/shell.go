// the layout package renders the html document that wraps every dashboard page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BodyClasses is the base style of the root container
const BodyClasses = "min-h-screen bg-white text-gray-900 antialiased"

// Shell renders a complete html document: the metadata in <head> and children inside <body>.
// page is the title of the current page ("" for the default title).
//
// When no children are passed, the templ children in ctx are rendered.
func Shell(meta Metadata, page string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sw := &stickyWriter{w: w}

		sw.write("<!doctype html>")
		sw.write(`<html lang="` + templ.EscapeString(meta.Lang) + `">`)
		sw.write("<head>")
		sw.write(`<meta charset="utf-8">`)
		meta.writeHead(sw, page)
		sw.write("</head>")
		sw.write(`<body class="` + BodyClasses + `">`)
		if sw.err != nil {
			return sw.err
		}

		if len(children) == 0 {
			if c := templ.GetChildren(ctx); c != nil {
				children = []templ.Component{c}
			}
		}
		ctx = templ.ClearChildren(ctx)
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		sw.write("</body></html>")
		return sw.err
	})
}

func (m Metadata) writeHead(sw *stickyWriter, page string) {
	if m.Viewport != "" {
		sw.metaName("viewport", m.Viewport)
	}
	sw.write("<title>" + templ.EscapeString(m.PageTitle(page)) + "</title>")
	if m.Description != "" {
		sw.metaName("description", m.Description)
	}
	if m.ThemeColor != "" {
		sw.metaName("theme-color", m.ThemeColor)
	}
	if m.Icon != "" {
		sw.write(`<link rel="icon" href="` + templ.EscapeString(m.Icon) + `">`)
	}

	og := m.OpenGraph
	for _, p := range [][2]string{
		{"og:title", og.Title},
		{"og:description", og.Description},
		{"og:url", m.ogURL()},
		{"og:site_name", og.SiteName},
		{"og:type", og.Type},
	} {
		if p[1] != "" {
			sw.write(`<meta property="` + p[0] + `" content="` + templ.EscapeString(p[1]) + `">`)
		}
	}
}

func (m Metadata) ogURL() string {
	if m.OpenGraph.URL == "" {
		return ""
	}
	return m.AbsoluteURL(m.OpenGraph.URL)
}

// stickyWriter keeps the first write error so the document can be written without checking every call
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *stickyWriter) metaName(name, content string) {
	s.write(`<meta name="` + name + `" content="` + templ.EscapeString(content) + `">`)
}
