package layout

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	SiteName        = "Datos Provida"
	DefaultTitle    = "Datos Provida Dashboard"
	TitleTemplate   = "%s | Datos Provida"
	SiteDescription = "Panel de control para visualización de datos de Datos Provida"
)

// Title is the document title. Nested pages are rendered through Template.
type Title struct {
	Default  string
	Template string
}

// OpenGraph holds the social preview fields
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Type        string
}

// Metadata describes the document-level tags rendered by Shell
type Metadata struct {
	// MetadataBase is used to turn relative metadata urls into absolute ones
	MetadataBase string
	Title        Title
	Description  string
	Viewport     string
	ThemeColor   string
	Icon         string
	OpenGraph    OpenGraph
	Lang         string
}

// DefaultMetadata returns the dashboard's metadata. base is the public URL the dashboard is served from.
func DefaultMetadata(base string) Metadata {
	return Metadata{
		MetadataBase: base,
		Title: Title{
			Default:  DefaultTitle,
			Template: TitleTemplate,
		},
		Description: SiteDescription,
		Viewport:    "width=device-width, initial-scale=1",
		ThemeColor:  "#6366f1",
		Icon:        "/favicon.ico",
		OpenGraph: OpenGraph{
			Title:       DefaultTitle,
			Description: SiteDescription,
			URL:         "/",
			SiteName:    SiteName,
			Type:        "website",
		},
		Lang: "es",
	}
}

// PageTitle returns the title for a page. An empty page gives the default title.
func (m Metadata) PageTitle(page string) string {
	page = strings.TrimSpace(page)
	if page == "" || m.Title.Template == "" {
		if page != "" {
			return page
		}
		return m.Title.Default
	}
	return fmt.Sprintf(m.Title.Template, page)
}

// AbsoluteURL resolves ref against MetadataBase.
// ref is returned unchanged when there is no usable base or ref is already absolute.
func (m Metadata) AbsoluteURL(ref string) string {
	if m.MetadataBase == "" {
		return ref
	}
	base, err := url.Parse(m.MetadataBase)
	if err != nil || !base.IsAbs() {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}
