package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strconv"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names
const (
	PageHome    = "home"
	PagePasses  = "passes"
	PageLiveMap = "livemap"
	PageAbout   = "about"
)

var pageNames = []string{PageHome, PagePasses, PageLiveMap, PageAbout}

// Page is the envelope every template is rendered with. Pending pages are
// waiting on browser geolocation and carry no data yet.
type Page struct {
	Title   string
	Active  string
	Pending bool
	Query   template.URL
	Data    any
}

// LocationQuery encodes the resolved observer and display time zone so that
// links between pages skip the geolocation prompt.
func LocationQuery(obs domain.Observer, located string, loc *time.Location) template.URL {
	q := url.Values{}
	if located != "" {
		q.Set("located", located)
	} else {
		q.Set("lat", strconv.FormatFloat(obs.Lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(obs.Lng, 'f', -1, 64))
	}
	if loc != nil && loc != time.UTC {
		q.Set("tz", loc.String())
	}
	return template.URL(q.Encode())
}

// Renderer renders the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page against the shared layout
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(template.FuncMap{
		"catTone": CategoryTone,
	}).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("view: failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		base, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("view: failed to clone layout: %w", err)
		}
		t, err := base.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view: failed to parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page name to w
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	if p.Active == "" {
		p.Active = name
	}
	return t.ExecuteTemplate(w, "layout.html", p)
}

// Static returns the embedded stylesheet and scripts rooted at "static"
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
