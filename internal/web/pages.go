package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yosssi/gohtml"

	"calckit/internal/digest"
	"calckit/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// recentLimit is how many history entries a calculator page shows.
const recentLimit = 5

// pageSet holds one template per page, each parsed together with the layout.
type pageSet struct {
	byName map[string]*template.Template
}

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"when":  func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
}

func parsePages() (*pageSet, error) {
	ps := &pageSet{byName: make(map[string]*template.Template)}
	for _, name := range []string{"index.html", "calculator.html", "notfound.html"} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		ps.byName[name] = t
	}
	return ps, nil
}

// layoutData is common to every page.
type layoutData struct {
	Title       string
	Description string
	Canonical   string
	JSONLD      template.JS
	Categories  []categoryGroup
}

type categoryGroup struct {
	Category    domain.Category
	Title       string
	Calculators []domain.Calculator
}

type indexPage struct {
	layoutData
}

type calculatorPage struct {
	layoutData
	Calculator domain.Calculator
	Inputs     domain.Inputs
	Result     *domain.Result
	Error      string
	ErrorField string
	Recent     []domain.HistoryEntry
}

// render executes page into a buffer so the ETag can be computed, then
// writes it. A GET whose If-None-Match matches gets 304.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, ok := s.pages.byName[name]
	if !ok {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.ErrorContext(r.Context(), "template exec", "page", name, "err", err)
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	body := buf.Bytes()
	if s.pretty {
		body = gohtml.FormatBytes(body)
	}

	etag := digest.ETag(body)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	if r.Method == http.MethodGet && status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// groups returns the catalog grouped by category in display order.
func (s *Server) groups(r *http.Request) ([]categoryGroup, error) {
	all, err := s.calcs.List(r.Context(), "")
	if err != nil {
		return nil, err
	}
	byCat := make(map[domain.Category][]domain.Calculator)
	for _, c := range all {
		byCat[c.Category] = append(byCat[c.Category], c)
	}
	var out []categoryGroup
	for _, cat := range domain.Categories {
		if len(byCat[cat]) == 0 {
			continue
		}
		out = append(out, categoryGroup{Category: cat, Title: cat.Title(), Calculators: byCat[cat]})
	}
	return out, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	site := s.siteURL(r)
	page := indexPage{layoutData{
		Title:       "calckit: free online calculators",
		Description: "Financial, math, geometry, health, date, conversion, developer and science calculators.",
		Canonical:   site + "/",
		Categories:  groups,
	}}
	s.render(w, r, http.StatusOK, "index.html", page)
}

func (s *Server) handleCalculator(w http.ResponseWriter, r *http.Request) {
	slug := domain.Slug(chi.URLParam(r, "slug"))
	calc, err := s.calcs.Describe(r.Context(), slug)
	if errors.Is(err, domain.ErrUnknownCalculator) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	groups, err := s.groups(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	site := s.siteURL(r)
	page := calculatorPage{
		layoutData: layoutData{
			Title:       calc.Title,
			Description: calc.Summary,
			Canonical:   site + "/c/" + string(calc.Slug),
			JSONLD:      jsonLD(calc, site),
			Categories:  groups,
		},
		Calculator: calc,
		Inputs:     domain.Inputs{}.WithDefaults(calc.Fields),
	}

	status := http.StatusOK
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			page.Error = "could not read the form"
			s.render(w, r, http.StatusBadRequest, "calculator.html", page)
			return
		}
		page.Inputs = formInputs(calc, r)
		res, err := s.calcs.Run(r.Context(), slug, page.Inputs)
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			status = http.StatusUnprocessableEntity
			page.Error = ve.Err.Error()
			page.ErrorField = ve.Field
		case err != nil:
			s.serverError(w, r, err)
			return
		default:
			page.Result = &res
			s.record(r, slug, page.Inputs, res)
		}
	}
	page.Recent = s.recent(r, slug)
	s.render(w, r, status, "calculator.html", page)
}

// formInputs collects the submitted values of the calculator's fields.
func formInputs(calc domain.Calculator, r *http.Request) domain.Inputs {
	in := make(domain.Inputs, len(calc.Fields))
	for _, f := range calc.Fields {
		if v, ok := r.PostForm[f.Name]; ok && len(v) > 0 {
			in[f.Name] = v[0]
		}
	}
	return in
}

// record saves a computation when history is on. Failures only log.
func (s *Server) record(r *http.Request, slug domain.Slug, in domain.Inputs, res domain.Result) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Record(r.Context(), slug, in, res); err != nil && !errors.Is(err, domain.ErrHistoryDisabled) {
		s.logger.WarnContext(r.Context(), "recording history", "slug", slug, "err", err)
	}
}

func (s *Server) recent(r *http.Request, slug domain.Slug) []domain.HistoryEntry {
	if s.history == nil {
		return nil
	}
	entries, err := s.history.History(r.Context(), domain.HistoryFilter{Slug: slug, Limit: recentLimit})
	if err != nil {
		if !errors.Is(err, domain.ErrHistoryDisabled) {
			s.logger.WarnContext(r.Context(), "listing history", "slug", slug, "err", err)
		}
		return nil
	}
	return entries
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusNotFound, "not found", "")
		return
	}
	page := indexPage{layoutData{Title: "Page not found"}}
	if groups, err := s.groups(r); err == nil {
		page.Categories = groups
	}
	s.render(w, r, http.StatusNotFound, "notfound.html", page)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// webApplication is the schema.org snippet embedded in calculator pages.
type webApplication struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	URL                 string `json:"url"`
	ApplicationCategory string `json:"applicationCategory"`
	OperatingSystem     string `json:"operatingSystem"`
	Offers              offer  `json:"offers"`
}

type offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// jsonLD renders the WebApplication block. json.Marshal escapes <, > and &,
// so the output is safe inside a script element.
func jsonLD(calc domain.Calculator, site string) template.JS {
	b, err := json.Marshal(webApplication{
		Context:             "https://schema.org",
		Type:                "WebApplication",
		Name:                calc.Title,
		Description:         calc.Summary,
		URL:                 site + "/c/" + string(calc.Slug),
		ApplicationCategory: "UtilitiesApplication",
		OperatingSystem:     "Any",
		Offers:              offer{Type: "Offer", Price: "0", PriceCurrency: "USD"},
	})
	if err != nil {
		return ""
	}
	return template.JS(b)
}
