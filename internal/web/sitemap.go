package web

import (
	"net/http"

	"github.com/beevik/etree"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// handleSitemap lists the index and every calculator page.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	all, err := s.calcs.List(r.Context(), "")
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	site := s.siteURL(r)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	set := doc.CreateElement("urlset")
	set.CreateAttr("xmlns", sitemapNS)

	addURL := func(loc, priority string) {
		u := set.CreateElement("url")
		u.CreateElement("loc").SetText(loc)
		u.CreateElement("changefreq").SetText("monthly")
		u.CreateElement("priority").SetText(priority)
	}
	addURL(site+"/", "1.0")
	for _, c := range all {
		addURL(site+"/c/"+string(c.Slug), "0.8")
	}
	doc.Indent(2)

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := doc.WriteTo(w); err != nil {
		s.logger.WarnContext(r.Context(), "writing sitemap", "err", err)
	}
}
