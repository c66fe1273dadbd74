package routes

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"jeremiassnts.dev/internal/models"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemapXML encodes entries in the sitemaps.org format
func WriteSitemapXML(w io.Writer, entries []Entry) error {
	set := urlSet{Xmlns: sitemapNS, URLs: make([]urlXML, len(entries))}
	for i, e := range entries {
		set.URLs[i] = urlXML{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: e.ChangeFrequency,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Close()
}

// RobotsTxt allows everything and points crawlers at the sitemap
func RobotsTxt(site models.SiteConfig) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(site.URL, "/") + "/sitemap.xml\n"
}
