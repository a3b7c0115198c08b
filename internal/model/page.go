package model

// Page is the cached payload for one wiki page: the canonical title, its
// raw wikitext, and the link lists the MediaWiki parse API reports.
// Internal links are already filtered to the content namespace by the
// fetcher. Immutable for the duration of one extraction.
type Page struct {
	Title         string   `json:"title"`
	PageID        int      `json:"pageid,omitempty"`
	Wikitext      string   `json:"wikitext"`
	Links         []string `json:"links,omitempty"`
	ExternalLinks []string `json:"externallinks,omitempty"`
}
