package representation

import (
	"encoding/json"
	"net/url"
)

// Link relations used in _meta sections.
const (
	RelSelf      = "self"
	RelGallery   = "gallery"
	RelAlbum     = "album"
	RelPhoto     = "photo"
	RelThumbnail = "thumbnail"
	RelMetadata  = "metadata"
	RelDownload  = "download"
)

// LinkRepr is a single hyperlink.
type LinkRepr struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// MetaRepr is the _meta envelope holding a representation's links.
type MetaRepr struct {
	links []LinkRepr
}

// MetaReprBuilder stages a MetaRepr.
type MetaReprBuilder struct {
	links []LinkRepr
}

// NewMeta starts an empty MetaRepr.
func NewMeta() *MetaReprBuilder {
	return &MetaReprBuilder{links: []LinkRepr{}}
}

// Link appends a link with the given relation.
func (b *MetaReprBuilder) Link(rel string, href *url.URL) *MetaReprBuilder {
	b.links = append(b.links, LinkRepr{Rel: rel, Href: href.String()})
	return b
}

// Build freezes the staged links.
func (b *MetaReprBuilder) Build() MetaRepr {
	return MetaRepr{links: cloneLinks(b.links)}
}

// Links returns a copy of the links.
func (m MetaRepr) Links() []LinkRepr {
	return cloneLinks(m.links)
}

// Href returns the href of the first link with relation rel.
func (m MetaRepr) Href(rel string) (string, bool) {
	for _, l := range m.links {
		if l.Rel == rel {
			return l.Href, true
		}
	}
	return "", false
}

type metaJSON struct {
	Links []LinkRepr `json:"links"`
}

// MarshalJSON implements json.Marshaler.
func (m MetaRepr) MarshalJSON() ([]byte, error) {
	return json.Marshal(metaJSON{Links: cloneLinks(m.links)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MetaRepr) UnmarshalJSON(data []byte) error {
	var raw metaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.links = cloneLinks(raw.Links)
	return nil
}

func cloneLinks(links []LinkRepr) []LinkRepr {
	out := make([]LinkRepr, len(links))
	copy(out, links)
	return out
}

func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
