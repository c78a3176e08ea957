package representation

import "encoding/json"

// PhotoMetadataRepr is a snapshot of a photo's metadata.
type PhotoMetadataRepr struct {
	meta        MetaRepr
	photoID     string
	description string
	tags        []string
}

// PhotoMetadataReprBuilder stages a PhotoMetadataRepr. Fields default to
// empty values, never nil.
type PhotoMetadataReprBuilder struct {
	meta        MetaRepr
	photoID     string
	description string
	tags        []string
}

// NewPhotoMetadata starts a PhotoMetadataRepr.
func NewPhotoMetadata() *PhotoMetadataReprBuilder {
	return &PhotoMetadataReprBuilder{
		meta: NewMeta().Build(),
		tags: []string{},
	}
}

// Meta sets the _meta envelope.
func (b *PhotoMetadataReprBuilder) Meta(meta MetaRepr) *PhotoMetadataReprBuilder {
	b.meta = meta
	return b
}

// ID sets the photo ID.
func (b *PhotoMetadataReprBuilder) ID(photoID string) *PhotoMetadataReprBuilder {
	b.photoID = photoID
	return b
}

// Description sets the description.
func (b *PhotoMetadataReprBuilder) Description(description string) *PhotoMetadataReprBuilder {
	b.description = description
	return b
}

// Tags appends tags. Repeated calls accumulate.
func (b *PhotoMetadataReprBuilder) Tags(tags ...string) *PhotoMetadataReprBuilder {
	b.tags = append(b.tags, tags...)
	return b
}

// Build freezes the builder's current state.
func (b *PhotoMetadataReprBuilder) Build() PhotoMetadataRepr {
	return PhotoMetadataRepr{
		meta:        MetaRepr{links: cloneLinks(b.meta.links)},
		photoID:     b.photoID,
		description: b.description,
		tags:        cloneStrings(b.tags),
	}
}

// Meta returns the _meta envelope.
func (r PhotoMetadataRepr) Meta() MetaRepr { return r.meta }

// PhotoID returns the photo ID.
func (r PhotoMetadataRepr) PhotoID() string { return r.photoID }

// Description returns the description.
func (r PhotoMetadataRepr) Description() string { return r.description }

// Tags returns a copy of the tags in their original order.
func (r PhotoMetadataRepr) Tags() []string { return cloneStrings(r.tags) }

type photoMetadataJSON struct {
	Meta        MetaRepr `json:"_meta"`
	PhotoID     string   `json:"photoId"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// MarshalJSON implements json.Marshaler.
func (r PhotoMetadataRepr) MarshalJSON() ([]byte, error) {
	return json.Marshal(photoMetadataJSON{
		Meta:        r.meta,
		PhotoID:     r.photoID,
		Description: r.description,
		Tags:        cloneStrings(r.tags),
	})
}

// UnmarshalJSON implements json.Unmarshaler, used by API clients and tests.
func (r *PhotoMetadataRepr) UnmarshalJSON(data []byte) error {
	var raw photoMetadataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = NewPhotoMetadata().
		Meta(raw.Meta).
		ID(raw.PhotoID).
		Description(raw.Description).
		Tags(raw.Tags...).
		Build()
	return nil
}
