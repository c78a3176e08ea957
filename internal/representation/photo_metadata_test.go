package representation

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoMetadataDefaults(t *testing.T) {
	repr := NewPhotoMetadata().Build()

	assert.Equal(t, "", repr.PhotoID())
	assert.Equal(t, "", repr.Description())
	assert.NotNil(t, repr.Tags())
	assert.Empty(t, repr.Tags())
	assert.NotNil(t, repr.Meta().Links())

	data, err := json.Marshal(repr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_meta":{"links":[]},"photoId":"","description":"","tags":[]}`, string(data))
}

func TestPhotoMetadataTagsAccumulate(t *testing.T) {
	repr := NewPhotoMetadata().
		Tags("x").
		Tags("y").
		Build()

	assert.Equal(t, []string{"x", "y"}, repr.Tags())
}

func TestPhotoMetadataTagsAreNotShared(t *testing.T) {
	input := []string{"x", "y"}
	builder := NewPhotoMetadata().Tags(input...)
	repr := builder.Build()

	// mutate the caller's slice, the returned view and the builder
	input[0] = "changed"
	view := repr.Tags()
	view[1] = "changed"
	_ = append(view, "z")
	builder.Tags("later")

	assert.Equal(t, []string{"x", "y"}, repr.Tags())
}

func TestPhotoMetadataJSONShape(t *testing.T) {
	meta := NewMeta().
		Link(RelSelf, &url.URL{Path: "/albums/A1/P1/metadata"}).
		Build()

	repr := NewPhotoMetadata().
		Meta(meta).
		ID("P1").
		Description("Summer trip").
		Tags("beach", "sunset").
		Build()

	data, err := json.Marshal(repr)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_meta": {"links": [{"rel": "self", "href": "/albums/A1/P1/metadata"}]},
		"photoId": "P1",
		"description": "Summer trip",
		"tags": ["beach", "sunset"]
	}`, string(data))

	var decoded PhotoMetadataRepr
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "P1", decoded.PhotoID())
	assert.Equal(t, []string{"beach", "sunset"}, decoded.Tags())
	href, ok := decoded.Meta().Href(RelSelf)
	assert.True(t, ok)
	assert.Equal(t, "/albums/A1/P1/metadata", href)
}

func TestMetaLinksAreCopied(t *testing.T) {
	builder := NewMeta().Link(RelSelf, &url.URL{Path: "/albums"})
	meta := builder.Build()
	builder.Link(RelAlbum, &url.URL{Path: "/albums/A1"})

	links := meta.Links()
	require.Len(t, links, 1)
	links[0].Href = "/changed"

	href, ok := meta.Href(RelSelf)
	assert.True(t, ok)
	assert.Equal(t, "/albums", href)

	_, ok = meta.Href(RelAlbum)
	assert.False(t, ok)
}
