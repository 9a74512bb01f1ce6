/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/container"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/record"
	"github.com/suparena/wpstore/registry"
)

// ImageFile is one rendition of an uploaded image.
type ImageFile struct {
	SizeName  string `json:"size_name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	File      string `json:"file"`
	MimeType  string `json:"mime_type"`
	SourceURL string `json:"source_url"`
}

func newImageFile(data map[string]any) (*ImageFile, error) {
	img := &ImageFile{}
	if err := record.FromRaw(data, img); err != nil {
		return nil, err
	}
	return img, nil
}

func imageFileFromTagged(data map[string]any, _ registry.Decoder) (*ImageFile, error) {
	img := &ImageFile{}
	if err := record.FromTagged(data, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (i *ImageFile) ToRaw() map[string]any {
	return map[string]any{
		"size_name":  i.SizeName,
		"width":      i.Width,
		"height":     i.Height,
		"file":       i.File,
		"mime_type":  i.MimeType,
		"source_url": i.SourceURL,
	}
}

// MediaDetails lists the original upload and its generated sizes.
type MediaDetails struct {
	Original *ImageFile            `json:"original"`
	Sizes    map[string]*ImageFile `json:"sizes"`
}

// NewMediaDetails builds details from the media_details object. The API
// describes the original file at the top level; its URL and mime type live on
// the attachment itself.
func NewMediaDetails(data map[string]any, sourceURL, mimeType string) (*MediaDetails, error) {
	original, err := newImageFile(map[string]any{
		"size_name":  "original",
		"width":      data["width"],
		"height":     data["height"],
		"file":       data["file"],
		"mime_type":  mimeType,
		"source_url": sourceURL,
	})
	if err != nil {
		return nil, err
	}

	md := &MediaDetails{Original: original, Sizes: map[string]*ImageFile{}}
	sizes, _ := data["sizes"].(map[string]any)
	for name, v := range sizes {
		kw, ok := v.(map[string]any)
		if !ok {
			return nil, errors.NewValidationError("media_details.sizes", fmt.Sprintf("%s is %T", name, v))
		}
		kw = record.Clone(kw)
		kw["size_name"] = name
		if md.Sizes[name], err = newImageFile(kw); err != nil {
			return nil, err
		}
	}
	return md, nil
}

func mediaDetailsFromTagged(data map[string]any, dec registry.Decoder) (*MediaDetails, error) {
	md := &MediaDetails{}
	if err := record.CheckTag(data, md); err != nil {
		return nil, err
	}
	var err error
	if md.Original, err = codec.DecodeAs[*ImageFile](dec, data["original"]); err != nil {
		return nil, fmt.Errorf("original: %w", err)
	}
	if md.Sizes, err = codec.DecodeMapAs[*ImageFile](dec, data["sizes"]); err != nil {
		return nil, fmt.Errorf("sizes: %w", err)
	}
	return md, nil
}

func (m *MediaDetails) ToRaw() map[string]any {
	return map[string]any{
		"original": m.Original,
		"sizes":    m.Sizes,
	}
}

// Media is an uploaded attachment.
type Media struct {
	PublishItemBase

	MediaType    MediaType     `json:"media_type"`
	MimeType     string        `json:"mime_type"`
	MediaDetails *MediaDetails `json:"media_details"`
	SourceURL    string        `json:"source_url"`
}

var mediaSkip = append([]string{"media_type", "media_details"}, publishSkip...)

func NewMedia(data map[string]any) (*Media, error) {
	d := normalizePublishRaw(data)
	m := &Media{}
	if err := record.FromRaw(d, m, mediaSkip...); err != nil {
		return nil, err
	}
	if err := m.fromRaw(d); err != nil {
		return nil, fmt.Errorf("media %d: %w", m.ID, err)
	}

	var err error
	if m.MediaType, err = ParseMediaType(cast.ToString(d["media_type"])); err != nil {
		return nil, fmt.Errorf("media %d: %w", m.ID, err)
	}
	details, _ := d["media_details"].(map[string]any)
	if m.MediaDetails, err = NewMediaDetails(details, m.SourceURL, m.MimeType); err != nil {
		return nil, fmt.Errorf("media %d: %w", m.ID, err)
	}
	return m, nil
}

func mediaFromTagged(data map[string]any, dec registry.Decoder) (*Media, error) {
	m := &Media{}
	if err := record.FromTagged(data, m, mediaSkip...); err != nil {
		return nil, err
	}
	if err := m.fromTagged(data, dec); err != nil {
		return nil, err
	}
	var err error
	if m.MediaType, err = codec.DecodeAs[MediaType](dec, data["media_type"]); err != nil {
		return nil, err
	}
	if m.MediaDetails, err = codec.DecodeAs[*MediaDetails](dec, data["media_details"]); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Media) ToRaw() map[string]any {
	out := map[string]any{
		"media_type":    m.MediaType,
		"mime_type":     m.MimeType,
		"media_details": m.MediaDetails,
		"source_url":    m.SourceURL,
	}
	m.rawInto(out)
	return out
}

// MediaList holds attachments in API order, keyed by attachment id.
type MediaList struct {
	container.List[int, *Media]
}

var mediaListOptions = container.Options[int, *Media]{
	New:   NewMedia,
	KeyOf: func(m *Media) int { return m.ID },
}

func NewMediaList() *MediaList {
	return &MediaList{List: container.NewList(mediaListOptions)}
}

func CreateMediaList(rows []any) (*MediaList, error) {
	return create(NewMediaList(), rows)
}

func mediaListFromTagged(data map[string]any, dec registry.Decoder) (*MediaList, error) {
	return rebuild(NewMediaList(), data, dec)
}
