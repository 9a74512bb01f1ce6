/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cast"
	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/registry"
)

// HrefLink is one entry of a HAL link list, e.g. {"href": "...", "embeddable": true}.
type HrefLink = map[string]any

// HrefMap is the _links object of an API response.
type HrefMap = map[string][]HrefLink

// HasLinks carries the hypermedia links and embedded resources of a response.
type HasLinks struct {
	Links    HrefMap        `json:"_links"`
	Embedded map[string]any `json:"_embedded"`
}

func (h *HasLinks) setDefaults() {
	if h.Embedded == nil {
		h.Embedded = map[string]any{}
	}
}

func (h *HasLinks) rawInto(out map[string]any) {
	out["_links"] = h.Links
	out["_embedded"] = h.Embedded
}

// Href returns the href of the first link with the relation.
func (h *HasLinks) Href(rel string) (string, bool) {
	links := h.Links[rel]
	if len(links) == 0 {
		return "", false
	}
	href, err := cast.ToStringE(links[0]["href"])
	if err != nil || href == "" {
		return "", false
	}
	return href, true
}

// Date fields arrive as "date_gmt" and "modified_gmt" without a zone marker.
const wpDateLayout = "2006-01-02T15:04:05"

// ParseDate parses a WordPress GMT date. Values without a zone are UTC.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.NewValidationError("date", "empty date")
	}
	if len(s) == len(wpDateLayout) {
		s += "Z"
	}
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return time.Time{}, errors.NewValidationError("date", err.Error())
	}
	return time.Time(dt).UTC(), nil
}

// HasDates holds the publication and modification timestamps.
type HasDates struct {
	PubDate      time.Time `json:"pub_date"`
	LastModified time.Time `json:"last_modified"`
}

var dateFields = []string{"date_gmt", "modified_gmt", "pub_date", "last_modified"}

func (h *HasDates) fromRaw(data map[string]any) error {
	var err error
	if h.PubDate, err = rawDate(data, "date_gmt"); err != nil {
		return err
	}
	h.LastModified, err = rawDate(data, "modified_gmt")
	return err
}

func (h *HasDates) fromTagged(data map[string]any, dec registry.Decoder) error {
	var err error
	if h.PubDate, err = codec.DecodeAs[time.Time](dec, data["pub_date"]); err != nil {
		return err
	}
	h.LastModified, err = codec.DecodeAs[time.Time](dec, data["last_modified"])
	return err
}

func (h *HasDates) rawInto(out map[string]any) {
	out["pub_date"] = h.PubDate
	out["last_modified"] = h.LastModified
}

func rawDate(data map[string]any, key string) (time.Time, error) {
	s, err := cast.ToStringE(data[key])
	if err != nil || s == "" {
		return time.Time{}, errors.NewValidationError(key, "missing date")
	}
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, errors.NewValidationError(key, err.Error())
	}
	return t, nil
}
