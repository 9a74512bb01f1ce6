/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"fmt"
	"strings"

	"github.com/suparena/wpstore/errors"
)

// Status is the publication state of a post or attachment.
type Status int

const (
	StatusPublish Status = iota + 1
	StatusFuture
	StatusDraft
	StatusPending
	StatusPrivate
	StatusInherit
)

var statusNames = map[Status]string{
	StatusPublish: "publish",
	StatusFuture:  "future",
	StatusDraft:   "draft",
	StatusPending: "pending",
	StatusPrivate: "private",
	StatusInherit: "inherit",
}

func (s Status) String() string { return statusNames[s] }

func (s Status) EnumName() string { return s.String() }

func (s Status) EnumValue() int { return int(s) }

// ParseStatus matches a status name case-insensitively.
func ParseStatus(name string) (Status, error) {
	lower := strings.ToLower(name)
	for s, n := range statusNames {
		if n == lower {
			return s, nil
		}
	}
	return 0, errors.NewValidationError("status", fmt.Sprintf("unknown status %q", name))
}

// MediaType distinguishes images from other uploaded files.
type MediaType int

const (
	MediaTypeImage MediaType = iota + 1
	MediaTypeFile
)

func (m MediaType) String() string {
	switch m {
	case MediaTypeImage:
		return "image"
	case MediaTypeFile:
		return "file"
	}
	return ""
}

func (m MediaType) EnumName() string { return m.String() }

func (m MediaType) EnumValue() int { return int(m) }

// ParseMediaType matches a media type name case-insensitively.
func ParseMediaType(name string) (MediaType, error) {
	switch strings.ToLower(name) {
	case "image":
		return MediaTypeImage, nil
	case "file":
		return MediaTypeFile, nil
	}
	return 0, errors.NewValidationError("media_type", fmt.Sprintf("unknown media type %q", name))
}
