/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"time"
)

// SnapshotItem is one persisted snapshot: a tagged JSON document plus the
// metadata needed to list it without decoding the body.
type SnapshotItem struct {
	// Key names the snapshot within its store.
	Key string `dynamodbav:"Key" json:"key"`
	// EntityType is the type tag of the top-level value.
	EntityType string `dynamodbav:"EntityType" json:"entity_type"`
	// Body is the tagged JSON document.
	Body string `dynamodbav:"Body" json:"body"`
	// SavedAt is when the snapshot was written, in UTC.
	SavedAt time.Time `dynamodbav:"SavedAt" json:"saved_at"`
}

// Info drops the body.
func (s SnapshotItem) Info() SnapshotInfo {
	return SnapshotInfo{Key: s.Key, EntityType: s.EntityType, SavedAt: s.SavedAt}
}

// SnapshotInfo describes a stored snapshot.
type SnapshotInfo struct {
	Key        string    `dynamodbav:"Key" json:"key" yaml:"key"`
	EntityType string    `dynamodbav:"EntityType" json:"entity_type" yaml:"entity_type"`
	SavedAt    time.Time `dynamodbav:"SavedAt" json:"saved_at" yaml:"saved_at"`
}
