/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package container holds ordered collections of records that are indexed by
// identity key and by slug.
//
// A Container keeps three structures in step: items by key, key by slug, and
// the keys in insertion order. Slugs are unique within a container and an
// append that would reuse one fails without changing anything. List adds
// positional access and Dict adds strict keyed access. Both persist as one
// tagged object with the fields items_by_id, item_slug_map and item_indices.
//
// Domain collections embed a List or Dict by value and register a constructor
// that calls DecodeTagged:
//
//	type PostList struct {
//		container.List[int, *Post]
//	}
package container
