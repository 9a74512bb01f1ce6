/*
Package storagemodels defines the data structures shared by the snapshot stores.

Key Types:

SnapshotItem:
One persisted snapshot. Body holds the tagged JSON document and EntityType
its top-level type tag:

	item := SnapshotItem{
	    Key:        "posts",
	    EntityType: "github.com/suparena/wpstore/wp.PostList",
	    Body:       `{"type-tag": "...", "items_by_id": {...}}`,
	    SavedAt:    time.Now().UTC(),
	}

SaveOptions and ListOptions:
Functional options for writes and listings:

	store.Save(ctx, "posts", posts, WithCreateOnly())
	store.List(ctx, WithPrefix("posts-"), WithPageSize(25), WithMaxRetries(3))

These types provide a consistent interface across the file, DynamoDB and mock stores.
*/
package storagemodels
