/*
Package datastore defines the persistence layer for typed snapshots.

The main interface is DataStore, which saves and loads whole Records and
Containers under string keys:

	type DataStore interface {
	    Save(ctx context.Context, key string, v any, opts ...storagemodels.SaveOption) error
	    Load(ctx context.Context, key string) (any, error)
	    Delete(ctx context.Context, key string) error
	    List(ctx context.Context, opts ...storagemodels.ListOption) ([]storagemodels.SnapshotInfo, error)
	}

Every backend stores the tagged JSON produced by the codec together with the
top-level type tag. Encode and Decode implement that shared step.

Implementations:
  - file: one JSON document per snapshot in a directory
  - ddb: DynamoDB implementation with a single-table layout
  - mock: In-memory mock implementation for testing
*/
package datastore
