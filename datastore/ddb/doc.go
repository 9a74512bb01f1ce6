/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

Snapshots live in a single table. Each item carries the tagged JSON body, the
top-level type tag and the save time, with keys expanded from SnapshotIndexMap:

	indexMap := map[string]string{
	    "PK":  "SNAPSHOT#{Key}",  // Becomes "SNAPSHOT#posts"
	    "SK":  "SNAPSHOT#{Key}",
	    "PK1": "SNAPSHOT",        // Static GSI1 partition
	    "SK1": "{Key}",           // GSI1 sort key
	}

Listing queries GSI1 page by page and retries throttled pages:

	infos, err := store.List(ctx,
	    storagemodels.WithPrefix("posts-"),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	)

The store talks to DynamoDB through the API interface, which *dynamodb.Client
satisfies and tests can fake.
*/
package ddb
