/*
Package wpstore is a typed client for the WordPress REST API with snapshot
persistence.

Responses are turned into Records (posts, media, taxonomies, terms, authors)
held in Containers that keep insertion order, lookup by id and lookup by slug
consistent. Whole graphs serialize to a tagged JSON form that carries each
object's concrete type, so a saved snapshot loads back as the same types.

Packages:
  - registry, codec, record, container: the typed object model and its encoding
  - wp: WordPress entities and their containers
  - client, config: authenticated, paginated, cached REST access
  - datastore (file, ddb, mock): snapshot persistence

Basic Usage:

	cfg, _ := config.Load(config.DefaultEnvFile())
	c, _ := client.New(cfg)
	posts, _ := c.GetPosts(ctx, "", client.PageOptions{PerPage: 50})

	// Register datastores by name
	sm := wpstore.NewStorageManager()
	local, _ := file.New("snapshots")
	sm.RegisterDataStore("file", local)

	// Save and load with the concrete type
	store, _ := wpstore.GetTypedStore[*wp.PostList](sm, "file")
	err := store.Save(ctx, "posts", posts)
	posts, err = store.Load(ctx, "posts")
*/
package wpstore
