/*
Package file stores snapshots as tagged JSON documents in a directory.

Each key maps to <dir>/<key>.json. Writes go through a temporary file and a
rename, so a crash never leaves a half-written snapshot behind:

	store, err := file.New("snapshots")
	err = store.Save(ctx, "posts", posts)
	v, err := store.Load(ctx, "posts")
*/
package file
