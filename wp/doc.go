/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package wp defines the WordPress REST entities and their collections.
//
// Each entity has two constructors. NewX maps an API object, applying the
// field renames the endpoint needs (title.rendered is flattened, author becomes
// author_id, GMT dates become UTC timestamps, status and media_type become
// enums). The tagged constructor rebuilds the entity from its persisted form
// and decodes its own nested fields. Importing the package registers all of
// them with registry.Default.
package wp
