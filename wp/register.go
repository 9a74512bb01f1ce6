/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package wp

import (
	"github.com/suparena/wpstore/registry"
)

func init() {
	Register(registry.Default)
}

// Register adds every entity, container and enum of the package to r.
// The package registers itself with registry.Default on import.
func Register(r *registry.Registry) {
	registry.RegisterEnumIn(r, ParseStatus)
	registry.RegisterEnumIn(r, ParseMediaType)

	registry.RegisterRecordIn(r, wpItemFromTagged)
	registry.RegisterRecordIn(r, taxonomyFromTagged)
	registry.RegisterRecordIn(r, postTaxonomyRelFromTagged)
	registry.RegisterRecordIn(r, postFromTagged)
	registry.RegisterRecordIn(r, authorFromTagged)
	registry.RegisterRecordIn(r, imageFileFromTagged)
	registry.RegisterRecordIn(r, mediaDetailsFromTagged)
	registry.RegisterRecordIn(r, mediaFromTagged)

	registry.RegisterRecordIn(r, wpItemsFromTagged)
	registry.RegisterRecordIn(r, taxonomiesFromTagged)
	registry.RegisterRecordIn(r, postListFromTagged)
	registry.RegisterRecordIn(r, mediaListFromTagged)
	registry.RegisterRecordIn(r, authorsFromTagged)
}
