/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import "reflect"

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
