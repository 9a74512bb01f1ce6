/*
Package errors provides semantic error types for the wpstore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("entity not found")
	    ErrAlreadyExists   = errors.New("entity already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	    ErrIntegrity       = errors.New("integrity violation")
	)

Integrity violations (duplicate slug, type tag mismatch, timestamps without a
timezone, strict lookups of unknown keys or positions) all match ErrIntegrity.
They abort the current operation and are never silently repaired:

	if _, err := posts.Append(row); err != nil {
	    if errors.IsIntegrity(err) {
	        return fmt.Errorf("page 3 is corrupt: %w", err)
	    }
	    return err
	}

Lookups through the defaulting accessors (GetByID, GetBySlug) never return
errors; "not present" is an expected outcome there.
*/
package errors
