package trop

// Outcome is the variant-erased view of a Result, for reporting layers
// that accept results of mixed value types (journaling, finalizers).
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// IsEmpty returns true if the result was never constructed
	IsEmpty() bool
	// Cause returns the type-erased error value, nil unless failed
	Cause() any
	// String renders the variant and its payload
	String() string
}

// ValueProvider is the typed read side of a Result.
type ValueProvider[T any] interface {
	Outcome
	// Value returns the successful result value
	Value() T
}
