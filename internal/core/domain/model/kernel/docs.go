// Package kernel provides core domain primitives shared across the storefront
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - Email: A value object for validated customer email addresses
//   - Price: A value object for non-negative fixed-point monetary amounts
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
