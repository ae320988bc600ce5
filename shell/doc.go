// Package shell contains the adapter layer between the pure domain logic in core
// and the charter journal. Everything that touches I/O, serialization, clocks,
// retries, or observability lives here, so the core package can stay free of it.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the "application" or "adapter" layer.
package shell
