// Package core contains the domain model of the charter lifecycle and
// billing engine: domain events, status machines, money arithmetic, duty
// grading and the pure projections built from event streams.
//
// Events represent meaningful business occurrences like CharterBooked and
// InvoiceFinalized rather than generic create/update operations. All domain
// events implement the DomainEvent interface with IsEventType(),
// HasOccurredAt() and IsErrorEvent() methods for journal integration.
//
// Everything in this package is pure: no I/O, no clocks, no randomness.
// In Domain-Driven Design or Hexagonal Architecture terminology, this would
// be called the 'domain' layer.
package core
