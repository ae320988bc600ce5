// Package lockcharter implements the Lock Charter use case.
//
// Accounting locks a charter while a dispute or a period close is in flight.
// A locked charter refuses every mutation until someone with the key unlocks
// it again; the lock itself is the only thing an unlock may touch.
package lockcharter
