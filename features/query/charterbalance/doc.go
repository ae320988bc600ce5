// Package charterbalance implements the Charter Balance query use case.
//
// This feature provides a pure query operation that returns the money position
// of one charter: total charges including GST, total payments including
// consumed credits, and the open balance. It follows the Query-Project pattern
// without any command processing or event generation.
//
// A cancelled charter and a voided invoice both project a zero balance due,
// matching the settlement rules of the command side.
package charterbalance
