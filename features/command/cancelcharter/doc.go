// Package cancelcharter implements the Cancel Charter use case.
//
// Cancelling scrubs the run from dispatch and strikes every charge line in
// one decision, so a cancelled charter never carries a balance. The office
// audits failed cancellation attempts, which is why a refusal still appends
// a CharterCancellationRefused event before the error surfaces.
package cancelcharter
