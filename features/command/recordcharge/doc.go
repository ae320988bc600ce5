// Package recordcharge implements the Record Charge use case.
//
// Every billable line on a charter flows through here: fees, extra time,
// beverages, gratuities and the corrective line types the accountants use.
// The charge type vocabulary is closed, GST is computed at recording time
// from the handler's tax policy, and negative quantities or prices are legal
// because discounts and comps are ordinary lines with their sign flipped.
//
// Charge identity is the caller-supplied ChargeID. Replaying a command with
// a known ID is absorbed as idempotent, including IDs of removed lines.
package recordcharge
