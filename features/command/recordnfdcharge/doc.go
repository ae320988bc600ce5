// Package recordnfdcharge implements the Record NFD Charge use case.
//
// When the bank returns a client payment, the flat handling fee goes on the
// charter as a miscellaneous line. The fee amount and wording are fixed by
// policy, so the caller only supplies the charge identity.
package recordnfdcharge
