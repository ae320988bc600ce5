// Package completecharter implements the Complete Charter use case.
//
// Completion closes the service phase and opens the invoice in the same
// append, numbered after the reserve number with a due date from the billing
// policy's net terms. The off duty stamp recorded here is what driver pay
// preparation falls back on when no duty day was logged.
package completecharter
