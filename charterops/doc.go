// Package charterops is the operations facade over the charter feature slices.
//
// Back-office callers work in terms of outcomes, not event streams: they want
// to know whether a cancellation went through, how many charge lines it
// struck, and what the balance is afterwards. The Service wraps every command
// and query handler behind one constructor, translates business refusals into
// typed results carrying a human-readable message, and returns infrastructure
// failures as plain errors so callers can tell the two apart.
//
// The Scheduler drives the recurring work through the same handlers the
// interactive path uses: refreshing cached duty summaries for the driver
// roster and applying settled bank postings as payments.
package charterops
