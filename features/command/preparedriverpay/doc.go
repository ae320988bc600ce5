// Package preparedriverpay implements the Prepare Driver Pay use case.
//
// Preparation opens the pay statement for a finished charter and seeds it
// with suggestions the payroll clerk can accept or adjust. Suggested hours
// come from the driver's logged duty day when one covers the pickup date,
// otherwise from route actuals, otherwise from the plan, with route minutes
// rounded up to the next quarter hour. Suggested gratuity sums the active
// gratuity lines unless an incident forfeited it. The pay rate comes from
// the employee directory as of the completion date.
package preparedriverpay
