// Package adjustdriverpay implements the Adjust Driver Pay use case.
//
// The payroll clerk overrides the suggested figures and the decision derives
// the money: total pay from payable hours at the prepared rate plus gratuity,
// float balance from float received minus receipts, and the net owed to the
// driver from the difference. Adjustments stay open until approval.
package adjustdriverpay
