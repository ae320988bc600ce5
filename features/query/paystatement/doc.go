// Package paystatement implements the Pay Statement query use case.
//
// The statement mirrors the driver pay workflow on one charter: suggested
// values from preparation, the recomputed breakdown once adjusted, and the
// approval and settlement stamps. The effective hourly rate is derived on
// read and stays undefined until payable hours exist.
package paystatement
