// Package recorddutyday implements the Record Duty Day use case.
//
// Drivers log one duty day per date with on and off duty stamps and break
// minutes. The decision grades the rolling duty window against the hours of
// service ceiling at write time and stamps the classification into the
// event, so statements never re-derive compliance. Re-recording a date is a
// correction and replaces the earlier hours in the window. Exempt days keep
// their hours on record but stay out of the window arithmetic.
package recorddutyday
