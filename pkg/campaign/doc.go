// Package campaign drives bulk templated email sends.
//
// A run assigns each recipient one of the loaded HTML templates in
// deterministic round-robin order (recipient i gets template i mod N),
// sends strictly sequentially, and paces consecutive sends with a fixed
// delay to stay under the provider rate limit. A failed send never aborts
// the run; it is captured in that recipient's Outcome and the driver moves
// on. The final Summary reports success and failure totals plus the
// distribution of successful sends per template.
package campaign
