// Package engine drives one matching engine: request dispatch, the
// price-time priority matching algorithm, residual handling for
// IOC/FOK orders, and the SPSC-backed request/result transport that
// isolates submitters and consumers from the matching thread.
//
// Exactly one goroutine may call ProcessOrders on a given Engine.
// SubmitOrder and GetResult may each be called from one other,
// independent goroutine, matching the SPSC contract of the rings they
// sit on top of.
package engine
