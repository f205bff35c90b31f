// Package orderbook holds the keyed, price-indexed data structure that
// stores resting orders and answers best-price queries for one symbol.
//
// The book never matches orders itself — that is the matching engine's
// job, layered on top of the book's public operations (AddOrder,
// RemoveOrder, UpdateOrderQuantity, GetBestBid/GetBestAsk, ...). Keeping
// matching out of the book mirrors the reference implementation's split
// between OrderBook and MatchingEngine.
package orderbook
