// Package spsc implements a bounded single-producer/single-consumer
// ring buffer: the transport the engine uses to move requests in and
// results out without either side ever blocking the other.
//
// Capacity is always a power of two and one slot is permanently
// reserved so that head == tail is unambiguously "empty" — a full
// ring never lets tail catch up to head. A ring of capacity C holds
// at most C-1 items.
package spsc
