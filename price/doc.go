// Package price implements the matching engine's fixed-point price type.
//
// A Price is a signed 64-bit count of raw ticks. Scale fixes the
// relationship between a raw tick and a decimal currency unit. Two prices
// with the same raw value compare equal under every ordering; conversions
// to and from floating point are lossy and intended only for boundary
// code (request decoding, human-readable reporting), never for internal
// comparisons.
package price
