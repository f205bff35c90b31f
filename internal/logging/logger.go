// Package logging provides the engine's structured logger.
//
// Per-request outcomes are never logged here — they travel as
// engine.Result values on the egress ring. This package only carries
// the handful of events a human operator actually needs to see:
// capacity exhaustion, expected rejections worth a trace at debug
// level, and the moment right before an invariant-violation panic.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the package-level logger shared by orderbook and engine.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}

// PoolExhausted logs a Warn when a request was rejected purely for
// lack of pool capacity.
func PoolExhausted(symbol string, requestType string) {
	Log.WithFields(logrus.Fields{
		"symbol":       symbol,
		"request_type": requestType,
	}).Warn("order pool exhausted, request rejected")
}

// ExpectedRejection logs a Debug for an outcome that is a normal,
// anticipated branch of the matching algorithm (FOK unfillable, IOC
// residual discarded), not an error.
func ExpectedRejection(symbol string, orderID uint64, reason string) {
	Log.WithFields(logrus.Fields{
		"symbol":   symbol,
		"order_id": orderID,
		"reason":   reason,
	}).Debug("expected rejection")
}

// InvariantViolation logs an Error immediately before the caller
// panics with the same condition. Kept separate from the panic value
// itself so the JSON log line survives even if the recovering layer
// swallows the panic's message.
func InvariantViolation(symbol string, orderID uint64, message string) {
	Log.WithFields(logrus.Fields{
		"symbol":   symbol,
		"order_id": orderID,
	}).Error(message)
}
