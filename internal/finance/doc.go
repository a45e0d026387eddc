// Package finance derives payment obligations from debts and merges them
// with real transactions.
//
// Everything in this package is pure: functions only read their arguments
// and never perform I/O, so they are safe for concurrent use.
package finance
