// Package signal produces deterministic test recordings and reshapes
// recordings before analysis.
package signal
