// Package buffer provides a fixed-capacity float64 ring that keeps a running
// sum of its live samples. Pushing into a full ring evicts the oldest sample,
// so both Push and Mean run in constant time regardless of capacity.
package buffer
