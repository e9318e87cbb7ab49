// Package orchestrator runs one request end to end: validate the subjects,
// resolve a dataset sample for each, transform the samples into tensors and
// dispatch a single inference call. It keeps no state between calls.
package orchestrator
