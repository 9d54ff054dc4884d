// Package apperrors holds the error types of the prime counter and maps
// them to process exit codes.
//
// A run fails as a whole: a ConfigError is raised before any worker starts,
// a WorkerError names the worker whose task returned an error or panicked,
// and an IncompleteRunError reports workers whose results never reached the
// shared collection. Types carrying a cause implement Unwrap, so callers
// use errors.Is and errors.As rather than comparing messages.
package apperrors
