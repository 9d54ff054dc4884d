// Package logging defines the structured logger used by the prime counter
// and its zerolog-backed implementations: a JSON logger for machines and a
// console logger for the command line.
package logging
