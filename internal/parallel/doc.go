// Package parallel provides the fire-and-join scope used to fan work out to
// a fixed set of goroutines. A scope cannot be left until every task it
// spawned has returned, so tasks never outlive the data they borrow.
package parallel
