// Package orchestration runs a partitioned prime count: it resolves the
// worker count, partitions the domain, fans the chunks out to worker tasks,
// joins them and reads the sealed shared result. It also runs policy
// comparisons and repeated runs, and decouples presentation through the
// Observer, ResultPresenter and ErrorHandler interfaces.
package orchestration
