// Package partition splits the input domain into per-worker chunks.
//
// Two policies are supported and are never mixed:
//
//   - Block slices the unshuffled domain into W contiguous ranges. Because
//     the predicate gets more expensive as values grow, later chunks cost
//     more than earlier ones. The imbalance is kept on purpose: it is the
//     baseline the interleaved policy is measured against.
//   - Interleaved shuffles a private copy of the domain once, reads it in
//     rows of W items and deals item j of every row to chunk j, so cheap and
//     expensive items are mixed in every chunk.
//
// Both policies return exactly W disjoint chunks whose union is the domain.
package partition
