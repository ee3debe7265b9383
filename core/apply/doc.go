// Package apply
// Author: momentics <momentics@gmail.com>
//
// Executors that materialize the post-edit sequence for an original byte
// sequence and a sorted batch of positional Insert/Remove edits, all in
// O(n+m) time and with allocation limited to the output (plus, for the
// partitioned strategies, one scratch region for the insert-expanded
// intermediate).
//
// Three strategies of increasing sophistication, benchmarked against each
// other in tests/benchmarks:
//
//   - Merge: single interleaved pass over sequence and batch. The
//     correctness baseline; validates its preconditions.
//   - Partitioned: splits the batch into an insert list and a rebased
//     remove list, then applies them in two branch-light bulk-copy
//     passes. Validates its preconditions.
//   - Fast: the partitioned strategy writing through unchecked
//     exact-capacity writers. Assumes its preconditions; callers that
//     cannot guarantee them must use Merge or Partitioned.
//
// All strategies produce byte-identical output for the same valid inputs.
package apply
