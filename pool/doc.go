// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-classed scratch-buffer pooling for the partitioned fast path.
// Regions hold the insert-expanded intermediate sequence of one Apply
// call and are recycled across calls, so steady-state application of
// large batches allocates nothing but the output itself. Large size
// classes are hugepage-backed where the platform supports it.
package pool
