// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Worker-pool plumbing for applying many independent edit batches
// concurrently. Each batch application stays single-threaded and
// synchronous; concurrency exists only across jobs, which share no
// mutable state. Lock-free per-worker rings absorb the common case and a
// mutex-guarded FIFO takes the overflow.
package concurrency
