// Package parallel distributes independent row computations over a fixed
// worker pool and reassembles the results in row order.
//
// Rows are grouped into contiguous chunks (default 200) and fed through a
// bounded channel to a fixed set of workers (default runtime.NumCPU()). Each
// chunk writes only its own result slots, so no locking is needed and the
// returned slice is always in strict row order regardless of completion order.
//
// Failure policy: the first error cancels the remaining work and Rows returns
// ErrWorkerFailed wrapping the cause, with no partial results.
//
// Progress: a *Progress counter (atomic) can be read at any time while Rows
// is running; an optional terminal bar (cheggaaa/pb/v3) renders it.
package parallel
