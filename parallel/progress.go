// SPDX-License-Identifier: MIT
// Package: parallel
//
// progress.go — non-blocking completion counters.

package parallel

import (
	"io"
	"sync/atomic"

	"github.com/cheggaaa/pb/v3"
)

// Progress counts completed rows. The zero value is ready to use and may be
// read from any goroutine while workers add to it.
type Progress struct {
	done  atomic.Int64
	total atomic.Int64
}

// Done returns the number of completed rows.
func (p *Progress) Done() int64 { return p.done.Load() }

// Total returns the number of rows of the current run.
func (p *Progress) Total() int64 { return p.total.Load() }

func (p *Progress) start(total int) {
	p.total.Store(int64(total))
	p.done.Store(0)
}

func (p *Progress) add(n int) { p.done.Add(int64(n)) }

// Complete records a run of total rows that finished without dispatching
// any work, leaving Done() == Total() == total.
func (p *Progress) Complete(total int) {
	p.start(total)
	p.add(total)
}

// bar wraps an optional pb.ProgressBar; a nil *bar is a no-op.
type bar struct {
	pb *pb.ProgressBar
}

func newBar(w io.Writer, total int) *bar {
	if w == nil || total == 0 {
		return nil
	}
	b := pb.Full.New(total)
	b.SetWriter(w)
	b.Start()

	return &bar{pb: b}
}

func (b *bar) add(n int) {
	if b != nil {
		b.pb.Add(n)
	}
}

func (b *bar) finish() {
	if b != nil {
		b.pb.Finish()
	}
}
