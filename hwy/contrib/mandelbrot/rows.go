// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mandelbrot

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwy-mandelbrot/hwy/contrib/workerpool"
)

// driver schedules row tasks. A nil pool fans out with short-lived
// goroutines bounded by GOMAXPROCS.
type driver struct {
	pool     *workerpool.Pool
	rowBatch int
}

// splitRows partitions out into one view per image row. The views do not
// overlap and are capped at their own length, so a task holding one can
// never write into a neighbour's row.
func splitRows(out []uint32, dims Dimensions) [][]uint32 {
	rows := make([][]uint32, dims.Height)
	for i := range rows {
		lo, hi := i*dims.Width, (i+1)*dims.Width
		rows[i] = out[lo:hi:hi]
	}
	return rows
}

// forEachRow calls fn once for every row view and returns when all calls
// have finished. Each view is handed to exactly one call.
func (d driver) forEachRow(rows [][]uint32, fn func(i int, row []uint32)) {
	n := len(rows)
	batch := max(d.rowBatch, 1)
	run := func(start, end int) {
		for i := start; i < end; i++ {
			fn(i, rows[i])
		}
	}

	if d.pool != nil {
		if batch == 1 {
			d.pool.ParallelForAtomic(n, func(i int) { fn(i, rows[i]) })
		} else {
			d.pool.ParallelForAtomicBatched(n, batch, run)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < n; start += batch {
		end := min(start+batch, n)
		g.Go(func() error {
			run(start, end)
			return nil
		})
	}
	// Row tasks cannot fail; Wait is the join barrier.
	_ = g.Wait()
}
