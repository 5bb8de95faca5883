// Package scan orchestrates availability probing across revisions.
//
// A Scanner walks a sequence of revisions (either a contiguous range or the
// positions reported by the release feed), probes every supported platform
// concurrently for each revision, and hands the finished row to a report
// writer before moving on to the next revision.
//
// Design decision: Rows are strictly sequential while probes within a row run
// concurrently because:
// 1. Output order must match the requested revision order regardless of
//    probe latency
// 2. A row can only be rendered once all of its platform probes have finished
// 3. Per-row fan-out keeps at most one row's worth of requests in flight,
//    which is gentle on the snapshot storage host
package scan
