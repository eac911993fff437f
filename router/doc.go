// Package router computes one route per goal from a shared start cell.
//
// Two implementations of Router are provided:
//
//   - Sequential runs the searches one after another on the calling
//     goroutine, reusing a single search arena. It is the baseline.
//   - Parallel fans out one unit of work per goal with an errgroup and fans
//     back in once all of them finished. Each unit owns its arena and writes
//     only its own result slot, so the shared grid is the only common object
//     and it is read-only: no locks are taken.
//
// Both return results in goal order, one per goal, mixing found routes with
// per-goal failures (astar.StatusUnreachable, astar.StatusPathTooLong). Only
// boundary violations abort the whole batch, and they are detected before any
// search starts.
//
// Every batch is traced with OpenTelemetry and counted in Prometheus:
//
//   - gridroute_searches_total{router,status}
//   - gridroute_search_iteration_cap_total{router}
//   - gridroute_batch_errors_total{router}
//   - gridroute_batch_duration_seconds{router}
package router
