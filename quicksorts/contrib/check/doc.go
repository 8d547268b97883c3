// Package check cross-validates the quicksorts entry points against the
// standard library.
//
// A Case names a sort kind, an input pattern, an array size and a seed. Run
// builds the input, sorts one copy with slices.SortFunc and another with the
// kind, and reports the timings along with any mismatch. Every kind sorts
// fixed-size records so that the byte entry points and the typed entry
// points are checked the same way.
//
// # Example Usage
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	results := check.RunAll(ctx, pool, "unstable_qsort", check.Patterns(), check.Sizes(100000), 1)
//	for _, r := range results {
//	    if r.Failed() {
//	        log.Fatalf("%s/%s/%d: %s", r.Kind, r.Pattern, r.Size, r.Error)
//	    }
//	}
//
// Integer kinds sort int32 keys drawn from [-1000, 1000]. The big kinds
// sort 2048-byte records holding NUL-padded decimal strings compared the
// way strcmp compares them.
package check
