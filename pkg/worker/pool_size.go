package worker

import "runtime"

// OptimalPoolSize returns the default worker count for CPU-bound parse
// work: min(max(runtime.NumCPU()*2, 4), 32).
func OptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// OptimalPoolSizeWithOverride returns override when positive, else
// OptimalPoolSize().
func OptimalPoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return OptimalPoolSize()
}
</content>
