package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 24
	// MaxLimit caps how many items any page can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers.
//
// The catalog grid filters and sorts in memory per request, so pages are
// plain limit/offset windows over the ordered result rather than cursors.
type Params struct {
	Limit  int
	Offset int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizeOffset clamps negative offsets to zero.
func NormalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// Window slices [offset, offset+limit) out of an ordered result of the given
// total length, returning the normalized bounds. An offset past the end
// yields an empty window.
func Window(params Params, total int) (start, end int) {
	limit := NormalizeLimit(params.Limit)
	start = NormalizeOffset(params.Offset)
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end
}
