package bounds

import (
	"fmt"
	"math"
)

// Page is one request-sized chunk of a Bounds. Start is included and End is
// excluded by the fetcher; consecutive chunks of one interval share the
// boundary value (End of one page equals Start of the next).
type Page struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Bounds returns the page as a closed interval.
func (p Page) Bounds() Bounds { return Bounds{Lo: p.Start, Hi: p.End} }

// Pages is a one-shot forward cursor over the chunks of a Set.
type Pages struct {
	vals []Page
	step int64
	curr int
}

// NewPages walks set in its current order and splits every interval whose
// Len exceeds step*limit into back-to-back chunks of that size, the last one
// clipped to the interval's end. Shorter intervals become a single page.
//
// Stage 1 (Validate): step >= 1, limit >= 1, step*limit fits in an int64.
// Stage 2 (Execute): chunk each interval. A chunk end is computed only when
// it lies strictly inside the interval, so intervals near math.MaxInt64 are
// safe.
// Complexity: O(Σ Len/(step*limit) + n).
func NewPages(set Set, step, limit int64) (*Pages, error) {
	if step < 1 {
		return nil, fmt.Errorf("NewPages(step=%d): %w", step, ErrInvalidStep)
	}
	if limit < 1 {
		return nil, fmt.Errorf("NewPages(limit=%d): %w", limit, ErrInvalidLimit)
	}

	if step > math.MaxInt64/limit {
		return nil, fmt.Errorf("NewPages(step=%d, limit=%d): %w", step, limit, ErrPageSizeOverflow)
	}

	size := step * limit
	vals := make([]Page, 0, set.Len())
	for _, b := range set.items {
		start := b.Lo
		for span(start, b.Hi) > uint64(size) {
			vals = append(vals, Page{Start: start, End: start + size})
			start += size
		}
		vals = append(vals, Page{Start: start, End: b.Hi})
	}

	return &Pages{vals: vals, step: step}, nil
}

// Step returns the step the pages were built with.
func (p *Pages) Step() int64 { return p.step }

// Len returns the total number of pages, consumed or not.
func (p *Pages) Len() int { return len(p.vals) }

// Remaining returns the number of pages Next has not handed out yet.
func (p *Pages) Remaining() int { return len(p.vals) - p.curr }

// All returns a copy of every page in order, ignoring the cursor.
func (p *Pages) All() []Page {
	out := make([]Page, len(p.vals))
	copy(out, p.vals)

	return out
}

// Next returns the page under the cursor and advances it.
// It returns false once every page has been handed out; there is no reset.
func (p *Pages) Next() (Page, bool) {
	if p.curr >= len(p.vals) {
		return Page{}, false
	}
	pg := p.vals[p.curr]
	p.curr++

	return pg, true
}
