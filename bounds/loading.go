package bounds

// LoadingState tracks how many pages of a Pages sequence were consumed.
type LoadingState struct {
	pages  *Pages
	turned int
	total  int
}

// NewLoadingState starts tracking pages. A nil pages value is treated as an
// empty sequence.
func NewLoadingState(pages *Pages) *LoadingState {
	if pages == nil {
		pages = &Pages{}
	}

	return &LoadingState{pages: pages, total: pages.Len()}
}

// Next hands out the next page and counts it as turned.
func (l *LoadingState) Next() (Page, bool) {
	pg, ok := l.pages.Next()
	if ok {
		l.turned++
	}

	return pg, ok
}

// Turned returns the number of pages handed out so far.
func (l *LoadingState) Turned() int { return l.turned }

// Total returns the number of pages being tracked.
func (l *LoadingState) Total() int { return l.total }

// Done reports whether every page was handed out.
func (l *LoadingState) Done() bool { return l.turned >= l.total }

// Progress returns turned/total, or 1.0 when there is nothing to load.
func (l *LoadingState) Progress() float32 {
	if l.total == 0 {
		return 1.0
	}

	return float32(l.turned) / float32(l.total)
}
