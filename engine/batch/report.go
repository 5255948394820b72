package batch

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/kage/core"
)

// Report summarizes a run.
type Report struct {
	Candidates int           // number of candidates handed to the run
	Rendered   []string      // paths of files written, sorted
	Skipped    []Skip        // skipped candidates, sorted by name
	Duration   time.Duration // wall time of the run
	Aborted    bool          // run stopped before all candidates were processed
}

// Skip records a skipped candidate and why it has been skipped.
type Skip struct {
	Name string
	Err  error
}

// Reason is a short description of why a candidate has been skipped.
func (s Skip) Reason() string {
	return core.UserMessage(s.Err)
}

func (r *Report) finish(d time.Duration, aborted bool) {
	sort.Strings(r.Rendered)
	sort.Slice(r.Skipped, func(i, j int) bool {
		return r.Skipped[i].Name < r.Skipped[j].Name
	})
	r.Duration = d
	r.Aborted = aborted
}

// Summary is a one-line description of the run.
func (r *Report) Summary() string {
	s := fmt.Sprintf("rendered %s of %s glyphs, skipped %s, in %s",
		humanize.Comma(int64(len(r.Rendered))), humanize.Comma(int64(r.Candidates)),
		humanize.Comma(int64(len(r.Skipped))), r.Duration.Round(time.Millisecond))
	if r.Aborted {
		s += " (aborted)"
	}
	return s
}

// SkipCounts groups skipped candidates by core error code.
func (r *Report) SkipCounts() map[int]int {
	counts := make(map[int]int)
	for _, s := range r.Skipped {
		counts[core.Code(s.Err)]++
	}
	return counts
}
