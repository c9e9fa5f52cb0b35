package domain

type ToggleResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

type CommentResult struct {
	ID            int64 `json:"id"`
	CommentsCount int   `json:"comments_count"`
}

// CounterDrift records a stored counter that disagreed with the true row count.
type CounterDrift struct {
	Key     ContentKey `json:"-"`
	Counter string     `json:"counter"` // "likes_count" or "comments_count"
	Stored  int        `json:"stored"`
	Actual  int        `json:"actual"`
}

// Reconciliation is the outcome of recomputing one entry's counters.
type Reconciliation struct {
	Key    ContentKey     `json:"key"`
	Before Counters       `json:"before"`
	After  Counters       `json:"after"`
	Drifts []CounterDrift `json:"drifts,omitempty"`
}

func (r Reconciliation) Drifted() bool {
	return len(r.Drifts) > 0
}

// Drifts compares stored counters to the true counts.
func Drifts(key ContentKey, stored, actual Counters) []CounterDrift {
	var out []CounterDrift
	if stored.Likes != actual.Likes {
		out = append(out, CounterDrift{Key: key, Counter: "likes_count", Stored: stored.Likes, Actual: actual.Likes})
	}
	if stored.Comments != actual.Comments {
		out = append(out, CounterDrift{Key: key, Counter: "comments_count", Stored: stored.Comments, Actual: actual.Comments})
	}
	return out
}
