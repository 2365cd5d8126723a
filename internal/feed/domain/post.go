package domain

type Post struct {
	ID       int64
	AuthorID int64
	Text     string
}

// TimelineEntry is one post as seen in an aggregated timeline.
type TimelineEntry struct {
	AuthorID int64
	Text     string
}
