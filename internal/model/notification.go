package model

// Notification is a pending in-app alert. DedupKey collapses repeated posts
// for the same underlying task into one visible row.
type Notification struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	DedupKey string `json:"dedup_key"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Ctime    int64  `json:"ctime"`
	Mtime    int64  `json:"mtime"`
}
