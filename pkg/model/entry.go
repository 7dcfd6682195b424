package model

// Entry is a single journal record. Entries are immutable once created.
type Entry struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
}

type CreateEntryReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type DeleteEntryRes struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}
