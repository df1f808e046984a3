package repository

// Page is a limit/offset window for listing operations. Rule filtering by
// sport is a first-class argument on the repositories, so nothing more lives
// here.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items plus the total count matching the
// query, so the admin rules screen can render pagination without an extra
// round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
