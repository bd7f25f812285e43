package domain

import "context"

// Loader produces the wide-format GISTEMP table. Implementations may cache;
// a failed load must surface its error rather than return partial data.
type Loader interface {
	Load(ctx context.Context) (RawTable, error)
}
