package doctor

import "context"

type Repository interface {
	// MapByIDs returns one doctor per id for the ids that exist. An empty
	// id set short-circuits to an empty map without querying.
	MapByIDs(ctx context.Context, ids []int64) (map[int64]*Doctor, error)
}
