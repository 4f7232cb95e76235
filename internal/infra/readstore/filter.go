package readstore

import (
	"fmt"
	"strings"
	"time"

	"gavel/internal/usecase/queries"
)

// BuildListFilter maps each set option of the filter to exactly one SQL
// clause. It is a pure function so the mapping is testable without a store.
// Listings only show auctions that have not yet ended.
func BuildListFilter(f queries.AuctionFilter, now time.Time) (string, []any) {
	clauses := []string{"a.end_time > $1"}
	args := []any{now}

	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(a.title ILIKE $%d OR a.description ILIKE $%d)", n, n))
	}
	if f.MinPrice != nil {
		args = append(args, f.MinPrice.String())
		clauses = append(clauses, fmt.Sprintf("a.current_price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, f.MaxPrice.String())
		clauses = append(clauses, fmt.Sprintf("a.current_price <= $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}
