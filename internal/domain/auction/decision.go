package auction

import "github.com/shopspring/decimal"

// The cache is an optimization with an authoritative fallback: a cached price
// may only cause an early reject, never an acceptance. These helpers keep that
// decision pure so it can be tested without any real cache.

// BelowCachedPrice reports whether the fast path can reject the bid using the
// cached price alone. A nil cached value is a cache miss and never rejects.
func BelowCachedPrice(cached *decimal.Decimal, amount decimal.Decimal) bool {
	return cached != nil && amount.LessThanOrEqual(*cached)
}

// NeedsCacheHeal reports whether the reader that just loaded the authoritative
// value should repopulate the cache entry it found missing.
func NeedsCacheHeal(cached *decimal.Decimal) bool {
	return cached == nil
}
