package quota

import (
	"fmt"
	"strconv"
)

// Limit is an entitlement value for one resource: either a non-negative
// numeric cap or unlimited. The zero value is Numeric(0), i.e. nothing
// allowed. Modeled as an opaque value type rather than an integer with a
// magic sentinel so the unlimited case can never leak into an arithmetic
// comparison.
type Limit struct {
	n         int64
	unlimited bool
}

// Unlimited returns the limit that admits any usage.
func Unlimited() Limit {
	return Limit{unlimited: true}
}

// Numeric returns a numeric limit. Panics on a negative cap: limits come
// from catalog validation or fixed constants, so a negative value is a
// programming error and must not be silently clamped.
func Numeric(n int64) Limit {
	if n < 0 {
		panic(fmt.Sprintf("quota: negative limit %d", n))
	}
	return Limit{n: n}
}

// IsUnlimited reports whether the limit admits any usage.
func (l Limit) IsUnlimited() bool {
	return l.unlimited
}

// Value returns the numeric cap. The second return is false for unlimited
// limits, whose numeric value is meaningless.
func (l Limit) Value() (int64, bool) {
	if l.unlimited {
		return 0, false
	}
	return l.n, true
}

// String renders the limit for logs and diagnostics.
func (l Limit) String() string {
	if l.unlimited {
		return "unlimited"
	}
	return strconv.FormatInt(l.n, 10)
}

// Within reports whether usage fits under the limit. Unlimited admits
// everything; a numeric cap requires usage to be strictly below it, so an
// account sitting exactly at its cap is already full and may not grow.
func Within(usage int64, l Limit) bool {
	if l.unlimited {
		return true
	}
	return usage < l.n
}
