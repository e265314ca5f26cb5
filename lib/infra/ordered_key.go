package infra

import (
	"errors"
	"time"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// If future releases of Go add new predeclared unsigned integer types,
// this constraint will be modified to include them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

var (
	ErrKeyNotComparable     = errors.New("[key-cmp] key is not orderable under the active comparator")
	ErrMissingKeyComparator = errors.New("[key-cmp] missing key comparator")
)

// KeyComparator is a strict total order over K.
// Assume i is the new key.
//  1. i == j (return 0)
//  2. i > j (return 1), turn to right part.
//  3. i < j (return -1), turn to left part.
//
// A non-nil error is an ordering error: the two keys cannot be ordered at
// all. Callers must surface it before committing any structural change and
// must never downgrade it to "equal".
type KeyComparator[K any] func(i, j K) (int64, error)

// OrderedKeyCompare is the default ascending comparator for the built-in
// orderable key families. Float NaN keys fail the self-equality test below
// and are rejected instead of being silently placed; negative zero and
// positive zero compare equal under native float equality.
func OrderedKeyCompare[K OrderedKey](i, j K) (int64, error) {
	if i != i || j != j {
		return 0, ErrKeyNotComparable
	}
	if i == j {
		return 0, nil
	} else if i < j {
		return -1, nil
	}
	return 1, nil
}

// DescOrderedKeyCompare is OrderedKeyCompare with the order reversed.
func DescOrderedKeyCompare[K OrderedKey](i, j K) (int64, error) {
	res, err := OrderedKeyCompare[K](i, j)
	return -res, err
}

// TimeKeyCompare orders time.Time keys by instant, monotonic clock
// included when both carry one.
func TimeKeyCompare(i, j time.Time) (int64, error) {
	return int64(i.Compare(j)), nil
}
