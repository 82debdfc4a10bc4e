package bloom

import "math"

const ln2Squared = math.Ln2 * math.Ln2

// CheckParams validates a capacity and false positive rate for sizing.
//
// The Optimal* functions assume their inputs already passed this check.
func CheckParams(capacity uint64, fpRate float64) error {
	if capacity == 0 {
		return ErrBadCapacity
	}
	if err := checkFPRate(fpRate); err != nil {
		return err
	}
	if bitCountFloat(capacity, fpRate) > float64(MaxBitCount) {
		return ErrSizeOverflow
	}
	return nil
}

func checkFPRate(fpRate float64) error {
	// NaN fails both comparisons.
	if !(fpRate > 0 && fpRate < 1) {
		return ErrBadFPRate
	}
	return nil
}

func bitCountFloat(capacity uint64, fpRate float64) float64 {
	n := float64(capacity)
	return math.Ceil(-n * math.Log(fpRate) / ln2Squared)
}

// OptimalBitCount returns m, the number of bits needed to hold capacity
// elements at the given false positive rate:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
func OptimalBitCount(capacity uint64, fpRate float64) uint64 {
	return uint64(bitCountFloat(capacity, fpRate))
}

// OptimalCapacity returns n, the number of elements bitCount bits can hold
// at the given false positive rate. It is the approximate inverse of
// OptimalBitCount:
//
//	n = round(m * ln(2)^2 / -ln(p))
func OptimalCapacity(bitCount uint64, fpRate float64) uint64 {
	m := float64(bitCount)
	return uint64(math.Round(m * ln2Squared / -math.Log(fpRate)))
}

// OptimalHashCount returns k, the number of bit positions per element:
//
//	k = ceil(m / n * ln(2))
//
// The result is never less than 1.
func OptimalHashCount(capacity uint64, bitCount uint64) uint64 {
	n := float64(capacity)
	m := float64(bitCount)
	k := uint64(math.Ceil(m / n * math.Ln2))
	return max(k, 1)
}

// EstimateFPRate returns the theoretical false positive rate of an m bit
// filter using k hashes once n distinct elements are inserted:
//
//	(1 - e^(-k*n/m))^k
func EstimateFPRate(n uint64, bitCount uint64, k uint64) float64 {
	if bitCount == 0 {
		return 1
	}
	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(n)/float64(bitCount)), kf)
}

// bitCountForSize returns the bit count of a byte size, or ErrSizeOverflow.
func bitCountForSize(sizeBytes uint64) (uint64, error) {
	if sizeBytes > MaxBitCount/8 {
		return 0, ErrSizeOverflow
	}
	return sizeBytes * 8, nil
}
