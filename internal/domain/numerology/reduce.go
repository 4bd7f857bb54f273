package numerology

// Master numbers are fixed points of Reduce.
const (
	MasterEleven      = 11
	MasterTwentyTwo   = 22
	MasterThirtyThree = 33
)

// IsMaster reports whether n is one of the recognised master numbers.
func IsMaster(n int) bool {
	return n == MasterEleven || n == MasterTwentyTwo || n == MasterThirtyThree
}

// DigitSum adds the decimal digits of n. Negative values are treated as zero.
func DigitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// Reduce repeatedly sums the digits of n until it reaches 1-9 or a master
// number. The master check runs on every intermediate sum, so 38 -> 11 stops.
// Non-positive input returns 0.
func Reduce(n int) int {
	if n <= 0 {
		return 0
	}
	for n > 9 && !IsMaster(n) {
		n = DigitSum(n)
	}
	return n
}

// ReduceFull reduces n to a single digit 1-9 without honouring master numbers.
func ReduceFull(n int) int {
	if n <= 0 {
		return 0
	}
	for n > 9 {
		n = DigitSum(n)
	}
	return n
}
