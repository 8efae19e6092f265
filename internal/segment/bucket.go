package segment

import "math"

// MinuteOf maps a start offset in seconds to its minute bucket.
// Negative offsets are clamped to bucket 0.
func MinuteOf(startSeconds float64) int {
	if startSeconds <= 0 || math.IsNaN(startSeconds) {
		return 0
	}
	return int(math.Floor(startSeconds / 60))
}
