package peer

// Merge reconciles a local and a peer-fetched collection at read time. Local
// records come first in their original order; peer records whose key matches no
// local record are appended in peer order. Local wins on key collision. The
// result is deterministic for a given pair of inputs.
func Merge[T any](local, remote []T, key func(T) string) []T {
	merged := make([]T, 0, len(local)+len(remote))
	seen := make(map[string]bool, len(local))
	for _, item := range local {
		merged = append(merged, item)
		seen[key(item)] = true
	}
	for _, item := range remote {
		if !seen[key(item)] {
			merged = append(merged, item)
			seen[key(item)] = true
		}
	}
	return merged
}
