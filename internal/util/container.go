package util

// MergeMap copies every entry of src into dest and returns dest.
func MergeMap[K comparable, V any](dest map[K]V, src map[K]V) map[K]V {
	for k, v := range src {
		dest[k] = v
	}
	return dest
}

// RemoveDuplicates drops repeated elements, keeping the first occurrence
// order. The input slice is mutated; use the returned slice, which aliases
// its backing array.
func RemoveDuplicates[T comparable](slice []T) []T {
	seen := make(map[T]struct{})
	j := 0
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		slice[j] = v
		j++
	}
	return slice[:j]
}
