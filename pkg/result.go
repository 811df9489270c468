package dirdupes

// ScanResult maps a content digest to the paths that produced it, in traversal
// order. Singleton lists are kept; filtering is done by FindDuplicates.
type ScanResult map[DigestKey][]string

// Add appends path to the list for key, creating the list if needed
func (r ScanResult) Add(key DigestKey, path string) {
	r[key] = append(r[key], path)
}

// Merge appends every list of other onto the matching list of r, preserving the
// order of other's lists
func (r ScanResult) Merge(other ScanResult) {
	for key, paths := range other {
		r[key] = append(r[key], paths...)
	}
}

// FileCount returns the number of paths across all digests
func (r ScanResult) FileCount() int {
	total := 0
	for _, paths := range r {
		total += len(paths)
	}
	return total
}

// Duplicates returns the subset of r whose lists hold more than one path
func (r ScanResult) Duplicates() ScanResult {
	dupes := make(ScanResult)
	for key, paths := range r {
		if len(paths) > 1 {
			dupes[key] = paths
		}
	}
	return dupes
}
