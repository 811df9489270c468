package dirdupes

// DuplicateGroup represents a group of files with the same content digest
type DuplicateGroup struct {
	Digest DigestKey `json:"digest" yaml:"digest"`
	Files  []string  `json:"files" yaml:"files"`
	Count  int       `json:"count" yaml:"count"`
}

// FindDuplicates returns the groups of result holding more than one path. Groups
// come back ordered by digest; paths keep their traversal order.
func FindDuplicates(result ScanResult) []DuplicateGroup {
	index := newGroupIndex()

	for digest, paths := range result.Duplicates() {
		files := make([]string, len(paths))
		copy(files, paths)
		index.Insert(&DuplicateGroup{
			Digest: digest,
			Files:  files,
			Count:  len(files),
		})
	}

	groups := make([]DuplicateGroup, 0, index.Length())
	index.ForEach(func(group *DuplicateGroup) bool {
		groups = append(groups, *group)
		return true
	})
	return groups
}
