package dirdupes

import (
	"strings"

	zcsl "github.com/mattkeenan/zerocopyskiplist"
)

const groupIndexLevels = 16

// groupIndex keeps duplicate groups ordered by digest. Entries carry no context.
type groupIndex struct {
	skiplist *zcsl.ZeroCopySkiplist[DuplicateGroup, string, struct{}]
}

func newGroupIndex() *groupIndex {
	getKeyFromItem := func(group *DuplicateGroup) string {
		return string(group.Digest)
	}

	getItemSize := func(group *DuplicateGroup) int {
		size := len(group.Digest)
		for _, file := range group.Files {
			size += len(file)
		}
		return size
	}

	return &groupIndex{
		skiplist: zcsl.MakeZeroCopySkiplist[DuplicateGroup, string, struct{}](
			groupIndexLevels,
			getKeyFromItem,
			getItemSize,
			strings.Compare,
		),
	}
}

// Insert adds a group; returns false if the digest is already present
func (gi *groupIndex) Insert(group *DuplicateGroup) bool {
	return gi.skiplist.Insert(group, struct{}{})
}

// Length returns the number of groups held
func (gi *groupIndex) Length() int {
	return gi.skiplist.Length()
}

// ForEach visits groups in digest order until callback returns false
func (gi *groupIndex) ForEach(callback func(*DuplicateGroup) bool) {
	for current := gi.skiplist.First(); current != nil; current = current.Next() {
		if !callback(current.Item()) {
			break
		}
	}
}
