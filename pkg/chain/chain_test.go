package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oddworks/onelogs/pkg/types"
)

func link(id int64) *int64 { return &id }

func entry(id int64, linked *int64) types.DiaryEntry {
	return types.DiaryEntry{EntryID: id, Type: types.EntryTypeText, LinkedID: linked}
}

func idSet(ids ...int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestCompute(t *testing.T) {
	// A(1) <- B(2) <- C(3), D(4) dangles at missing id 99.
	entries := []types.DiaryEntry{
		entry(1, nil),
		entry(2, link(1)),
		entry(3, link(2)),
		entry(4, link(99)),
	}

	tests := []struct {
		name    string
		startID int64
		want    map[int64]bool
	}{
		{name: "middle of chain finds both directions", startID: 2, want: idSet(1, 2, 3)},
		{name: "root finds all descendants", startID: 1, want: idSet(1, 2, 3)},
		{name: "leaf finds ancestors", startID: 3, want: idSet(1, 2, 3)},
		{name: "dangling link is a singleton", startID: 4, want: idSet(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(entries, tt.startID))
		})
	}
}

func TestComputeUnlinkedEntry(t *testing.T) {
	entries := []types.DiaryEntry{entry(1, nil), entry(2, nil)}
	assert.Equal(t, idSet(1), Compute(entries, 1))
}

func TestComputeCycleTerminates(t *testing.T) {
	// X(1) <-> Y(2): a logical data error, still must terminate.
	entries := []types.DiaryEntry{
		entry(1, link(2)),
		entry(2, link(1)),
	}
	assert.Equal(t, idSet(1, 2), Compute(entries, 1))
	assert.Equal(t, idSet(1, 2), Compute(entries, 2))
}

func TestComputeSelfLoopTerminates(t *testing.T) {
	entries := []types.DiaryEntry{entry(1, link(1))}
	assert.Equal(t, idSet(1), Compute(entries, 1))
}

func TestComputeBranchingDescendants(t *testing.T) {
	// Two children of 1, one grandchild under each branch.
	entries := []types.DiaryEntry{
		entry(1, nil),
		entry(2, link(1)),
		entry(3, link(1)),
		entry(4, link(2)),
		entry(5, link(3)),
		entry(6, nil), // unrelated
	}
	assert.Equal(t, idSet(1, 2, 3, 4, 5), Compute(entries, 4))
}

func TestComputeIncludesDeletedNodes(t *testing.T) {
	// A soft-deleted middle node must still connect its children.
	deleted := entry(2, link(1))
	deleted.Deleted = true
	entries := []types.DiaryEntry{entry(1, nil), deleted, entry(3, link(2))}
	assert.Equal(t, idSet(1, 2, 3), Compute(entries, 3))
}

func TestFilterPreservesOrder(t *testing.T) {
	entries := []types.DiaryEntry{
		entry(1, nil),
		entry(2, link(1)),
		entry(3, nil),
		entry(4, link(2)),
	}
	got := Filter(entries, idSet(4, 1, 2))

	ids := make([]int64, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.EntryID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids)
}

func TestFilterEmptySet(t *testing.T) {
	entries := []types.DiaryEntry{entry(1, nil)}
	assert.Empty(t, Filter(entries, nil))
}
