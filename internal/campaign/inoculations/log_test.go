package inoculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgaranin/vaxkeeper/internal/campaign"
)

func date(d, m, y int) campaign.Date {
	return campaign.Date{Day: d, Month: m, Year: y}
}

func TestRecordAndByUser(t *testing.T) {
	l := NewLog(1009)

	r1 := l.Record("alice", "A1", date(2, 1, 2025))
	r2 := l.Record("alice", "B2", date(3, 1, 2025))
	l.Record("bob", "A1", date(3, 1, 2025))

	assert.NotEmpty(t, r1.ID)
	assert.NotEqual(t, r1.ID, r2.ID)

	recs, ok := l.ByUser("alice")
	require.True(t, ok)
	require.Len(t, recs, 2)
	assert.Equal(t, "A1", recs[0].Batch)
	assert.Equal(t, "B2", recs[1].Batch)

	_, ok = l.ByUser("carol")
	assert.False(t, ok)
}

func TestAllInOrderOldestFirst(t *testing.T) {
	l := NewLog(1009)
	l.Record("alice", "A1", date(2, 1, 2025))
	l.Record("bob", "A1", date(2, 1, 2025))
	l.Record("alice", "B2", date(5, 1, 2025))

	all := l.AllInOrder()
	require.Len(t, all, 3)
	assert.Equal(t, "alice", all[0].User)
	assert.Equal(t, "bob", all[1].User)
	assert.Equal(t, "B2", all[2].Batch)
}

func TestAllInOrderPreservesSameDayTies(t *testing.T) {
	l := NewLog(1009)
	d := date(2, 1, 2025)
	l.Record("alice", "A1", d)
	l.Record("alice", "B2", d)
	l.Record("alice", "C3", d)

	all := l.AllInOrder()
	require.Len(t, all, 3)
	assert.Equal(t, "A1", all[0].Batch)
	assert.Equal(t, "B2", all[1].Batch)
	assert.Equal(t, "C3", all[2].Batch)
}

func TestDeleteByUserOnly(t *testing.T) {
	l := NewLog(1009)
	l.Record("alice", "A1", date(2, 1, 2025))
	l.Record("alice", "B2", date(3, 1, 2025))
	l.Record("bob", "A1", date(3, 1, 2025))

	removed := l.Delete(Criteria{User: "alice"})
	assert.Equal(t, 2, removed)

	_, ok := l.ByUser("alice")
	assert.False(t, ok, "alice must report as unknown once all records are gone")

	all := l.AllInOrder()
	require.Len(t, all, 1)
	assert.Equal(t, "bob", all[0].User)
}

func TestDeleteWithDateFilter(t *testing.T) {
	l := NewLog(1009)
	l.Record("alice", "A1", date(2, 1, 2025))
	l.Record("alice", "B2", date(3, 1, 2025))

	d := date(3, 1, 2025)
	removed := l.Delete(Criteria{User: "alice", Date: &d})
	assert.Equal(t, 1, removed)

	recs, ok := l.ByUser("alice")
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "A1", recs[0].Batch)
}

func TestDeleteWithBatchFilter(t *testing.T) {
	l := NewLog(1009)
	d := date(3, 1, 2025)
	l.Record("alice", "A1", d)
	l.Record("alice", "B2", d)

	removed := l.Delete(Criteria{User: "alice", Date: &d, Batch: "B2"})
	assert.Equal(t, 1, removed)

	recs, ok := l.ByUser("alice")
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "A1", recs[0].Batch)
}

func TestDeleteNonMatchingBatchLeavesRecords(t *testing.T) {
	l := NewLog(1009)
	d := date(3, 1, 2025)
	l.Record("alice", "A1", d)

	removed := l.Delete(Criteria{User: "alice", Date: &d, Batch: "ZZ"})
	assert.Zero(t, removed)

	recs, ok := l.ByUser("alice")
	require.True(t, ok)
	assert.Len(t, recs, 1)
	assert.Len(t, l.AllInOrder(), 1)
}

func TestDeleteRemovesFromBothPaths(t *testing.T) {
	l := NewLog(1009)
	d := date(3, 1, 2025)
	l.Record("alice", "A1", d)
	l.Record("alice", "B2", d)
	l.Record("alice", "C3", date(4, 1, 2025))

	removed := l.Delete(Criteria{User: "alice", Date: &d})
	assert.Equal(t, 2, removed)

	recs, ok := l.ByUser("alice")
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "C3", recs[0].Batch)

	all := l.AllInOrder()
	require.Len(t, all, 1)
	assert.Equal(t, "C3", all[0].Batch)
}

func TestDeleteThenRecordAgain(t *testing.T) {
	l := NewLog(1009)
	l.Record("alice", "A1", date(2, 1, 2025))
	require.Equal(t, 1, l.Delete(Criteria{User: "alice"}))

	l.Record("alice", "B2", date(5, 1, 2025))
	recs, ok := l.ByUser("alice")
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "B2", recs[0].Batch)
}

func TestDeleteUnknownUser(t *testing.T) {
	l := NewLog(1009)
	l.Record("alice", "A1", date(2, 1, 2025))

	assert.Zero(t, l.Delete(Criteria{User: "nobody"}))
	assert.Len(t, l.AllInOrder(), 1)
}
