package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordAndGet(t *testing.T) {
	s := New()

	rec := s.RecordSuccess("1 + 2", "3")
	require.Equal(t, "eval-1", rec.ID)
	require.True(t, rec.OK())
	require.False(t, rec.CreateTime.IsZero())

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	require.Equal(t, "1 + 2", got.Expression)
	require.Equal(t, "3", got.Result)
}

func TestRecordFailure(t *testing.T) {
	s := New()

	rec := s.RecordFailure("5 / 0", "EvalError", "division by zero")
	require.False(t, rec.OK())
	require.Equal(t, "EvalError", rec.ErrorKind)
	require.Equal(t, "division by zero", rec.Error)
	require.Empty(t, rec.Result)
}

func TestGetMissing(t *testing.T) {
	s := New()

	_, err := s.Get("eval-99")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestListNewestFirst(t *testing.T) {
	s := New()
	s.RecordSuccess("1", "1")
	s.RecordSuccess("2", "2")
	s.RecordSuccess("3", "3")

	list := s.List()
	require.Len(t, list, 3)
	require.Equal(t, "3", list[0].Expression)
	require.Equal(t, "1", list[2].Expression)
}

func TestClearKeepsCounting(t *testing.T) {
	s := New()
	s.RecordSuccess("1", "1")
	s.Clear()
	require.Zero(t, s.Len())

	rec := s.RecordSuccess("2", "2")
	require.Equal(t, "eval-2", rec.ID)
}

func TestConcurrentRecords(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordSuccess("1 + 1", "2")
			s.List()
		}()
	}
	wg.Wait()

	require.Equal(t, 50, s.Len())

	// All IDs are distinct.
	seen := make(map[string]bool)
	for _, e := range s.List() {
		require.False(t, seen[e.ID], "duplicate ID %s", e.ID)
		seen[e.ID] = true
	}
}
