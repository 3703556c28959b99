package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	m := NewMap[string, int]()
	m.Insert("2", 2)
	m.Insert("1", 1)

	it := m.Iterator()
	assert.NotNil(t, it)

	assert.True(t, it.HasNext())
	e1, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, "1", e1.Key)
	assert.Equal(t, 1, e1.Value)

	assert.True(t, it.HasNext())
	e2, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, "2", e2.Key)

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.Equal(t, ErrNoMoreEntries, err)
}

func TestIteratorEmpty(t *testing.T) {
	m := NewMap[int, int]()

	it := m.Iterator()
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.Equal(t, ErrNoMoreEntries, err)
}

func TestIteratorRestart(t *testing.T) {
	m := NewMap[int, int]()
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}

	// each call produces a fresh traversal
	for round := 0; round < 2; round++ {
		it := m.Iterator()
		for want := 0; want < 10; want++ {
			e, err := it.Next()
			require.NoError(t, err)
			require.Equal(t, want, e.Key)
		}
		assert.False(t, it.HasNext())
	}
}

func TestReverseIterator(t *testing.T) {
	m := NewMap[int, string]()
	m.Extend(
		Entry[int, string]{Key: 3, Value: "a"},
		Entry[int, string]{Key: 5, Value: "b"},
		Entry[int, string]{Key: 8, Value: "c"},
	)

	got := []int{}
	it := m.ReverseIterator()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		got = append(got, e.Key)
	}
	assert.Equal(t, []int{8, 5, 3}, got)
}

func collectRange[K, V any](t *testing.T, it *Iterator[K, V]) []K {
	t.Helper()
	keys := []K{}
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		keys = append(keys, e.Key)
	}
	_, err := it.Next()
	require.Equal(t, ErrNoMoreEntries, err)
	return keys
}

func TestRange(t *testing.T) {
	m := NewMap[int, int]()
	for _, k := range []int{1, 3, 5, 7, 9} {
		m.Insert(k, k*10)
	}

	dataSet := []struct {
		name     string
		from, to Bound[int]
		expected []int
	}{
		{"all", Unbounded[int](), Unbounded[int](), []int{1, 3, 5, 7, 9}},
		{"included both", Included(3), Included(7), []int{3, 5, 7}},
		{"excluded both", Excluded(3), Excluded(7), []int{5}},
		{"between keys", Included(4), Included(8), []int{5, 7}},
		{"excluded between keys", Excluded(4), Excluded(8), []int{5, 7}},
		{"from only", Included(5), Unbounded[int](), []int{5, 7, 9}},
		{"to only", Unbounded[int](), Excluded(5), []int{1, 3}},
		{"below all", Unbounded[int](), Excluded(1), []int{}},
		{"above all", Excluded(9), Unbounded[int](), []int{}},
		{"inverted", Included(7), Included(3), []int{}},
		{"single", Included(5), Included(5), []int{5}},
		{"single excluded", Excluded(5), Excluded(5), []int{}},
	}

	for _, d := range dataSet {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.expected, collectRange(t, m.Range(d.from, d.to)))
		})
	}
}

func TestReverseRange(t *testing.T) {
	m := NewMap[int, int]()
	for _, k := range []int{1, 3, 5, 7, 9} {
		m.Insert(k, k)
	}

	assert.Equal(t, []int{7, 5, 3},
		collectRange(t, m.ReverseRange(Included(3), Included(7))))
	assert.Equal(t, []int{9, 7, 5, 3, 1},
		collectRange(t, m.ReverseRange(Unbounded[int](), Unbounded[int]())))
	assert.Equal(t, []int{5},
		collectRange(t, m.ReverseRange(Excluded(3), Excluded(7))))
}

func TestRangeEmptyMap(t *testing.T) {
	m := NewMap[int, int]()
	assert.Empty(t, collectRange(t, m.Range(Included(1), Included(10))))
	assert.Empty(t, collectRange(t, m.Range(Unbounded[int](), Unbounded[int]())))
}

func TestRangeFirstEntry(t *testing.T) {
	m := NewMap[int, string]()
	m.Insert(3, "a")
	m.Insert(5, "b")
	m.Insert(8, "c")

	it := m.Range(Included(4), Unbounded[int]())
	e, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 5, e.Key)
	assert.Equal(t, "b", e.Value)
}

func TestSetRange(t *testing.T) {
	s := NewSet[int]()
	s.Extend(2, 4, 6, 8)

	it := s.Range(Excluded(2), Included(6))
	got := []int{}
	for it.HasNext() {
		k, err := it.Next()
		require.NoError(t, err)
		got = append(got, k)
	}
	assert.Equal(t, []int{4, 6}, got)

	_, err := it.Next()
	assert.Equal(t, ErrNoMoreEntries, err)
}
