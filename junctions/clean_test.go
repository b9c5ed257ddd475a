package junctions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanRejectsGeneric(t *testing.T) {
	c := DefaultCleaner()

	for _, name := range []string{
		"",
		"junction",
		"Junction",
		"JUNCTION",
		"Junction 5",
		"node",
		"Node 123456",
		"point",
		"Point A",
		"unnamed",
		"Unnamed road",
	} {
		_, ok := c.Clean(name)
		assert.False(t, ok, "expected %q to be rejected", name)
	}
}

func TestCleanSuffix(t *testing.T) {
	c := DefaultCleaner()

	table := []struct {
		in   string
		want string
	}{
		// multi-word, indicator, no chowk/road marker
		{"Liberty Square", "Liberty Square Chowk"},
		{"Model Town Mor", "Model Town Mor Chowk"},
		// already marked
		{"Liberty Chowk", "Liberty Chowk"},
		{"Kalma Road", "Kalma Road"},
		// single word never gets the suffix
		{"Liberty", "Liberty"},
		// no indicator
		{"Shimla Hill", "Shimla Hill"},
		// marker check is case-insensitive
		{"Garden Town CHOWK", "Garden Town CHOWK"},
	}

	for _, tc := range table {
		got, ok := c.Clean(tc.in)
		assert.True(t, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestCleanDeterministic(t *testing.T) {
	c := DefaultCleaner()

	for _, name := range []string{"Liberty Square", "Junction", "Shimla Hill", ""} {
		first, firstOK := c.Clean(name)
		second, secondOK := c.Clean(name)
		assert.Equal(t, first, second)
		assert.Equal(t, firstOK, secondOK)
	}
}

func TestCleanCustomLists(t *testing.T) {
	c := Cleaner{
		Generic:         []string{"std"},
		MajorIndicators: []string{"harbor"},
		Suffix:          " Square",
	}

	_, ok := c.Clean("Std 12")
	assert.False(t, ok)

	got, ok := c.Clean("Old Harbor Gate")
	assert.True(t, ok)
	assert.Equal(t, "Old Harbor Gate Square", got)
}
