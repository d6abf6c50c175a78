// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSet_Minus(t *testing.T) {
	a := NewNameSet("wget", "curl", "git")
	b := NewNameSet("git", "jq")

	assert.Equal(t, []string{"curl", "wget"}, a.Minus(b).Sorted())
	assert.Equal(t, []string{"jq"}, b.Minus(a).Sorted())
	assert.Empty(t, a.Minus(a).Sorted())
}

func TestNameSet_SortedNeverNil(t *testing.T) {
	assert.NotNil(t, NewNameSet().Sorted())
	assert.NotNil(t, NameSet(nil).Sorted())
}

func TestNameSet_Equal(t *testing.T) {
	assert.True(t, NewNameSet("a", "b").Equal(NewNameSet("b", "a")))
	assert.False(t, NewNameSet("a").Equal(NewNameSet("a", "b")))
	assert.False(t, NewNameSet("a").Equal(NewNameSet("b")))
	assert.True(t, NameSet(nil).Equal(NewNameSet()))
}

func TestNameSet_AddDuplicate(t *testing.T) {
	s := NewNameSet()
	s.Add("wget")
	s.Add("wget")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("wget"))
	assert.False(t, s.Has("curl"))
}

func TestVersionMap_Names(t *testing.T) {
	m := VersionMap{"git": "2.42.0 2.41.0", "wget": "1.21.3"}
	assert.Equal(t, []string{"git", "wget"}, m.Names().Sorted())
	assert.Equal(t, 0, VersionMap(nil).Names().Len())
}
