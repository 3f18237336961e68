// Package storygroup turns a flat list of active stories into per-owner groups
// and the owner-contiguous sequence the viewer walks through.
package storygroup

import (
	"cmp"
	"slices"

	"github.com/orgball2608/story-engine/internal/domain"
)

// Group is one owner's active stories, oldest first.
type Group struct {
	OwnerID string
	Stories []domain.Story
}

// Feed is derived state: it is rebuilt on every load and only ever shrinks
// through Without.
type Feed struct {
	Groups []Group
	Flat   []domain.Story

	// groupStart[i] is the flat index of Groups[i].Stories[0].
	groupStart []int
}

// Build groups stories by owner (ascending owner id) and orders each owner's
// stories by creation time. The input slice is not modified.
func Build(stories []domain.Story) Feed {
	sorted := slices.Clone(stories)
	slices.SortStableFunc(sorted, func(a, b domain.Story) int {
		if c := cmp.Compare(a.OwnerID, b.OwnerID); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	var f Feed
	for i, s := range sorted {
		if i == 0 || s.OwnerID != sorted[i-1].OwnerID {
			f.Groups = append(f.Groups, Group{OwnerID: s.OwnerID})
			f.groupStart = append(f.groupStart, i)
		}
		g := &f.Groups[len(f.Groups)-1]
		g.Stories = append(g.Stories, s)
	}
	f.Flat = sorted
	return f
}

func (f Feed) Len() int {
	return len(f.Flat)
}

func (f Feed) Empty() bool {
	return len(f.Flat) == 0
}

// Index returns the flat index of storyID, or -1.
func (f Feed) Index(storyID string) int {
	return slices.IndexFunc(f.Flat, func(s domain.Story) bool {
		return s.ID == storyID
	})
}

// Locate maps a flat index to its group and the position inside that group.
func (f Feed) Locate(flatIndex int) (group Group, localIndex int, ok bool) {
	if flatIndex < 0 || flatIndex >= len(f.Flat) {
		return Group{}, 0, false
	}
	// groupStart is ascending; find the last start <= flatIndex.
	gi, found := slices.BinarySearch(f.groupStart, flatIndex)
	if !found {
		gi--
	}
	return f.Groups[gi], flatIndex - f.groupStart[gi], true
}

// GroupOf returns the owner's group.
func (f Feed) GroupOf(ownerID string) (Group, bool) {
	i := slices.IndexFunc(f.Groups, func(g Group) bool {
		return g.OwnerID == ownerID
	})
	if i < 0 {
		return Group{}, false
	}
	return f.Groups[i], true
}

// FirstUnseen returns the flat index of the owner's first story not in seen,
// falling back to the owner's first story when all were seen. It returns -1
// for an owner without stories.
func (f Feed) FirstUnseen(ownerID string, seen map[string]bool) int {
	gi := slices.IndexFunc(f.Groups, func(g Group) bool {
		return g.OwnerID == ownerID
	})
	if gi < 0 {
		return -1
	}
	start := f.groupStart[gi]
	for i, s := range f.Groups[gi].Stories {
		if !seen[s.ID] {
			return start + i
		}
	}
	return start
}

// HasUnseen reports whether the owner has at least one story not in seen.
func (f Feed) HasUnseen(ownerID string, seen map[string]bool) bool {
	g, ok := f.GroupOf(ownerID)
	if !ok {
		return false
	}
	return slices.ContainsFunc(g.Stories, func(s domain.Story) bool {
		return !seen[s.ID]
	})
}

// Without returns a rebuilt feed minus storyID. Groups left empty disappear.
func (f Feed) Without(storyID string) Feed {
	if f.Index(storyID) < 0 {
		return f
	}
	return Build(slices.DeleteFunc(slices.Clone(f.Flat), func(s domain.Story) bool {
		return s.ID == storyID
	}))
}
