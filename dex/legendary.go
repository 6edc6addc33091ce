package dex

import "github.com/qyinm/pokedextui/types"

// Static legendary / mythical id sets for grid badges. They only back cells
// whose species has not been fetched yet.
var (
	LegendaryIDs = idSet(
		144, 145, 146, 150, // Gen I
		243, 244, 245, 249, 250, // Gen II
		377, 378, 379, 380, 381, 382, 383, 384, // Gen III
		480, 481, 482, 483, 484, 485, 486, 487, 488, // Gen IV
		638, 639, 640, 641, 642, 643, 644, 645, 646, // Gen V
		716, 717, 718, // Gen VI
		772, 773, 785, 786, 787, 788, 789, 790, 791, 792, 800, // Gen VII
		888, 889, 890, 891, 892, 894, 895, 896, 897, 898, // Gen VIII
		1001, 1002, 1003, 1004, 1007, 1008, 1014, 1015, 1016, 1017, 1024, // Gen IX
	)

	MythicalIDs = idSet(
		151,
		251,
		385, 386,
		489, 490, 491, 492, 493,
		494, 647, 648, 649,
		719, 720, 721,
		801, 802, 807, 808, 809,
		893,
		1025,
	)
)

// GridBadge returns the grid glyph for an id and the rarity it stands for.
// ok is false for ids in neither set.
func GridBadge(id int) (badge string, r Rarity, ok bool) {
	if _, found := MythicalIDs[id]; found {
		return Mythical.Symbol(), Mythical, true
	}
	if _, found := LegendaryIDs[id]; found {
		return "★", Legendary, true
	}
	return "", Common, false
}

// SpeciesBadge returns the grid glyph derived from fetched species flags.
func SpeciesBadge(s types.Species) (badge string, r Rarity, ok bool) {
	switch {
	case s.IsMythical:
		return Mythical.Symbol(), Mythical, true
	case s.IsLegendary:
		return "★", Legendary, true
	}
	return "", Common, false
}

func idSet(ids ...int) map[int]struct{} {
	m := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
