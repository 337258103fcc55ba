package swgoh

import (
	"fmt"
)

// ModSetNames maps a mod set id to its display name.
var ModSetNames = map[int]string{
	1: "Health",
	2: "Offense",
	3: "Defense",
	4: "Speed",
	5: "Critical Chance",
	6: "Critical Damage",
	7: "Potency",
	8: "Tenacity",
}

// ModSlotNames maps a mod slot index to its shape name.
var ModSlotNames = map[int]string{
	2: "Square",
	3: "Arrow",
	4: "Diamond",
	5: "Triangle",
	6: "Circle",
	7: "Plus/Cross",
}

// RelicTierNames maps the internal relic tier (offset +2 from the displayed
// tier) to the display label.
var RelicTierNames = map[int]string{
	0:  "LOCKED",
	1:  "UNLOCKED",
	2:  "1",
	3:  "2",
	4:  "3",
	5:  "4",
	6:  "5",
	7:  "6",
	8:  "7",
	9:  "8",
	10: "9",
}

// RarityNames maps a unit rarity (star count) to the enum name game tables
// key rarity rows by.
var RarityNames = map[int]string{
	1: "ONE_STAR",
	2: "TWO_STAR",
	3: "THREE_STAR",
	4: "FOUR_STAR",
	5: "FIVE_STAR",
	6: "SIX_STAR",
	7: "SEVEN_STAR",
}

// RarityByName is the inverse of RarityNames.
var RarityByName = func() map[string]int {
	m := make(map[string]int, len(RarityNames))
	for r, name := range RarityNames {
		m[name] = r
	}
	return m
}()

// ModID is the decoded form of a mod's 3-character definition id. The first
// character is the set id, the second the rarity (pip count), the third the
// slot position.
type ModID struct {
	Set  int
	Pips int
	Slot int
}

// DecodeModID decodes a raw 3-character mod definition id.
func DecodeModID(definitionID string) (ModID, error) {
	if len(definitionID) != 3 {
		return ModID{}, fmt.Errorf("mod definition id %q must be 3 characters", definitionID)
	}
	digits := [3]int{}
	for i, c := range definitionID {
		if c < '0' || c > '9' {
			return ModID{}, fmt.Errorf("mod definition id %q contains non-numeric character", definitionID)
		}
		digits[i] = int(c - '0')
	}
	return ModID{Set: digits[0], Pips: digits[1], Slot: digits[2]}, nil
}

// String re-encodes the mod id in its wire form.
func (m ModID) String() string {
	return fmt.Sprintf("%d%d%d", m.Set, m.Pips, m.Slot)
}
