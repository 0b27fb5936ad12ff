package session

import "strings"

// SkillLevel gates who may join a session. Levels form a strict ordinal ladder;
// "any" (or empty) means the session is open to everyone.
type SkillLevel string

const (
	SkillAny          SkillLevel = "any"
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// skillRank maps each level to its ordinal. Unknown levels rank as zero (any).
var skillRank = map[SkillLevel]int{
	SkillAny:          0,
	SkillBeginner:     1,
	SkillIntermediate: 2,
	SkillAdvanced:     3,
}

// ParseSkillLevel normalizes a user-supplied level string. Unrecognized input
// falls back to SkillAny rather than erroring; the level is advisory metadata
// everywhere except the join gate.
func ParseSkillLevel(s string) SkillLevel {
	lvl := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := skillRank[lvl]; ok {
		return lvl
	}
	return SkillAny
}

// MeetsRequirement reports whether a player at playerLevel may join a session
// gated at required. A player of unknown level may only join open sessions.
func MeetsRequirement(playerLevel, required SkillLevel) bool {
	return skillRank[playerLevel] >= skillRank[required]
}
