// Package progress computes progress-bar fill values
package progress

import "github.com/jeondoksi/jeondoksi-cli/internal/entities"

// StatCeiling is the nominal maximum of a personality stat
const StatCeiling = 100

// Number is any value a bar can be built from
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// Fraction returns current/max clamped to [0, 1]. A non-positive max yields 0.
func Fraction[N Number](current, max N) float64 {
	if max <= 0 {
		return 0
	}
	f := float64(current) / float64(max)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Percent returns Fraction scaled to [0, 100]
func Percent[N Number](current, max N) float64 {
	return Fraction(current, max) * 100
}

// XP is the character's experience bar
func XP(c *entities.Character) float64 {
	if c == nil {
		return 0
	}
	return Percent(c.CurrentXP, c.RequiredXP)
}

// HP is the boss health bar
func HP(b *entities.Boss) float64 {
	if b == nil {
		return 0
	}
	return Percent(b.CurrentHP, b.MaxHP)
}

// Stat is a personality stat bar against StatCeiling
func Stat(value int) float64 {
	return Percent(value, StatCeiling)
}

// QuizPosition is the bar shown while answering question index (0-based)
func QuizPosition(index, total int) float64 {
	return Percent(index+1, total)
}
