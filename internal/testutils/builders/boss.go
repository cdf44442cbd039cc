// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
)

// BossBuilder provides a fluent interface for building test Boss instances
type BossBuilder struct {
	boss *entities.Boss
}

// NewBossBuilder creates a new builder for an active, unhurt boss
func NewBossBuilder() *BossBuilder {
	return &BossBuilder{
		boss: &entities.Boss{
			ID:        1,
			Name:      "Test Boss",
			Level:     1,
			MaxHP:     1000,
			CurrentHP: 1000,
			IsActive:  true,
		},
	}
}

// WithID sets the boss ID
func (b *BossBuilder) WithID(id int64) *BossBuilder {
	b.boss.ID = id
	return b
}

// WithName sets the boss name
func (b *BossBuilder) WithName(name string) *BossBuilder {
	b.boss.Name = name
	return b
}

// WithHP sets current and max HP
func (b *BossBuilder) WithHP(current, maxHP int64) *BossBuilder {
	b.boss.CurrentHP = current
	b.boss.MaxHP = maxHP
	return b
}

// WithImage sets the image URL
func (b *BossBuilder) WithImage(url string) *BossBuilder {
	b.boss.ImageURL = url
	return b
}

// Defeated ends the raid at zero HP
func (b *BossBuilder) Defeated() *BossBuilder {
	b.boss.CurrentHP = 0
	b.boss.IsActive = false
	return b
}

// Build returns the built boss
func (b *BossBuilder) Build() *entities.Boss {
	return b.boss
}
