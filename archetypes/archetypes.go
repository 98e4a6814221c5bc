package archetypes

import (
	"github.com/automoto/clawd/components"
	"github.com/automoto/clawd/tags"
	"github.com/yohamta/donburi"
)

var (
	Mascot = newArchetype(
		tags.Mascot,
		components.Mascot,
		components.Object,
	)
	Bug = newArchetype(
		tags.Bug,
		components.Bug,
		components.Position,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Position,
	)
	Snake = newArchetype(
		tags.Snake,
		components.Snake,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
