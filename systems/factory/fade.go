package factory

import (
	"github.com/automoto/simple-platformer/archetypes"
	"github.com/automoto/simple-platformer/components"
	cfg "github.com/automoto/simple-platformer/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade starts a fade-in from the transition color.
func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(1, 0, cfg.Transition.FadeSeconds, ease.OutQuad),
		Alpha: 1,
	})
	return fade
}
