package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	Name  string     `yaml:"name"`
	Spawn []float64  `yaml:"spawn"`
	Exit  []float64  `yaml:"exit"`
	Tiles []yamlTile `yaml:"tiles"`
}

type yamlTile struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Description, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Description{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	spawn, err := yamlPoint("spawn", yl.Spawn)
	if err != nil {
		return Description{}, err
	}
	exit, err := yamlPoint("exit", yl.Exit)
	if err != nil {
		return Description{}, err
	}

	desc := Description{
		Name:  yl.Name,
		Spawn: spawn,
		Exit:  exit,
		Tiles: make([]Tile, 0, len(yl.Tiles)),
	}
	for i, t := range yl.Tiles {
		kind, err := ParseKind(t.Kind)
		if err != nil {
			return Description{}, fmt.Errorf("tile %d: %w", i, err)
		}
		desc.Tiles = append(desc.Tiles, Tile{X: t.X, Y: t.Y, Kind: kind})
	}

	return desc, nil
}

func yamlPoint(field string, v []float64) (Point, error) {
	if len(v) != 2 {
		return Point{}, fmt.Errorf("%s: want [x, y], got %d values", field, len(v))
	}
	return Point{X: v[0], Y: v[1]}, nil
}
