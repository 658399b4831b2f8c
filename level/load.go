package level

import (
	"fmt"
	"os"

	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// Raw YAML records. Vectors are [x, y, z]; rotations are axis + degrees so
// authored ramps read naturally ("angle_deg: 45").

type fileRec struct {
	Name      string        `yaml:"name"`
	Arena     arenaRec      `yaml:"arena"`
	Obstacles []obstacleRec `yaml:"obstacles"`
	Gates     []gateRec     `yaml:"gates"`
}

type arenaRec struct {
	Min        [3]float32  `yaml:"min"`
	Max        [3]float32  `yaml:"max"`
	KillPlaneY *float32    `yaml:"kill_plane_y"`
	Fallback   *[3]float32 `yaml:"fallback"`
}

type obstacleRec struct {
	Center      [3]float32 `yaml:"center"`
	HalfExtents [3]float32 `yaml:"half_extents"`
	Axis        [3]float32 `yaml:"axis"`
	AngleDeg    float32    `yaml:"angle_deg"`
	Restitution float32    `yaml:"restitution"`
}

type gateRec struct {
	Min        [3]float32 `yaml:"min"`
	Max        [3]float32 `yaml:"max"`
	Multiplier int        `yaml:"multiplier"`
	ID         *int       `yaml:"id"`
}

func vec(a [3]float32) vmath.Vec3 {
	return vmath.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Parse decodes and bakes a level from YAML bytes
func Parse(data []byte) (*Level, error) {
	var raw fileRec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}
	return build(&raw)
}

// Load reads and bakes a level file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	return Parse(data)
}

func build(raw *fileRec) (*Level, error) {
	lv := &Level{Name: raw.Name}

	lv.Arena.Min = vec(raw.Arena.Min)
	lv.Arena.Max = vec(raw.Arena.Max)
	if raw.Arena.KillPlaneY != nil {
		lv.Arena.KillPlaneY = *raw.Arena.KillPlaneY
	} else {
		lv.Arena.KillPlaneY = parameter.KillPlaneY
	}
	if raw.Arena.Fallback != nil {
		lv.Arena.Fallback = vec(*raw.Arena.Fallback)
	} else {
		lv.Arena.Fallback = vmath.Vec3{
			X: (lv.Arena.Min.X + lv.Arena.Max.X) * 0.5,
			Y: lv.Arena.Max.Y,
			Z: (lv.Arena.Min.Z + lv.Arena.Max.Z) * 0.5,
		}
	}

	lv.Obstacles = make([]core.Obstacle, 0, len(raw.Obstacles))
	for _, o := range raw.Obstacles {
		rot := vmath.QuatFromAxisAngle(vec(o.Axis), o.AngleDeg*math32.Pi/180)
		lv.Obstacles = append(lv.Obstacles, core.NewObstacle(
			vec(o.Center), vec(o.HalfExtents), rot, o.Restitution,
		))
	}

	lv.Gates = make([]core.Gate, 0, len(raw.Gates))
	for i, g := range raw.Gates {
		id := i
		if g.ID != nil {
			id = *g.ID
		}
		lv.Gates = append(lv.Gates, core.Gate{
			Bounds:     vmath.AABB{Min: vec(g.Min), Max: vec(g.Max)},
			Multiplier: g.Multiplier,
			InstanceID: id,
		})
	}

	if err := lv.Validate(); err != nil {
		return nil, err
	}
	return lv, nil
}
