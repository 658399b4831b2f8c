package engine

import (
	"github.com/conhill/vampdrop/physics"
)

// collideWalls tests every awake body against the obstacle table in fixed
// list order. First obstacle wins per body per pass; there is no
// multi-obstacle averaging, which keeps the pass deterministic.
func (s *Sim) collideWalls() {
	obstacles := s.lv.Obstacles
	if len(obstacles) == 0 {
		return
	}

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Asleep || b.Dead {
			continue
		}

		for j := range obstacles {
			if physics.ResolveObstacle(&b.Pos, &b.Vel, b.Radius, b.Restitution, &obstacles[j]) {
				break
			}
		}
	}
}
