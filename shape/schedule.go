package shape

import (
	"fmt"

	"github.com/gogpu/tessel/mesh"
)

// Standard stage names. The shape stage runs after the host has
// spawned and configured shapes and before anything renders them.
const (
	// StageUpdate is where the host spawns and configures shapes.
	StageUpdate = "update"
	// StageShape is where spawned shapes are completed with meshes.
	StageShape = "shape"
	// StageRender is where the host draws visible shapes.
	StageRender = "render"
)

// System is a unit of work run by a schedule stage.
type System func()

// stage is a named, ordered group of systems.
type stage struct {
	name    string
	systems []System
}

// Schedule is a minimal ordered-stage runner: stages execute in order,
// systems within a stage in registration order. It models the slice of
// the host application loop this pipeline cares about.
type Schedule struct {
	stages []stage
}

// NewSchedule creates a schedule with the given stages, in order.
func NewSchedule(names ...string) *Schedule {
	s := &Schedule{}
	for _, n := range names {
		s.stages = append(s.stages, stage{name: n})
	}
	return s
}

// indexOf returns the position of a stage, or -1.
func (s *Schedule) indexOf(name string) int {
	for i := range s.stages {
		if s.stages[i].name == name {
			return i
		}
	}
	return -1
}

// AddStageAfter inserts a new stage immediately after an existing one.
func (s *Schedule) AddStageAfter(after, name string) error {
	if s.indexOf(name) >= 0 {
		return fmt.Errorf("shape: stage %q already exists", name)
	}
	i := s.indexOf(after)
	if i < 0 {
		return fmt.Errorf("shape: unknown stage %q", after)
	}
	s.stages = append(s.stages, stage{})
	copy(s.stages[i+2:], s.stages[i+1:])
	s.stages[i+1] = stage{name: name}
	return nil
}

// AddSystem registers a system to run in the named stage.
func (s *Schedule) AddSystem(stageName string, sys System) error {
	i := s.indexOf(stageName)
	if i < 0 {
		return fmt.Errorf("shape: unknown stage %q", stageName)
	}
	s.stages[i].systems = append(s.stages[i].systems, sys)
	return nil
}

// Stages returns the stage names in execution order.
func (s *Schedule) Stages() []string {
	names := make([]string, len(s.stages))
	for i := range s.stages {
		names[i] = s.stages[i].name
	}
	return names
}

// Run executes one tick: every system of every stage, in order.
func (s *Schedule) Run() {
	for i := range s.stages {
		for _, sys := range s.stages[i].systems {
			sys()
		}
	}
}

// Plugin wires the tessellation pipeline into a host schedule with
// minimal boilerplate.
type Plugin struct{}

// Install creates the pipeline (and with it the two engine
// singletons), inserts StageShape after StageUpdate, and registers a
// system that completes the world's shapes each tick. The returned
// pipeline can also be driven directly.
func (Plugin) Install(sched *Schedule, world *World, assets *mesh.Assets) (*Pipeline, error) {
	p := NewPipeline(assets)
	if err := sched.AddStageAfter(StageUpdate, StageShape); err != nil {
		return nil, err
	}
	if err := sched.AddSystem(StageShape, func() {
		p.Process(world.Shapes()...)
	}); err != nil {
		return nil, err
	}
	return p, nil
}
