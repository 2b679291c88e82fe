package shape

import (
	"testing"

	"github.com/gogpu/tessel"
	"github.com/gogpu/tessel/mesh"
)

func TestSchedule_StageOrder(t *testing.T) {
	s := NewSchedule("a", "c")
	if err := s.AddStageAfter("a", "b"); err != nil {
		t.Fatalf("AddStageAfter: %v", err)
	}

	want := []string{"a", "b", "c"}
	got := s.Stages()
	if len(got) != len(want) {
		t.Fatalf("stages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stages = %v, want %v", got, want)
		}
	}

	var order []string
	for _, name := range want {
		n := name
		if err := s.AddSystem(n, func() { order = append(order, n) }); err != nil {
			t.Fatalf("AddSystem(%q): %v", n, err)
		}
	}
	s.Run()
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("execution order = %v, want %v", order, want)
		}
	}
}

func TestSchedule_Errors(t *testing.T) {
	s := NewSchedule("a")
	if err := s.AddStageAfter("missing", "b"); err == nil {
		t.Error("expected error for unknown anchor stage")
	}
	if err := s.AddStageAfter("a", "a"); err == nil {
		t.Error("expected error for duplicate stage")
	}
	if err := s.AddSystem("missing", func() {}); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestPlugin_Install(t *testing.T) {
	sched := NewSchedule(StageUpdate, StageRender)
	world := NewWorld()
	assets := mesh.NewAssets()

	p, err := Plugin{}.Install(sched, world, assets)
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if p == nil {
		t.Fatal("install returned nil pipeline")
	}

	want := []string{StageUpdate, StageShape, StageRender}
	got := sched.Stages()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stages = %v, want %v", got, want)
		}
	}

	// A shape spawned before the tick is completed by it.
	s := world.Spawn(New(tessel.NewPath().Circle(0, 0, 10), Fill{Options: tessel.DefaultFillOptions()}))
	sched.Run()
	if !s.Processed || !s.Visible || s.Mesh.IsNone() {
		t.Fatalf("shape not completed by the shape stage: processed=%v visible=%v mesh=%v",
			s.Processed, s.Visible, s.Mesh)
	}

	// Further ticks must not re-tessellate or register new meshes.
	handle := s.Mesh
	sched.Run()
	sched.Run()
	if s.Mesh != handle {
		t.Errorf("mesh handle changed across ticks: %v then %v", handle, s.Mesh)
	}
	if assets.Len() != 1 {
		t.Errorf("asset store holds %d meshes after repeated ticks, want 1", assets.Len())
	}

	// Shapes spawned later are picked up on the next tick.
	s2 := world.Spawn(New(tessel.NewPath().Line(0, 0, 5, 5),
		Stroke{Options: tessel.DefaultStrokeOptions().WithWidth(1)}))
	sched.Run()
	if !s2.Processed {
		t.Error("late-spawned shape not processed")
	}
	if assets.Len() != 2 {
		t.Errorf("asset store holds %d meshes, want 2", assets.Len())
	}
}
