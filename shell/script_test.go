package shell

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "paste", "file": "board.png"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6},
			{"action": "key", "key": "ctrl+z"},
			{"action": "wait", "frames": 3},
			{"action": "export"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "paste" || runner.steps[0].File != "board.png" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[2]; st.FromX != 1 || st.ToY != 4 || st.Frames != 6 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Key != "ctrl+z" {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
		{"unknown key", `{"steps": [{"action": "key", "key": "ctrl+q"}]}`},
		{"paste without data", `{"steps": [{"action": "paste"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "export"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	runner, err := LoadScriptFile(path)
	if err != nil {
		t.Fatalf("LoadScriptFile: %v", err)
	}
	if len(runner.steps) != 1 {
		t.Errorf("steps = %d, want 1", len(runner.steps))
	}
	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunnerPasteAndDrag(t *testing.T) {
	g := newTestGame(t, Options{})
	data := base64.StdEncoding.EncodeToString(pngBytes(t, 100, 100))
	script := fmt.Sprintf(`{"steps": [
		{"action": "paste", "data": %q},
		{"action": "wait", "frames": 2},
		{"action": "drag", "fromX": 60, "fromY": 60, "toX": 160, "toY": 90, "frames": 4}
	]}`, data)
	runner, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner)

	for i := 0; i < 60 && !runner.Done(); i++ {
		tick(g)
		if i == 1 {
			await(t, g)
		}
	}
	if !runner.Done() {
		t.Fatal("runner not done after 60 ticks")
	}
	objs := g.board.Scene().Objects()
	if len(objs) != 1 {
		t.Fatalf("objects = %d, want 1", len(objs))
	}
	if o := objs[0]; o.X != 150 || o.Y != 80 {
		t.Errorf("position = %v,%v, want 150,80", o.X, o.Y)
	}
}

func TestRunnerWait(t *testing.T) {
	g := newTestGame(t, Options{})
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner)

	tick(g) // executes wait, counts as one
	if runner.Done() {
		t.Fatal("done too early")
	}
	tick(g)
	tick(g)
	tick(g)
	if !runner.Done() {
		t.Error("runner should be done after the wait elapses")
	}
}

func TestRunnerExportQueues(t *testing.T) {
	g := newTestGame(t, Options{})
	runner, err := LoadScript([]byte(`{"steps": [{"action": "export"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner)
	tick(g)
	if g.exportsQueued != 1 {
		t.Errorf("exportsQueued = %d, want 1", g.exportsQueued)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerKey(t *testing.T) {
	g := newTestGame(t, Options{})
	o := pasteObject(t, g, 100, 100)
	g.board.PointerDown(g.board.Pick(o.X+10, o.Y+10), o.X+10, o.Y+10)
	g.board.PointerUp(o.X+40, o.Y+10)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "key", "key": "undo"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner)
	for i := 0; i < 5 && !runner.Done(); i++ {
		tick(g)
	}
	got, _ := g.board.Scene().Object(o.ID)
	if got.X != o.X {
		t.Errorf("X after scripted undo = %v, want %v", got.X, o.X)
	}
}
