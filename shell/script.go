package shell

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/pasteboard"
)

// scriptStep is a single action in a session script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	// key
	Key string `json:"key,omitempty"`

	// paste: a file path or inline base64 data, with its MIME type.
	File string `json:"file,omitempty"`
	Data string `json:"data,omitempty"`
	Type string `json:"type,omitempty"`
}

// script is the top-level JSON structure for a session script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input, pastes and exports across ticks.
// Attach to a Game via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"paste": true, "click": true, "drag": true, "key": true, "export": true, "wait": true,
}

// LoadScript parses a JSON session script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "key" && ParseShortcut(st.Key) == ShortcutNone {
			return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
		}
		if st.Action == "paste" && st.File == "" && st.Data == "" {
			return nil, fmt.Errorf("parse script: step %d: paste needs file or data", i)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// SetScript attaches a runner. Its step method is called from Update before
// input is processed each tick.
func (g *Game) SetScript(r *ScriptRunner) {
	g.runner = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	if len(g.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "paste":
		ev, err := st.pasteEvent()
		if err != nil {
			g.log.Warn("script paste", "step", r.cursor-1, "error", err)
			break
		}
		g.InjectPaste(ev)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "key":
		g.InjectKey(ParseShortcut(st.Key))
	case "export":
		g.SaveAsPNG()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.injectQueue) == 0 {
		r.done = true
	}
}

func (st scriptStep) pasteEvent() (pasteboard.PasteEvent, error) {
	mime := st.Type
	if mime == "" {
		mime = "image/png"
	}
	var data []byte
	var err error
	if st.File != "" {
		data, err = os.ReadFile(st.File)
	} else {
		data, err = base64.StdEncoding.DecodeString(st.Data)
	}
	if err != nil {
		return pasteboard.PasteEvent{}, err
	}
	return pasteboard.NewPasteEvent(pasteboard.BlobItem{Type: mime, Data: data}), nil
}
