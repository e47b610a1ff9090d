package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScriptFile is the YAML form of a Script:
//
//	frames: 240
//	presses: ["space:1", "up:30", "space:31"]
//	holds: ["right:1:120"]
type ScriptFile struct {
	Frames  int      `yaml:"frames"`
	Presses []string `yaml:"presses"`
	Holds   []string `yaml:"holds"`
}

// LoadScript reads a script file.
func LoadScript(path string) (*ScriptFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f ScriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadScript, path, err)
	}
	return &f, nil
}

// Script parses every entry. The first bad entry fails the whole file.
func (f *ScriptFile) Script() (Script, error) {
	s := Script{MaxFrames: f.Frames}
	for _, p := range f.Presses {
		k, frame, err := ParsePress(p)
		if err != nil {
			return Script{}, err
		}
		s.Press(frame, k)
	}
	for _, h := range f.Holds {
		hold, err := ParseHold(h)
		if err != nil {
			return Script{}, err
		}
		s.Holds = append(s.Holds, hold)
	}
	return s, nil
}
