package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/rigidlab/internal/render"
)

var ErrBadScript = errors.New("headless: bad script")

// Hold keeps Key down for frames From through To inclusive.
type Hold struct {
	Key      render.Key
	From, To int
}

// Script drives a headless window. Frames are numbered from 1 in the order
// the driver polls them. A positive MaxFrames delivers a close event once
// that many frames have been presented.
type Script struct {
	MaxFrames int
	Presses   map[int][]render.Key
	Holds     []Hold
}

func (s *Script) Press(frame int, k render.Key) {
	if s.Presses == nil {
		s.Presses = make(map[int][]render.Key)
	}
	s.Presses[frame] = append(s.Presses[frame], k)
}

func (s *Script) Hold(k render.Key, from, to int) {
	s.Holds = append(s.Holds, Hold{Key: k, From: from, To: to})
}

func (s *Script) held(k render.Key, frame int) bool {
	for _, h := range s.Holds {
		if h.Key == k && frame >= h.From && frame <= h.To {
			return true
		}
	}
	return false
}

// ParsePress reads "key:frame", e.g. "space:30".
func ParsePress(spec string) (render.Key, int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return render.KeyUnknown, 0, fmt.Errorf("%w: press %q, want key:frame", ErrBadScript, spec)
	}
	k, err := parseKey(parts[0])
	if err != nil {
		return render.KeyUnknown, 0, err
	}
	frame, err := parseFrame(parts[1])
	if err != nil {
		return render.KeyUnknown, 0, err
	}
	return k, frame, nil
}

// ParseHold reads "key:from:to", e.g. "right:1:120".
func ParseHold(spec string) (Hold, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return Hold{}, fmt.Errorf("%w: hold %q, want key:from:to", ErrBadScript, spec)
	}
	k, err := parseKey(parts[0])
	if err != nil {
		return Hold{}, err
	}
	from, err := parseFrame(parts[1])
	if err != nil {
		return Hold{}, err
	}
	to, err := parseFrame(parts[2])
	if err != nil {
		return Hold{}, err
	}
	if to < from {
		return Hold{}, fmt.Errorf("%w: hold %q ends before it starts", ErrBadScript, spec)
	}
	return Hold{Key: k, From: from, To: to}, nil
}

func parseKey(name string) (render.Key, error) {
	k := render.ParseKey(strings.ToLower(strings.TrimSpace(name)))
	if k == render.KeyUnknown {
		return k, fmt.Errorf("%w: unknown key %q", ErrBadScript, name)
	}
	return k, nil
}

func parseFrame(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: frame %q", ErrBadScript, s)
	}
	return n, nil
}
