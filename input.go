package life

// Key represents a keyboard key the controls respond to.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyP
	KeyN
	KeyG
	KeyF
	KeyC
	KeyX
	KeyZ
	KeyR
	KeyO
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyComma
	KeyPeriod
	KeyTab
	KeySpace
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyF12
	KeyCount
)

// Key repeat timing constants
const (
	KeyRepeatDelay    float32 = 0.4  // Initial delay before repeat starts (seconds)
	KeyRepeatInterval float32 = 0.05 // Repeat interval once repeating (seconds)
)

// InputState holds input state for the current frame.
// It is populated by a backend adapter (GLFW, ebiten).
type InputState struct {
	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Key repeat tracking
	keyHoldTime [KeyCount]float32 // How long each key has been held
	keyRepeat   [KeyCount]bool    // True on frames a held key repeats

	// Mouse wheel
	WheelY float32

	// Modifiers
	ModShift bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
		s.keyUp[i] = false
		s.keyRepeat[i] = false
	}
	s.WheelY = 0
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on fresh press
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0 // Reset hold time on release
	}
}

// UpdateKeyRepeat advances hold times and marks keys whose repeat fires this
// frame. Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(1); key < KeyCount; key++ {
		if !s.keyDown[key] || s.keyPressed[key] {
			continue
		}
		before := s.keyHoldTime[key]
		s.keyHoldTime[key] += dt
		after := s.keyHoldTime[key]
		if after < KeyRepeatDelay {
			continue
		}
		// Fire when an interval boundary past the delay was crossed this frame.
		prev := int((before - KeyRepeatDelay) / KeyRepeatInterval)
		if before < KeyRepeatDelay {
			prev = -1
		}
		if int((after-KeyRepeatDelay)/KeyRepeatInterval) > prev {
			s.keyRepeat[key] = true
		}
	}
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated returns true on the frame a key is pressed and then on every
// repeat while it is held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key] || s.keyRepeat[key]
}

// SetWheel sets the vertical mouse wheel delta.
func (s *InputState) SetWheel(y float32) {
	s.WheelY = y
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k > KeyNone && k < KeyCount {
		return keyNames[k]
	}
	return "?"
}

var keyNames = [KeyCount]string{
	KeyNone:         "--",
	KeyW:            "W",
	KeyA:            "A",
	KeyS:            "S",
	KeyD:            "D",
	KeyH:            "H",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyP:            "P",
	KeyN:            "N",
	KeyG:            "G",
	KeyF:            "F",
	KeyC:            "C",
	KeyX:            "X",
	KeyZ:            "Z",
	KeyR:            "R",
	KeyO:            "O",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeyMinus:        "-",
	KeyEqual:        "=",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeyTab:          "Tab",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",
	KeyEscape:       "Esc",
	KeyF12:          "F12",
}
