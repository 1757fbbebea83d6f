package life

// HotkeyCheck returns true if an action's hotkey fired this frame.
type HotkeyCheck func(in *InputState) bool

// ActionHandler is called when an action's hotkey is triggered.
type ActionHandler func()

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// ActionEntry holds a registered action with its hotkey and handler.
type ActionEntry struct {
	Name        string          // Action name for logging
	Key         Key             // Key shown in help output
	CheckHotkey HotkeyCheck     // Returns true if hotkey is pressed
	Handler     ActionHandler   // Called when hotkey triggered
	Condition   ActionCondition // Optional: must return true to execute (nil = always)
}

// ActionRegistry manages hotkey-triggered actions.
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates a new action registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]ActionEntry, 0, 32),
	}
}

// Pressed returns a HotkeyCheck that fires on the frame key goes down.
func Pressed(key Key) HotkeyCheck {
	return func(in *InputState) bool { return in.KeyPressed(key) }
}

// Repeated returns a HotkeyCheck that fires on press and on key repeat.
func Repeated(key Key) HotkeyCheck {
	return func(in *InputState) bool { return in.KeyRepeated(key) }
}

// Register adds an action triggered when key is pressed.
func (r *ActionRegistry) Register(name string, key Key, handler ActionHandler) {
	r.actions = append(r.actions, ActionEntry{
		Name:        name,
		Key:         key,
		CheckHotkey: Pressed(key),
		Handler:     handler,
	})
}

// RegisterWithCondition adds an action with a condition that must be true to execute.
func (r *ActionRegistry) RegisterWithCondition(name string, key Key, check HotkeyCheck, handler ActionHandler, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry{
		Name:        name,
		Key:         key,
		CheckHotkey: check,
		Handler:     handler,
		Condition:   condition,
	})
}

// HandleActions executes every action whose hotkey fired, in registration
// order. Returns the number of actions run.
func (r *ActionRegistry) HandleActions(in *InputState) int {
	n := 0
	for i := range r.actions {
		a := &r.actions[i]

		if a.CheckHotkey == nil || !a.CheckHotkey(in) {
			continue
		}
		if a.Condition != nil && !a.Condition() {
			continue
		}

		logger.Debug("action", "name", a.Name, "key", KeyName(a.Key))
		a.Handler()
		n++
	}
	return n
}

// Actions returns the registered actions.
func (r *ActionRegistry) Actions() []ActionEntry {
	return r.actions
}
