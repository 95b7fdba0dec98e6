// Package keybind maps key events to named bindings which carry their own
// help text.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys, such as "down" and "j", with an
// optional help entry.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

type Option func(*Keybind)

// NewKeybind returns a binding configured by the given options.
func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

// WithKeys sets the keys of the binding, e.g. "enter", "ctrl+c", or "q".
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys...)
	}
}

// WithHelp sets the key name and description shown in help.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the binding disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

// Keys returns the normalized keys of the binding.
func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the keys of the binding.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = normalizeKeys(keys...)
}

// Help returns the help entry of the binding.
func (k Keybind) Help() Help {
	return k.help
}

// SetHelp sets the key name and description shown in help.
func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding has keys and is not disabled.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

// SetEnabled enables or disables the binding without changing its keys.
func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Help is the help entry of a binding.
type Help struct {
	Key  string
	Desc string
}

// Matches reports whether the event triggers any of the enabled bindings.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}

	key := eventKeyString(event)
	for _, keybind := range keybinds {
		if keybind.Enabled() && slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

func normalizeKeys(keys ...string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	return normalized
}

// normalizeKey turns a key description into the canonical
// "mod+mod+primary" form.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	// A lone "+" is the plus key, not a separator.
	if key == "+" {
		return key
	}

	var (
		mods    []string
		primary string
	)
	for part := range strings.SplitSeq(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods = append(mods, "ctrl")
		case "alt":
			mods = append(mods, "alt")
		case "shift":
			mods = append(mods, "shift")
		case "meta":
			mods = append(mods, "meta")
		default:
			primary = normalizePrimaryKey(part)
		}
	}

	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods = append(mods, "shift")
		primary = "tab"
	}
	if len(mods) == 0 {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinKey(mods, primary)
}

func normalizePrimaryKey(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) >= 7 {
		return key[5 : len(key)-1]
	}

	switch strings.ToLower(key) {
	case "esc", "escape":
		return "esc"
	case "return":
		return "enter"
	case "pageup":
		return "pgup"
	case "pagedown":
		return "pgdn"
	case "space":
		return " "
	}

	if len([]rune(key)) == 1 {
		return key
	}
	return strings.ToLower(key)
}

func joinKey(mods []string, primary string) string {
	seen := make(map[string]struct{}, len(mods))
	parts := make([]string, 0, len(mods)+1)
	for _, mod := range mods {
		if _, ok := seen[mod]; ok {
			continue
		}
		seen[mod] = struct{}{}
		parts = append(parts, mod)
	}
	return strings.Join(append(parts, primary), "+")
}

func eventKeyString(event *tcell.EventKey) string {
	key := event.Key()
	primary := keyName(key)
	// Enter, tab, and backspace share codes with control keys.
	if primary == "" && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if primary == "" && key == tcell.KeyRune {
		primary = event.Str()
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	var mods []string
	modifiers := event.Modifiers()
	if modifiers&tcell.ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if modifiers&tcell.ModAlt != 0 {
		mods = append(mods, "alt")
	}
	if modifiers&tcell.ModMeta != 0 {
		mods = append(mods, "meta")
	}
	// Shift is already part of a printable rune.
	if (modifiers&tcell.ModShift != 0 && key != tcell.KeyRune) || key == tcell.KeyBacktab {
		mods = append(mods, "shift")
	}
	if len(mods) == 0 {
		return primary
	}
	return joinKey(mods, primary)
}

func keyName(key tcell.Key) string {
	switch key {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "tab"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyInsert:
		return "insert"
	default:
		return ""
	}
}
