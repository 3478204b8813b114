package viber

import (
	"encoding/json"
	"math"
	"strconv"
)

// Field names used by the keyboard builder.
const (
	fieldKeyboard      = "keyboard"
	fieldMinAPIVersion = "min_api_version"
	fieldButtons       = "Buttons"
	fieldType          = "Type"
)

// Keyboard represents an interactive keyboard attached to an outbound message.
type Keyboard struct {
	// Options holds top-level keyboard attributes (DefaultHeight, BgColor, InputFieldState, ...).
	Options *Params
	// Buttons holds button definitions in display order.
	Buttons []*Params
}

// NewKeyboard creates a keyboard from the given options and buttons.
// Button contents are not validated.
func NewKeyboard(options *Params, buttons ...*Params) *Keyboard {
	return &Keyboard{
		Options: options,
		Buttons: buttons,
	}
}

// Fields returns the keyboard as a message layer: {"keyboard": {...}}.
// A nil keyboard yields an empty layer.
func (k *Keyboard) Fields() *Params {
	if k == nil {
		return &Params{}
	}

	buttons := make([]*Params, 0, len(k.Buttons))
	for _, button := range k.Buttons {
		if button != nil {
			buttons = append(buttons, button)
		}
	}

	keyboard := Merge(
		NewParams(F(fieldType, "keyboard")),
		k.Options,
		NewParams(F(fieldButtons, buttons)),
	)

	return NewParams(F(fieldKeyboard, keyboard))
}

// MinAPIVersion returns the minimum API version required to render the keyboard.
func (k *Keyboard) MinAPIVersion() (int, bool) {
	if k == nil {
		return 0, false
	}

	return MinAPIVersion(k.Buttons)
}

// MinAPIVersion returns the highest min_api_version declared by the buttons.
// The second result is false when no button declares it.
func MinAPIVersion(buttons []*Params) (int, bool) {
	var (
		maxVersion int
		found      bool
	)

	for _, button := range buttons {
		raw, ok := button.Get(fieldMinAPIVersion)
		if !ok {
			continue
		}

		version, ok := toVersion(raw)
		if !ok {
			continue
		}

		if !found || version > maxVersion {
			maxVersion = version
			found = true
		}
	}

	return maxVersion, found
}

func toVersion(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return floatVersion(float64(v))
	case float64:
		return floatVersion(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, err := v.Float64()
			if err != nil {
				return 0, false
			}

			return floatVersion(f)
		}

		return int(n), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}

		return n, true
	case *int:
		if v == nil {
			return 0, false
		}

		return *v, true
	default:
		return 0, false
	}
}

func floatVersion(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return int(math.Ceil(f)), true
}
