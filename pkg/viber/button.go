package viber

// Button action types.
const (
	ActionReply          = "reply"
	ActionOpenURL        = "open-url"
	ActionLocationPicker = "location-picker"
	ActionSharePhone     = "share-phone"
	ActionNone           = "none"
)

// Location picker and share phone buttons are not rendered by older clients.
const pickerMinAPIVersion = 3

// ReplyButton creates a button that sends its ActionBody back to the bot.
func ReplyButton(attrs *Params) *Params {
	return Merge(NewParams(F("ActionType", ActionReply)), attrs)
}

// URLButton creates a button that opens the URL given in ActionBody.
func URLButton(attrs *Params) *Params {
	return Merge(NewParams(F("ActionType", ActionOpenURL)), attrs)
}

// LocationPickerButton creates a button that asks the user for a location.
func LocationPickerButton(attrs *Params) *Params {
	return Merge(
		NewParams(
			F("ActionType", ActionLocationPicker),
			F(fieldMinAPIVersion, pickerMinAPIVersion),
		),
		attrs,
	)
}

// SharePhoneButton creates a button that asks the user for a phone number.
func SharePhoneButton(attrs *Params) *Params {
	return Merge(
		NewParams(
			F("ActionType", ActionSharePhone),
			F(fieldMinAPIVersion, pickerMinAPIVersion),
		),
		attrs,
	)
}

// NoneButton creates a button without action.
func NoneButton(attrs *Params) *Params {
	return Merge(NewParams(F("ActionType", ActionNone)), attrs)
}
