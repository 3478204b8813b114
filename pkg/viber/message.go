package viber

// Message types supported by the send and broadcast endpoints.
const (
	MessageText      = "text"
	MessagePicture   = "picture"
	MessageVideo     = "video"
	MessageFile      = "file"
	MessageContact   = "contact"
	MessageLocation  = "location"
	MessageURL       = "url"
	MessageSticker   = "sticker"
	MessageRichMedia = "rich_media"
)

func newMessage(messageType string, fields *Params, attrs *Params) *Params {
	return Merge(NewParams(F("type", messageType)), fields, attrs)
}

// TextMessage creates a plain text message.
func TextMessage(text string, attrs ...Field) *Params {
	return newMessage(MessageText, NewParams(F("text", text)), NewParams(attrs...))
}

// PictureMessage creates a picture message. A description can be passed as the "text" attribute.
func PictureMessage(media string, attrs ...Field) *Params {
	return newMessage(MessagePicture, NewParams(F("media", media)), NewParams(attrs...))
}

// VideoMessage creates a video message. Size is in bytes.
func VideoMessage(media string, size int64, attrs ...Field) *Params {
	return newMessage(MessageVideo, NewParams(F("media", media), F("size", size)), NewParams(attrs...))
}

// FileMessage creates a file message. Size is in bytes.
func FileMessage(media string, size int64, fileName string, attrs ...Field) *Params {
	return newMessage(
		MessageFile,
		NewParams(F("media", media), F("size", size), F("file_name", fileName)),
		NewParams(attrs...),
	)
}

// ContactMessage creates a contact message.
func ContactMessage(name, phoneNumber string, attrs ...Field) *Params {
	contact := NewParams(F("name", name), F("phone_number", phoneNumber))

	return newMessage(MessageContact, NewParams(F("contact", contact)), NewParams(attrs...))
}

// LocationMessage creates a location message.
func LocationMessage(lat, lon float64, attrs ...Field) *Params {
	location := NewParams(F("lat", lat), F("lon", lon))

	return newMessage(MessageLocation, NewParams(F("location", location)), NewParams(attrs...))
}

// URLMessage creates a URL message.
func URLMessage(media string, attrs ...Field) *Params {
	return newMessage(MessageURL, NewParams(F("media", media)), NewParams(attrs...))
}

// StickerMessage creates a sticker message.
func StickerMessage(stickerID int, attrs ...Field) *Params {
	return newMessage(MessageSticker, NewParams(F("sticker_id", stickerID)), NewParams(attrs...))
}

// RichMediaMessage creates a carousel message out of the given buttons.
// The computed min_api_version of the buttons is set unless given in attrs.
func RichMediaMessage(options *Params, buttons []*Params, attrs ...Field) *Params {
	richMedia := Merge(
		NewParams(F(fieldType, MessageRichMedia)),
		options,
		NewParams(F(fieldButtons, buttons)),
	)

	message := newMessage(MessageRichMedia, NewParams(F("rich_media", richMedia)), NewParams(attrs...))
	if version, ok := MinAPIVersion(buttons); ok && !hasValue(message, fieldMinAPIVersion) {
		message.Set(fieldMinAPIVersion, version)
	}

	return message
}
