package app

import (
	"vox-translate/internal/catalog"
)

// View is what the handlers need from the window. Every method must be
// called on the UI thread.
type View interface {
	InputText() string
	SetInputText(text string)
	OutputText() string
	SetOutputText(text string)
	SetDestination(displayName string)
	SetStatus(status string)
	ShowLanguagePicker(cat *catalog.Catalog, current string, onSelect func(catalog.Entry))
}

// User-facing strings. The interface language is Vietnamese.
const (
	MsgEmptyInput         = "Vui lòng nhập văn bản cần dịch."
	MsgServiceUnavailable = "Dịch vụ dịch thuật hiện không khả dụng."
	MsgTranslateFailed    = "Không thể dịch văn bản; %v"
	MsgUnrecognized       = "Không thể hiểu giọng nói"
	MsgRequestFailed      = "Không thể yêu cầu kết quả; %v"
	MsgOCRFailed          = "Lỗi khi nhận dạng văn bản từ hình ảnh: %v"

	StatusReady          = "Sẵn sàng"
	StatusTranslating    = "Đang dịch..."
	StatusTranslated     = "Đã dịch sang %s"
	StatusTranslatedFrom = "Đã dịch từ %s sang %s"
	StatusListening      = "Đang nghe..."
	StatusRecognizing    = "Đang nhận dạng giọng nói..."
	StatusSpeaking       = "Đang đọc..."
	StatusSpeakFailed    = "Không thể đọc văn bản; %v"
	StatusNothingToSpeak = "Không có văn bản để đọc"
	StatusReadingImage   = "Đang nhận dạng văn bản từ hình ảnh..."
	StatusUnavailable    = "Chức năng này chưa được cấu hình"
)
