package model

// ParseMode selects the formatting style applied to outgoing message text.
//
// Markdown exists for backwards compatibility only; prefer MarkdownV2.
type ParseMode string

// Parse modes accepted by the Bot API.
const (
	ParseMarkdownV2 ParseMode = "MarkdownV2"
	ParseMarkdown   ParseMode = "Markdown"
	ParseHTML       ParseMode = "HTML"
)

// ChatAction tells the user what the bot is about to send.
type ChatAction string

// Chat actions accepted by the sendChatAction method.
const (
	ActionTyping          ChatAction = "typing"
	ActionUploadPhoto     ChatAction = "upload_photo"
	ActionRecordVideo     ChatAction = "record_video"
	ActionUploadVideo     ChatAction = "upload_video"
	ActionRecordAudio     ChatAction = "record_audio"
	ActionUploadAudio     ChatAction = "upload_audio"
	ActionUploadDocument  ChatAction = "upload_document"
	ActionFindLocation    ChatAction = "find_location"
	ActionRecordVideoNote ChatAction = "record_video_note"
	ActionUploadVideoNote ChatAction = "upload_video_note"
)

// File represents a file ready to be downloaded. The download link is
// valid for at least one hour; request a fresh File via getFile after it
// expires.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// BotCommand represents one command supported by a bot, such as "ping"
// for the command "/ping".
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}
