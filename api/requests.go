package api

import "github.com/rmrfus/telexide/model"

// GetUpdatesRequest is the request body for the getUpdates method.
type GetUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// SetWebhookRequest is the request body for the setWebhook method.
type SetWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	IPAddress      string   `json:"ip_address,omitempty"`
	MaxConnections int      `json:"max_connections,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// DeleteWebhookRequest is the request body for the deleteWebhook method.
type DeleteWebhookRequest struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}

// SendMessageRequest is the request body for the sendMessage method.
type SendMessageRequest struct {
	ChatID                int64           `json:"chat_id"`
	Text                  string          `json:"text"`
	ParseMode             model.ParseMode `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool            `json:"disable_web_page_preview,omitempty"`
	DisableNotification   bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID      int64           `json:"reply_to_message_id,omitempty"`
	ReplyMarkup           any             `json:"reply_markup,omitempty"`
}

// ForwardMessageRequest is the request body for the forwardMessage method.
type ForwardMessageRequest struct {
	ChatID              int64 `json:"chat_id"`
	FromChatID          int64 `json:"from_chat_id"`
	MessageID           int64 `json:"message_id"`
	DisableNotification bool  `json:"disable_notification,omitempty"`
}

// EditMessageTextRequest is the request body for the editMessageText
// method. Either ChatID+MessageID or InlineMessageID must be set.
type EditMessageTextRequest struct {
	ChatID                int64           `json:"chat_id,omitempty"`
	MessageID             int64           `json:"message_id,omitempty"`
	InlineMessageID       string          `json:"inline_message_id,omitempty"`
	Text                  string          `json:"text"`
	ParseMode             model.ParseMode `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool            `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           any             `json:"reply_markup,omitempty"`
}

// DeleteMessageRequest is the request body for the deleteMessage method.
type DeleteMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// SendPhotoRequest is the request body for the sendPhoto method. Photo
// is a file_id or an HTTP URL.
type SendPhotoRequest struct {
	ChatID              int64           `json:"chat_id"`
	Photo               string          `json:"photo"`
	Caption             string          `json:"caption,omitempty"`
	ParseMode           model.ParseMode `json:"parse_mode,omitempty"`
	DisableNotification bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64           `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any             `json:"reply_markup,omitempty"`
}

// SendAudioRequest is the request body for the sendAudio method.
type SendAudioRequest struct {
	ChatID              int64           `json:"chat_id"`
	Audio               string          `json:"audio"`
	Caption             string          `json:"caption,omitempty"`
	ParseMode           model.ParseMode `json:"parse_mode,omitempty"`
	Duration            int             `json:"duration,omitempty"`
	Performer           string          `json:"performer,omitempty"`
	Title               string          `json:"title,omitempty"`
	DisableNotification bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64           `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any             `json:"reply_markup,omitempty"`
}

// SendVoiceRequest is the request body for the sendVoice method.
type SendVoiceRequest struct {
	ChatID              int64           `json:"chat_id"`
	Voice               string          `json:"voice"`
	Caption             string          `json:"caption,omitempty"`
	ParseMode           model.ParseMode `json:"parse_mode,omitempty"`
	Duration            int             `json:"duration,omitempty"`
	DisableNotification bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64           `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any             `json:"reply_markup,omitempty"`
}

// SendDocumentRequest is the request body for the sendDocument method.
type SendDocumentRequest struct {
	ChatID              int64           `json:"chat_id"`
	Document            string          `json:"document"`
	Caption             string          `json:"caption,omitempty"`
	ParseMode           model.ParseMode `json:"parse_mode,omitempty"`
	DisableNotification bool            `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64           `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any             `json:"reply_markup,omitempty"`
}

// SendLocationRequest is the request body for the sendLocation method.
type SendLocationRequest struct {
	ChatID              int64   `json:"chat_id"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	LivePeriod          int     `json:"live_period,omitempty"`
	DisableNotification bool    `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64   `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any     `json:"reply_markup,omitempty"`
}

// SendContactRequest is the request body for the sendContact method.
type SendContactRequest struct {
	ChatID              int64  `json:"chat_id"`
	PhoneNumber         string `json:"phone_number"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name,omitempty"`
	VCard               string `json:"vcard,omitempty"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64  `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any    `json:"reply_markup,omitempty"`
}

// SendPollRequest is the request body for the sendPoll method.
type SendPollRequest struct {
	ChatID                int64    `json:"chat_id"`
	Question              string   `json:"question"`
	Options               []string `json:"options"`
	IsAnonymous           *bool    `json:"is_anonymous,omitempty"`
	Type                  string   `json:"type,omitempty"`
	AllowsMultipleAnswers bool     `json:"allows_multiple_answers,omitempty"`
	CorrectOptionID       int      `json:"correct_option_id,omitempty"`
	Explanation           string   `json:"explanation,omitempty"`
	OpenPeriod            int      `json:"open_period,omitempty"`
	CloseDate             int64    `json:"close_date,omitempty"`
	IsClosed              bool     `json:"is_closed,omitempty"`
	DisableNotification   bool     `json:"disable_notification,omitempty"`
	ReplyToMessageID      int64    `json:"reply_to_message_id,omitempty"`
	ReplyMarkup           any      `json:"reply_markup,omitempty"`
}

// StopPollRequest is the request body for the stopPoll method.
type StopPollRequest struct {
	ChatID      int64 `json:"chat_id"`
	MessageID   int64 `json:"message_id"`
	ReplyMarkup any   `json:"reply_markup,omitempty"`
}

// SendDiceRequest is the request body for the sendDice method.
type SendDiceRequest struct {
	ChatID              int64  `json:"chat_id"`
	Emoji               string `json:"emoji,omitempty"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
	ReplyToMessageID    int64  `json:"reply_to_message_id,omitempty"`
	ReplyMarkup         any    `json:"reply_markup,omitempty"`
}

// AnswerInlineQueryRequest is the request body for the answerInlineQuery
// method. Results must be JSON-serializable inline query result objects.
type AnswerInlineQueryRequest struct {
	InlineQueryID     string `json:"inline_query_id"`
	Results           []any  `json:"results"`
	CacheTime         int    `json:"cache_time,omitempty"`
	IsPersonal        bool   `json:"is_personal,omitempty"`
	NextOffset        string `json:"next_offset,omitempty"`
	SwitchPMText      string `json:"switch_pm_text,omitempty"`
	SwitchPMParameter string `json:"switch_pm_parameter,omitempty"`
}

// AnswerCallbackQueryRequest is the request body for the
// answerCallbackQuery method.
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
	URL             string `json:"url,omitempty"`
	CacheTime       int    `json:"cache_time,omitempty"`
}

// AnswerShippingQueryRequest is the request body for the
// answerShippingQuery method. ErrorMessage is required when OK is false.
type AnswerShippingQueryRequest struct {
	ShippingQueryID string                 `json:"shipping_query_id"`
	OK              bool                   `json:"ok"`
	ShippingOptions []model.ShippingOption `json:"shipping_options,omitempty"`
	ErrorMessage    string                 `json:"error_message,omitempty"`
}

// AnswerPreCheckoutQueryRequest is the request body for the
// answerPreCheckoutQuery method. ErrorMessage is required when OK is false.
type AnswerPreCheckoutQueryRequest struct {
	PreCheckoutQueryID string `json:"pre_checkout_query_id"`
	OK                 bool   `json:"ok"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

// sendChatActionRequest is the request body for the sendChatAction method.
type sendChatActionRequest struct {
	ChatID int64            `json:"chat_id"`
	Action model.ChatAction `json:"action"`
}

// getFileRequest is the request body for the getFile method.
type getFileRequest struct {
	FileID string `json:"file_id"`
}

// setMyCommandsRequest is the request body for the setMyCommands method.
type setMyCommandsRequest struct {
	Commands []model.BotCommand `json:"commands"`
}
