package model

import "strings"

// Message represents a Telegram message.
type Message struct {
	MessageID               int64                    `json:"message_id"`
	From                    *User                    `json:"from,omitempty"`
	SenderChat              *Chat                    `json:"sender_chat,omitempty"`
	Date                    int64                    `json:"date"`
	Chat                    Chat                     `json:"chat"`
	ForwardFrom             *User                    `json:"forward_from,omitempty"`
	ForwardFromChat         *Chat                    `json:"forward_from_chat,omitempty"`
	ForwardFromMessageID    int64                    `json:"forward_from_message_id,omitempty"`
	ForwardSignature        string                   `json:"forward_signature,omitempty"`
	ForwardSenderName       string                   `json:"forward_sender_name,omitempty"`
	ForwardDate             int64                    `json:"forward_date,omitempty"`
	ReplyToMessage          *Message                 `json:"reply_to_message,omitempty"`
	ViaBot                  *User                    `json:"via_bot,omitempty"`
	EditDate                int64                    `json:"edit_date,omitempty"`
	MediaGroupID            string                   `json:"media_group_id,omitempty"`
	AuthorSignature         string                   `json:"author_signature,omitempty"`
	Text                    string                   `json:"text,omitempty"`
	Entities                []MessageEntity          `json:"entities,omitempty"`
	Caption                 string                   `json:"caption,omitempty"`
	CaptionEntities         []MessageEntity          `json:"caption_entities,omitempty"`
	Audio                   *Audio                   `json:"audio,omitempty"`
	Document                *Document                `json:"document,omitempty"`
	Animation               *Animation               `json:"animation,omitempty"`
	Photo                   []PhotoSize              `json:"photo,omitempty"`
	Sticker                 *Sticker                 `json:"sticker,omitempty"`
	Video                   *Video                   `json:"video,omitempty"`
	VideoNote               *VideoNote               `json:"video_note,omitempty"`
	Voice                   *Voice                   `json:"voice,omitempty"`
	Contact                 *Contact                 `json:"contact,omitempty"`
	Location                *Location                `json:"location,omitempty"`
	Venue                   *Venue                   `json:"venue,omitempty"`
	Poll                    *Poll                    `json:"poll,omitempty"`
	Dice                    *Dice                    `json:"dice,omitempty"`
	NewChatMembers          []User                   `json:"new_chat_members,omitempty"`
	LeftChatMember          *User                    `json:"left_chat_member,omitempty"`
	NewChatTitle            string                   `json:"new_chat_title,omitempty"`
	NewChatPhoto            []PhotoSize              `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto         bool                     `json:"delete_chat_photo,omitempty"`
	GroupChatCreated        bool                     `json:"group_chat_created,omitempty"`
	SupergroupChatCreated   bool                     `json:"supergroup_chat_created,omitempty"`
	ChannelChatCreated      bool                     `json:"channel_chat_created,omitempty"`
	MigrateToChatID         int64                    `json:"migrate_to_chat_id,omitempty"`
	MigrateFromChatID       int64                    `json:"migrate_from_chat_id,omitempty"`
	PinnedMessage           *Message                 `json:"pinned_message,omitempty"`
	Invoice                 *Invoice                 `json:"invoice,omitempty"`
	SuccessfulPayment       *SuccessfulPayment       `json:"successful_payment,omitempty"`
	ConnectedWebsite        string                   `json:"connected_website,omitempty"`
	ProximityAlertTriggered *ProximityAlertTriggered `json:"proximity_alert_triggered,omitempty"`
	ReplyMarkup             *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
}

// MessageEntity represents one special entity in a text message, such as
// a hashtag, URL, or bot command.
type MessageEntity struct {
	Type     string `json:"type"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
	URL      string `json:"url,omitempty"`
	User     *User  `json:"user,omitempty"`
	Language string `json:"language,omitempty"`
}

// PhotoSize represents one size of a photo or a file/sticker thumbnail.
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int    `json:"file_size,omitempty"`
}

// Audio represents an audio file to be treated as music.
type Audio struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Duration     int        `json:"duration"`
	Performer    string     `json:"performer,omitempty"`
	Title        string     `json:"title,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int        `json:"file_size,omitempty"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
}

// Voice represents a voice note.
type Voice struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Duration     int    `json:"duration"`
	MIMEType     string `json:"mime_type,omitempty"`
	FileSize     int    `json:"file_size,omitempty"`
}

// Document represents a general file (not photos, audio, or voice).
type Document struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int        `json:"file_size,omitempty"`
}

// Video represents a video file.
type Video struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Duration     int        `json:"duration"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int        `json:"file_size,omitempty"`
}

// VideoNote represents a video message.
type VideoNote struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Length       int        `json:"length"`
	Duration     int        `json:"duration"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileSize     int        `json:"file_size,omitempty"`
}

// Animation represents an animation file (GIF or H.264/MPEG-4 AVC video
// without sound).
type Animation struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Duration     int        `json:"duration"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MIMEType     string     `json:"mime_type,omitempty"`
	FileSize     int        `json:"file_size,omitempty"`
}

// Sticker represents a sticker.
type Sticker struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	IsAnimated   bool       `json:"is_animated"`
	Thumb        *PhotoSize `json:"thumb,omitempty"`
	Emoji        string     `json:"emoji,omitempty"`
	SetName      string     `json:"set_name,omitempty"`
	FileSize     int        `json:"file_size,omitempty"`
}

// Contact represents a phone contact.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

// Location represents a point on the map.
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Venue represents a venue.
type Venue struct {
	Location       Location `json:"location"`
	Title          string   `json:"title"`
	Address        string   `json:"address"`
	FoursquareID   string   `json:"foursquare_id,omitempty"`
	FoursquareType string   `json:"foursquare_type,omitempty"`
}

// Dice represents an animated emoji that displays a random value.
type Dice struct {
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}

// ProximityAlertTriggered represents a service message sent when a user
// in the chat triggers a proximity alert set by another user.
type ProximityAlertTriggered struct {
	Traveler User `json:"traveler"`
	Watcher  User `json:"watcher"`
	Distance int  `json:"distance"`
}

// Command returns the bot command at the start of the message, without
// the leading slash or a trailing @mention, or "" if the message does
// not start with a bot_command entity.
func (m *Message) Command() string {
	for _, e := range m.Entities {
		if e.Type != "bot_command" || e.Offset != 0 {
			continue
		}
		// Entity lengths are UTF-16 code units, but a command is
		// ASCII so byte slicing holds. Entity bounds are remote data
		// and must not be trusted.
		if e.Length < 1 || e.Length > len(m.Text) {
			return ""
		}
		cmd := m.Text[1:e.Length]
		if at := strings.IndexByte(cmd, '@'); at >= 0 {
			cmd = cmd[:at]
		}
		return cmd
	}
	return ""
}
