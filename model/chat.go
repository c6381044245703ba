package model

// ChatType identifies the kind of chat a message belongs to.
type ChatType string

// Chat types returned by the Bot API.
const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSuperGroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

// Chat represents a Telegram chat.
type Chat struct {
	ID             int64            `json:"id"`
	Type           ChatType         `json:"type"`
	Title          string           `json:"title,omitempty"`
	Username       string           `json:"username,omitempty"`
	FirstName      string           `json:"first_name,omitempty"`
	LastName       string           `json:"last_name,omitempty"`
	Photo          *ChatPhoto       `json:"photo,omitempty"`
	Bio            string           `json:"bio,omitempty"`
	Description    string           `json:"description,omitempty"`
	InviteLink     string           `json:"invite_link,omitempty"`
	PinnedMessage  *Message         `json:"pinned_message,omitempty"`
	Permissions    *ChatPermissions `json:"permissions,omitempty"`
	SlowModeDelay  int              `json:"slow_mode_delay,omitempty"`
	StickerSetName string           `json:"sticker_set_name,omitempty"`
	LinkedChatID   int64            `json:"linked_chat_id,omitempty"`
	Location       *ChatLocation    `json:"location,omitempty"`
}

// ChatPhoto represents a chat photo.
type ChatPhoto struct {
	SmallFileID       string `json:"small_file_id"`
	SmallFileUniqueID string `json:"small_file_unique_id"`
	BigFileID         string `json:"big_file_id"`
	BigFileUniqueID   string `json:"big_file_unique_id"`
}

// ChatPermissions describes actions that a non-administrator user is
// allowed to take in a chat.
type ChatPermissions struct {
	CanSendMessages       bool `json:"can_send_messages,omitempty"`
	CanSendMediaMessages  bool `json:"can_send_media_messages,omitempty"`
	CanSendPolls          bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews bool `json:"can_add_web_page_previews,omitempty"`
	CanChangeInfo         bool `json:"can_change_info,omitempty"`
	CanInviteUsers        bool `json:"can_invite_users,omitempty"`
	CanPinMessages        bool `json:"can_pin_messages,omitempty"`
}

// ChatLocation represents the location to which a supergroup is connected.
type ChatLocation struct {
	Location Location `json:"location"`
	Address  string   `json:"address"`
}
