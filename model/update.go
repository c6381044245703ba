// Package model defines the data-transfer types mirroring the Telegram
// Bot API schema.
package model

// UpdateType identifies which variant field of an Update is populated.
type UpdateType string

// Update types, in the Bot API's field order. Classification checks the
// variant fields in this order and stops at the first populated one.
const (
	UpdateMessage            UpdateType = "message"
	UpdateEditedMessage      UpdateType = "edited_message"
	UpdateChannelPost        UpdateType = "channel_post"
	UpdateEditedChannelPost  UpdateType = "edited_channel_post"
	UpdateInlineQuery        UpdateType = "inline_query"
	UpdateChosenInlineResult UpdateType = "chosen_inline_result"
	UpdateCallbackQuery      UpdateType = "callback_query"
	UpdateShippingQuery      UpdateType = "shipping_query"
	UpdatePreCheckoutQuery   UpdateType = "pre_checkout_query"
	UpdatePoll               UpdateType = "poll"
	UpdatePollAnswer         UpdateType = "poll_answer"

	// UpdateNone is returned by Type for an update with no populated
	// variant field. The API should never deliver one, but the
	// dispatcher tolerates it as a no-op.
	UpdateNone UpdateType = ""
)

// Update represents one incoming event from the Bot API. At most one of
// the variant fields is non-nil per update.
type Update struct {
	UpdateID           int64               `json:"update_id"`
	Message            *Message            `json:"message,omitempty"`
	EditedMessage      *Message            `json:"edited_message,omitempty"`
	ChannelPost        *Message            `json:"channel_post,omitempty"`
	EditedChannelPost  *Message            `json:"edited_channel_post,omitempty"`
	InlineQuery        *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery      *CallbackQuery      `json:"callback_query,omitempty"`
	ShippingQuery      *ShippingQuery      `json:"shipping_query,omitempty"`
	PreCheckoutQuery   *PreCheckoutQuery   `json:"pre_checkout_query,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
	PollAnswer         *PollAnswer         `json:"poll_answer,omitempty"`
}

// Type classifies the update by its first populated variant field.
func (u *Update) Type() UpdateType {
	switch {
	case u.Message != nil:
		return UpdateMessage
	case u.EditedMessage != nil:
		return UpdateEditedMessage
	case u.ChannelPost != nil:
		return UpdateChannelPost
	case u.EditedChannelPost != nil:
		return UpdateEditedChannelPost
	case u.InlineQuery != nil:
		return UpdateInlineQuery
	case u.ChosenInlineResult != nil:
		return UpdateChosenInlineResult
	case u.CallbackQuery != nil:
		return UpdateCallbackQuery
	case u.ShippingQuery != nil:
		return UpdateShippingQuery
	case u.PreCheckoutQuery != nil:
		return UpdatePreCheckoutQuery
	case u.Poll != nil:
		return UpdatePoll
	case u.PollAnswer != nil:
		return UpdatePollAnswer
	}
	return UpdateNone
}
