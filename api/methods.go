package api

import (
	"context"

	"github.com/rmrfus/telexide/model"
)

// GetMe returns the bot's own user record. Useful as a token check.
func (c *Client) GetMe(ctx context.Context) (*model.User, error) {
	return do[model.User](ctx, c, "getMe", nil)
}

// GetUpdates fetches incoming updates using long polling.
func (c *Client) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]model.Update, error) {
	result, err := do[[]model.Update](ctx, c, "getUpdates", req)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// GetRawUpdates fetches incoming updates as undecoded JSON documents,
// one per update. Used by drivers that feed raw event handlers before
// the convenience mapping.
func (c *Client) GetRawUpdates(ctx context.Context, req GetUpdatesRequest) ([]RawUpdate, error) {
	result, err := do[[]RawUpdate](ctx, c, "getUpdates", req)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// SetWebhook configures the webhook URL for receiving updates.
func (c *Client) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	_, err := do[bool](ctx, c, "setWebhook", req)
	return err
}

// DeleteWebhook removes the current webhook integration.
func (c *Client) DeleteWebhook(ctx context.Context, req DeleteWebhookRequest) error {
	_, err := do[bool](ctx, c, "deleteWebhook", req)
	return err
}

// SendMessage sends a text message to the specified chat.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendMessage", req)
}

// ForwardMessage forwards a message between chats.
func (c *Client) ForwardMessage(ctx context.Context, req ForwardMessageRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "forwardMessage", req)
}

// EditMessageText edits the text of a previously sent message.
func (c *Client) EditMessageText(ctx context.Context, req EditMessageTextRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "editMessageText", req)
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(ctx context.Context, req DeleteMessageRequest) error {
	_, err := do[bool](ctx, c, "deleteMessage", req)
	return err
}

// SendPhoto sends a photo to the specified chat.
func (c *Client) SendPhoto(ctx context.Context, req SendPhotoRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendPhoto", req)
}

// SendAudio sends an audio file to the specified chat.
func (c *Client) SendAudio(ctx context.Context, req SendAudioRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendAudio", req)
}

// SendVoice sends a voice message to the specified chat.
func (c *Client) SendVoice(ctx context.Context, req SendVoiceRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendVoice", req)
}

// SendDocument sends a document to the specified chat.
func (c *Client) SendDocument(ctx context.Context, req SendDocumentRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendDocument", req)
}

// SendLocation sends a location to the specified chat.
func (c *Client) SendLocation(ctx context.Context, req SendLocationRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendLocation", req)
}

// SendContact sends a phone contact to the specified chat.
func (c *Client) SendContact(ctx context.Context, req SendContactRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendContact", req)
}

// SendPoll sends a native poll to the specified chat.
func (c *Client) SendPoll(ctx context.Context, req SendPollRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendPoll", req)
}

// StopPoll stops a poll sent by the bot and returns its final state.
func (c *Client) StopPoll(ctx context.Context, req StopPollRequest) (*model.Poll, error) {
	return do[model.Poll](ctx, c, "stopPoll", req)
}

// SendDice sends an animated emoji showing a random value.
func (c *Client) SendDice(ctx context.Context, req SendDiceRequest) (*model.Message, error) {
	return do[model.Message](ctx, c, "sendDice", req)
}

// SendChatAction tells the user what the bot is about to send.
func (c *Client) SendChatAction(ctx context.Context, chatID int64, action model.ChatAction) error {
	_, err := do[bool](ctx, c, "sendChatAction", sendChatActionRequest{
		ChatID: chatID,
		Action: action,
	})
	return err
}

// AnswerInlineQuery sends results for an inline query.
func (c *Client) AnswerInlineQuery(ctx context.Context, req AnswerInlineQueryRequest) error {
	_, err := do[bool](ctx, c, "answerInlineQuery", req)
	return err
}

// AnswerCallbackQuery answers a callback query from an inline keyboard.
func (c *Client) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	_, err := do[bool](ctx, c, "answerCallbackQuery", req)
	return err
}

// AnswerShippingQuery replies to a shipping query.
func (c *Client) AnswerShippingQuery(ctx context.Context, req AnswerShippingQueryRequest) error {
	_, err := do[bool](ctx, c, "answerShippingQuery", req)
	return err
}

// AnswerPreCheckoutQuery replies to a pre-checkout query. Must be sent
// within 10 seconds of receiving the query.
func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, req AnswerPreCheckoutQueryRequest) error {
	_, err := do[bool](ctx, c, "answerPreCheckoutQuery", req)
	return err
}

// GetFile retrieves basic info about a file and prepares it for
// downloading via FileURL.
func (c *Client) GetFile(ctx context.Context, fileID string) (*model.File, error) {
	return do[model.File](ctx, c, "getFile", getFileRequest{FileID: fileID})
}

// SetMyCommands changes the bot's command list.
func (c *Client) SetMyCommands(ctx context.Context, commands []model.BotCommand) error {
	_, err := do[bool](ctx, c, "setMyCommands", setMyCommandsRequest{Commands: commands})
	return err
}

// GetMyCommands returns the bot's current command list.
func (c *Client) GetMyCommands(ctx context.Context) ([]model.BotCommand, error) {
	result, err := do[[]model.BotCommand](ctx, c, "getMyCommands", nil)
	if err != nil {
		return nil, err
	}
	return *result, nil
}
