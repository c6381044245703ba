// Package telexide is a client library for the Telegram Bot API.
//
// It provides:
//
//   - Data-transfer types mirroring the Bot API schema (package model)
//   - A thin HTTP client with rate-limit aware retries (package api)
//   - A dispatcher routing incoming updates to registered callbacks
//   - Two update sources: long polling (default) and webhook
//   - Optional polling-offset persistence, Prometheus metrics, and a
//     cron-based job scheduler
//
// A minimal echo bot:
//
//	bot, err := telexide.New(telexide.Config{Token: token})
//	if err != nil {
//		log.Fatal(err)
//	}
//	bot.OnMessage(func(ctx *telexide.Context, msg model.Message) error {
//		_, err := ctx.API.SendMessage(ctx, api.SendMessageRequest{
//			ChatID: msg.Chat.ID,
//			Text:   msg.Text,
//		})
//		return err
//	})
//	if err := bot.Start(context.Background()); err != nil {
//		log.Fatal(err)
//	}
//
// Callbacks for one update run in that update's own goroutine. A
// callback error terminates only its own update's processing; it is
// logged by the driver and counted in the bot's metrics.
package telexide
