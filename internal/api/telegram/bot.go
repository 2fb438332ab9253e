package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "chase-cover/internal/application"
	"chase-cover/internal/container"
	"chase-cover/internal/domain/entity"
)

const (
	msgStart = `👋 Hi! I turn chimney chase measurements into a cover sketch and a DXF outline for the shop.

📋 Commands:
/new — start a new cover
/sketch — build the sketch from the measurements and photos
/send — email the last sketch to the shop
/cancel — drop the current measurements
/help — measurement format`

	msgHelp = `ℹ️ Send the measurements as one message, one value per line (inches):

project: Smith residence
width: 36
length: 36
flange: 3
kickout: yes
color: Med Bronze
spark: yes, 13x13 mesh
windband: no
tolerance: 0.25
notes: access from rear
hole: collar=4 left=6 right=6 front=6 back=6

📐 Repeat "hole:" for every hole. Each hole needs at least three of left, right, front, back. Add diameter=24 if you measured the pipe directly.
📸 Then send site photos and /sketch.`

	msgBegin          = "📏 Send the measurements (see /help for the format)."
	msgCancelled      = "❌ Measurements dropped. Send /new to start again."
	msgNeedNew        = "Send /new to start a new cover."
	msgUnknownCommand = "❓ Unknown command. Use /help."
	msgNoDraft        = "📏 No measurements yet. Send them first (see /help)."
	msgNoPackage      = "Nothing to send yet. Build a sketch with /sketch first."
	msgProcessing     = "⏳ Building the sketch..."
	msgSending        = "📨 Sending to the shop..."
	msgPhotoError     = "⚠️ Could not download the photo. Please try again."
	msgMailOff        = "📭 Email is not configured on the server. Download the sketch and DXF above instead."
)

// captionLimit предел подписи к фото в Telegram, в единицах UTF-16.
const captionLimit = 1024

// Bot представляет Telegram-бота
type Bot struct {
	api          *tgbotapi.BotAPI
	client       *http.Client
	drafts       *app.DraftService
	measurements *app.MeasurementService
	dispatch     *app.DispatchService
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:          api,
		client:       http.DefaultClient,
		drafts:       c.DraftService,
		measurements: c.MeasurementService,
		dispatch:     c.DispatchService,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	draft, err := b.drafts.Get(ctx, chatID)
	if err != nil {
		log.Printf("Error getting draft: %v", err)
		return
	}

	// Фото и изображения, присланные файлом
	if fileID, name, ok := imageOf(msg); ok {
		if draft.State == entity.StateMainMenu {
			b.sendMessage(chatID, msgNeedNew)
			return
		}
		b.handlePhoto(ctx, chatID, fileID, name)
		return
	}

	if strings.TrimSpace(msg.Text) == "" {
		return
	}
	if draft.State == entity.StateMainMenu {
		b.sendMessage(chatID, msgNeedNew)
		return
	}
	b.handleMeasurements(ctx, chatID, msg.Text)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		if _, err := b.drafts.Cancel(ctx, chatID); err != nil {
			log.Printf("Error resetting draft: %v", err)
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "new":
		if _, err := b.drafts.Begin(ctx, chatID); err != nil {
			log.Printf("Error starting draft: %v", err)
			return
		}
		// Замеры можно прислать сразу после команды
		if args := msg.CommandArguments(); strings.TrimSpace(args) != "" {
			b.handleMeasurements(ctx, chatID, args)
			return
		}
		b.sendMessage(chatID, msgBegin)

	case "cancel":
		if _, err := b.drafts.Cancel(ctx, chatID); err != nil {
			log.Printf("Error cancelling draft: %v", err)
		}
		b.sendMessage(chatID, msgCancelled)

	case "sketch":
		b.handleSketch(ctx, chatID)

	case "send":
		b.handleSend(ctx, chatID)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleMeasurements разбирает и сохраняет замеры. Отверстия
// рассчитываются сразу, чтобы сообщить о нехватке замеров до /sketch.
func (b *Bot) handleMeasurements(ctx context.Context, chatID int64, text string) {
	order, err := app.ParseMeasurements(text)
	if err != nil {
		b.sendMessage(chatID, userMessage(err))
		return
	}
	holes, err := order.ResolveHoles()
	if err != nil {
		b.sendMessage(chatID, userMessage(err))
		return
	}

	if _, err := b.drafts.SetMeasurements(ctx, chatID, order); err != nil {
		log.Printf("Error saving measurements: %v", err)
		return
	}
	b.sendMessage(chatID, formatAccepted(order, holes))
}

// handlePhoto скачивает фото и добавляет его к черновику
func (b *Bot) handlePhoto(ctx context.Context, chatID int64, fileID, name string) {
	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(chatID, msgPhotoError)
		return
	}

	n, err := b.drafts.AddPhoto(ctx, chatID, entity.Photo{Name: name, Data: data})
	if err != nil {
		log.Printf("Error saving photo: %v", err)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("📸 Photo %d added.", n))
}

// handleSketch строит пакет и присылает эскиз с DXF
func (b *Bot) handleSketch(ctx context.Context, chatID int64) {
	order, err := b.drafts.Take(ctx, chatID)
	if err != nil {
		b.sendMessage(chatID, userMessage(err))
		return
	}

	b.sendMessage(chatID, msgProcessing)

	pkg, err := b.measurements.Prepare(ctx, order)
	if err != nil {
		log.Printf("Error preparing package: %v", err)
		b.sendMessage(chatID, userMessage(err))
		return
	}
	if _, err := b.drafts.Complete(ctx, chatID, pkg.ID); err != nil {
		log.Printf("Error completing draft: %v", err)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: pkg.SketchName(), Bytes: pkg.Sketch})
	caption, rest := splitCaption(formatPackage(pkg), captionLimit)
	photo.Caption = caption
	b.send(photo)
	if rest != "" {
		b.sendMessage(chatID, rest)
	}

	b.send(tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: pkg.OutlineName(), Bytes: pkg.Outline}))
	b.sendMessage(chatID, "Send /send to email it to the shop.")
}

// handleSend отправляет последний пакет в цех и присылает JSON снимок
func (b *Bot) handleSend(ctx context.Context, chatID int64) {
	id, err := b.drafts.LastPackage(ctx, chatID)
	if err != nil {
		b.sendMessage(chatID, msgNoPackage)
		return
	}

	b.sendMessage(chatID, msgSending)

	if _, err := b.dispatch.Send(ctx, id); err != nil {
		log.Printf("Error sending package %s: %v", id, err)
		b.sendMessage(chatID, userMessage(err))
		return
	}

	data, name, err := b.dispatch.Snapshot(ctx, id)
	if err != nil {
		log.Printf("Error loading snapshot %s: %v", id, err)
		b.sendMessage(chatID, "✅ Email sent to the shop.")
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = "✅ Email sent to the shop."
	b.send(doc)
}

// imageOf возвращает файл фото: самое большое из Photo или документ-изображение
func imageOf(msg *tgbotapi.Message) (fileID, name string, ok bool) {
	if len(msg.Photo) > 0 {
		p := msg.Photo[len(msg.Photo)-1]
		return p.FileID, fmt.Sprintf("photo_%d.jpg", msg.MessageID), true
	}
	if d := msg.Document; d != nil && strings.HasPrefix(d.MimeType, "image/") {
		name := d.FileName
		if name == "" {
			name = fmt.Sprintf("photo_%d", msg.MessageID)
		}
		return d.FileID, name, true
	}
	return "", "", false
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// userMessage текст ошибки для пользователя
func userMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrInsufficientMeasurements):
		return fmt.Sprintf("⚠️ %v. Provide at least %d of left, right, front, back for every hole.", err, entity.MinMeasurements)
	case errors.Is(err, entity.ErrInvalidPanel), errors.Is(err, entity.ErrInvalidMeasurement):
		return "⚠️ Measurements must be plain numbers, zero or more."
	case errors.Is(err, entity.ErrNoHoles):
		return "⚠️ Add at least one hole: line."
	case errors.Is(err, entity.ErrTooManyHoles):
		return fmt.Sprintf("⚠️ At most %d holes are supported.", entity.MaxHoles)
	case errors.Is(err, app.ErrMalformedMeasurements):
		return fmt.Sprintf("⚠️ %v. See /help for the format.", err)
	case errors.Is(err, app.ErrDraftEmpty):
		return msgNoDraft
	case errors.Is(err, entity.ErrPackageNotFound):
		return msgNoPackage
	case errors.Is(err, entity.ErrMailNotConfigured):
		return msgMailOff
	}
	return fmt.Sprintf("⚠️ Something went wrong: %v", err)
}

// formatAccepted подтверждение принятых замеров
func formatAccepted(order *entity.Order, holes []entity.Hole) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ %s: %.1f x %.1f in, flange %.1f in", order.DisplayName(), order.Panel.Width, order.Panel.Length, order.Panel.FlangeLength)
	if order.Panel.Kickout {
		b.WriteString(", kickout")
	}
	b.WriteString("\n")
	for _, h := range holes {
		fmt.Fprintf(&b, "H%d: D=%.1f at (%.1f, %.1f)\n", h.Index, h.Diameter, h.X, h.Y)
		for _, w := range h.Warnings() {
			fmt.Fprintf(&b, "⚠️ %s\n", w)
		}
	}
	b.WriteString("📸 Send site photos, then /sketch.")
	return b.String()
}

// formatPackage подпись к эскизу
func formatPackage(pkg *entity.Package) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chase Cover - %s", pkg.Order.DisplayName())
	for _, h := range pkg.Holes {
		fmt.Fprintf(&b, "\nH%d: D=%.1f, C=%.1f, collar %.1f", h.Index, h.Diameter, h.Circumference(), h.CollarHeight)
	}
	if len(pkg.Warnings) > 0 {
		b.WriteString("\nWarnings:")
		for _, w := range pkg.Warnings {
			fmt.Fprintf(&b, "\n- %s", w)
		}
	}
	return b.String()
}

// splitCaption режет текст под подпись: по последнему переводу строки,
// который помещается в limit. Остаток уходит отдельным сообщением.
func splitCaption(text string, limit int) (caption, rest string) {
	units, cut := 0, len(text)
	for i, r := range text {
		units += utf16.RuneLen(r)
		if units > limit {
			cut = i
			break
		}
	}
	if cut == len(text) {
		return text, ""
	}
	if nl := strings.LastIndexByte(text[:cut], '\n'); nl > 0 {
		return text[:nl], text[nl+1:]
	}
	return text[:cut], text[cut:]
}
