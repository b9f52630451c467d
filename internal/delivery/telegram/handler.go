package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
	"github.com/yourusername/fashion-recommender-bot/internal/usecase"
)

const maxCatalogFileSize = 5 * 1024 * 1024

// Bitta xabarda ko'rsatiladigan kartalar soni
const (
	maxProductCards = 10
	maxHistoryCards = 20
)

// filterSession chat bo'yicha joriy filtr holati
type filterSession struct {
	Params entity.FilterParams
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	catalogUseCase usecase.CatalogUseCase
	filterUseCase  usecase.FilterUseCase
	historyUseCase usecase.HistoryUseCase
	chartUseCase   usecase.ChartUseCase
	aiRepo         repository.AIRepository // nil bo'lishi mumkin

	sessionMu sync.RWMutex
	sessions  map[int64]*filterSession
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	catalogUseCase usecase.CatalogUseCase,
	filterUseCase usecase.FilterUseCase,
	historyUseCase usecase.HistoryUseCase,
	chartUseCase usecase.ChartUseCase,
	aiRepo repository.AIRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:            bot,
		catalogUseCase: catalogUseCase,
		filterUseCase:  filterUseCase,
		historyUseCase: historyUseCase,
		chartUseCase:   chartUseCase,
		aiRepo:         aiRepo,
		sessions:       make(map[int64]*filterSession),
	}, nil
}

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	log.Printf("🛍 Bot @%s ishga tushdi!", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot to'xtatilmoqda...")
			return ctx.Err()
		case update := <-updates:
			if update.CallbackQuery != nil {
				go h.handleCallback(ctx, update.CallbackQuery)
				continue
			}

			if update.Message == nil {
				continue
			}

			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	// Fayl yuborilgan bo'lsa - katalog almashtirish
	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if message.Text != "" {
		h.sendMessage(message.Chat.ID, "Filtrlar bilan ishlash uchun /filters, yordam uchun /help.")
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.sendMessage(message.Chat.ID, h.getWelcomeMessage())
		h.sendFilterPanel(ctx, message.Chat.ID)
	case "help":
		h.sendMessage(message.Chat.ID, h.getHelpMessage())
	case "filters":
		h.sendFilterPanel(ctx, message.Chat.ID)
	case "products":
		h.sendFilteredProducts(ctx, message.Chat.ID)
	case "catalog":
		h.handleCatalogCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Noma'lum komanda. /help yordam uchun.")
	}
}

// handleCatalogCommand katalog haqida ma'lumot
func (h *BotHandler) handleCatalogCommand(ctx context.Context, message *tgbotapi.Message) {
	info, err := h.catalogUseCase.Info(ctx)
	if err != nil {
		log.Printf("Catalog info error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Katalog ma'lumotini olib bo'lmadi.")
		return
	}
	h.sendMessage(message.Chat.ID, info)
}

// handleDocumentMessage katalog faylini almashtirish
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	doc := message.Document

	if doc.FileSize > maxCatalogFileSize {
		h.sendMessage(message.Chat.ID, "❌ Fayl hajmi 5MB dan oshmasligi kerak!")
		return
	}

	name := strings.ToLower(doc.FileName)
	if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		h.sendMessage(message.Chat.ID, "❌ Faqat .csv, .xlsx yoki .xls katalog fayllari qabul qilinadi!")
		return
	}

	h.sendMessage(message.Chat.ID, "⏳ Katalog yuklanmoqda va qayta ishlanmoqda...")

	fileBytes, err := h.downloadFile(doc.FileID)
	if err != nil {
		log.Printf("File download error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Faylni yuklashda xatolik yuz berdi.")
		return
	}

	count, err := h.catalogUseCase.LoadFromBytes(ctx, fileBytes, doc.FileName)
	if err != nil {
		log.Printf("Catalog replace error: %v", err)
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Katalogni yangilashda xatolik: %v", err))
		return
	}

	// Eski kategoriya tanlovi yangi katalogda bo'lmasligi mumkin
	h.resetCategory(message.Chat.ID)

	h.sendMessage(message.Chat.ID, fmt.Sprintf("✅ Katalog yangilandi!\n\n📦 Mahsulotlar: %d ta\n📄 Fayl: %s", count, doc.FileName))
	h.sendFilterPanel(ctx, message.Chat.ID)
}

// downloadFile Telegram dan faylni yuklash
func (h *BotHandler) downloadFile(fileID string) ([]byte, error) {
	file, err := h.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}

	fileURL := file.Link(h.bot.Token)
	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// handleCallback inline tugmalarni qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	data := cq.Data
	chatID := cq.Message.Chat.ID

	// Callback ga javob (spinnerni to'xtatish)
	callback := tgbotapi.NewCallback(cq.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("Callback javobida xatolik: %v", err)
	}

	if strings.HasPrefix(data, "cat:") {
		h.setCategory(chatID, strings.TrimPrefix(data, "cat:"))
		h.sendFilterPanel(ctx, chatID)
		return
	}

	if strings.HasPrefix(data, "chart:") {
		h.sendChart(ctx, chatID, entity.ChartKind(strings.TrimPrefix(data, "chart:")))
		return
	}

	switch data {
	case "budget_down":
		h.stepBudget(chatID, -entity.BudgetStep)
		h.sendFilterPanel(ctx, chatID)
	case "budget_up":
		h.stepBudget(chatID, entity.BudgetStep)
		h.sendFilterPanel(ctx, chatID)
	case "rating_down":
		h.stepRating(chatID, -entity.RatingStep)
		h.sendFilterPanel(ctx, chatID)
	case "rating_up":
		h.stepRating(chatID, entity.RatingStep)
		h.sendFilterPanel(ctx, chatID)
	case "cat_menu":
		h.sendCategoryMenu(ctx, chatID)
	case "act_show":
		h.sendFilteredProducts(ctx, chatID)
	case "act_save":
		h.handleSaveAction(ctx, chatID)
	case "act_history":
		h.handleHistoryAction(ctx, chatID)
	case "act_chart":
		h.sendChartMenu(chatID)
	case "act_smart":
		h.handleSmartPickAction(ctx, chatID)
	default:
		log.Printf("Noma'lum callback: %s", data)
	}
}

// sendFilterPanel joriy filtr holati va natija soni bilan panelni yuborish
func (h *BotHandler) sendFilterPanel(ctx context.Context, chatID int64) {
	params := h.getParams(chatID)

	filtered, err := h.filterUseCase.Filter(ctx, params)
	if err != nil {
		log.Printf("Filter error: %v", err)
		h.sendMessage(chatID, "❌ Filtrlashda xatolik yuz berdi.")
		return
	}

	text := fmt.Sprintf(`🔍 Filtr sozlamalari

💰 Maksimal budjet: %.0f
⭐ Minimal reyting: %.1f
👕 Kategoriya: %s

🎯 Mos mahsulotlar: %d ta`,
		params.MaxPrice, params.MinRating, params.Category, len(filtered))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = filterKeyboard(params)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// filterKeyboard filtr paneli tugmalari
func filterKeyboard(params entity.FilterParams) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "budget_down"),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("💰 %.0f", params.MaxPrice), "noop"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "budget_up"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", "rating_down"),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("⭐ %.1f", params.MinRating), "noop"),
			tgbotapi.NewInlineKeyboardButtonData("➕", "rating_up"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("👕 %s", params.Category), "cat_menu"),
			tgbotapi.NewInlineKeyboardButtonData("🎯 Mahsulotlar", "act_show"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Saqlash", "act_save"),
			tgbotapi.NewInlineKeyboardButtonData("📜 Tarix", "act_history"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Diagramma", "act_chart"),
			tgbotapi.NewInlineKeyboardButtonData("🧠 SmartPick", "act_smart"),
		),
	)
}

// sendCategoryMenu kategoriya tanlash tugmalari
func (h *BotHandler) sendCategoryMenu(ctx context.Context, chatID int64) {
	categories, err := h.catalogUseCase.Categories(ctx)
	if err != nil {
		log.Printf("Categories error: %v", err)
		h.sendMessage(chatID, "❌ Kategoriyalarni olib bo'lmadi.")
		return
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 All", "cat:"+entity.CategoryAll),
		),
	}
	for _, c := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c, "cat:"+c),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "👕 Kategoriyani tanlang:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// sendFilteredProducts filtrlangan mahsulot kartalarini yuborish
func (h *BotHandler) sendFilteredProducts(ctx context.Context, chatID int64) {
	params := h.getParams(chatID)

	filtered, err := h.filterUseCase.Filter(ctx, params)
	if err != nil {
		log.Printf("Filter error: %v", err)
		h.sendMessage(chatID, "❌ Filtrlashda xatolik yuz berdi.")
		return
	}

	if len(filtered) == 0 {
		h.sendMessage(chatID, "⚠️ Filtrga mos mahsulot topilmadi. Shartlarni yumshatib ko'ring.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 %d ta mahsulot topildi:\n\n", len(filtered)))
	for i, p := range filtered {
		if i >= maxProductCards {
			sb.WriteString(fmt.Sprintf("... va yana %d ta mahsulot\n", len(filtered)-i))
			break
		}
		sb.WriteString(formatProductCard(p))
		sb.WriteString("\n")
	}

	h.sendMessage(chatID, sb.String())
}

// handleSaveAction joriy natijani tarixga saqlash
func (h *BotHandler) handleSaveAction(ctx context.Context, chatID int64) {
	params := h.getParams(chatID)

	filtered, err := h.filterUseCase.Filter(ctx, params)
	if err != nil {
		log.Printf("Filter error: %v", err)
		h.sendMessage(chatID, "❌ Filtrlashda xatolik yuz berdi.")
		return
	}

	savedAt, err := h.historyUseCase.Save(ctx, filtered)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyFilteredSet) {
			h.sendMessage(chatID, "⚠️ Saqlash uchun mahsulot yo'q.")
			return
		}
		log.Printf("History save error: %v", err)
		h.sendMessage(chatID, fmt.Sprintf("❌ Tarixni saqlashda xatolik: %v", err))
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ %d ta mahsulot tarixga saqlandi!\n🕒 %s", len(filtered), savedAt))
}

// handleHistoryAction saqlangan tarixni ko'rsatish
func (h *BotHandler) handleHistoryAction(ctx context.Context, chatID int64) {
	entries, err := h.historyUseCase.View(ctx)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrHistoryNotFound):
			h.sendMessage(chatID, "⚠️ Tarix fayli topilmadi. Avval mahsulot saqlang.")
		case errors.Is(err, usecase.ErrHistoryEmpty):
			h.sendMessage(chatID, "📭 Tarix bo'sh — avval mahsulot saqlang.")
		default:
			log.Printf("History view error: %v", err)
			h.sendMessage(chatID, fmt.Sprintf("❌ Tarixni yuklashda xatolik: %v", err))
		}
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📜 Saqlangan tarix (%d ta yozuv):\n\n", len(entries)))
	start := 0
	if len(entries) > maxHistoryCards {
		start = len(entries) - maxHistoryCards
		sb.WriteString(fmt.Sprintf("... oldingi %d ta yozuv ko'rsatilmadi\n\n", start))
	}
	for _, e := range entries[start:] {
		sb.WriteString(formatProductCard(e.Product))
		sb.WriteString(fmt.Sprintf("🕒 Saqlangan: %s\n\n", e.SavedAt))
	}

	h.sendMessage(chatID, sb.String())
}

// sendChartMenu diagramma turini tanlash tugmalari
func (h *BotHandler) sendChartMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "📊 Diagramma turini tanlang:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Bar", "chart:"+string(entity.ChartBar)),
			tgbotapi.NewInlineKeyboardButtonData("🥧 Pie", "chart:"+string(entity.ChartPie)),
			tgbotapi.NewInlineKeyboardButtonData("📈 Line", "chart:"+string(entity.ChartLine)),
		),
	)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// sendChart tanlangan diagrammani workbook sifatida yuborish
func (h *BotHandler) sendChart(ctx context.Context, chatID int64, kind entity.ChartKind) {
	params := h.getParams(chatID)

	filtered, err := h.filterUseCase.Filter(ctx, params)
	if err != nil {
		log.Printf("Filter error: %v", err)
		h.sendMessage(chatID, "❌ Filtrlashda xatolik yuz berdi.")
		return
	}

	data, name, err := h.chartUseCase.Render(ctx, kind, filtered)
	if err != nil {
		if errors.Is(err, usecase.ErrNoEligibleProduct) {
			h.sendMessage(chatID, "⚠️ Diagramma uchun mahsulot yo'q.")
			return
		}
		log.Printf("Chart render error: %v", err)
		h.sendMessage(chatID, "❌ Diagramma yaratishda xatolik yuz berdi.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = fmt.Sprintf("📊 %s diagramma (%d ta mahsulot)", kind, len(filtered))
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("Diagramma yuborishda xatolik: %v", err)
		h.sendMessage(chatID, "❌ Diagrammani yuborib bo'lmadi.")
	}
}

// handleSmartPickAction eng yaxshi mahsulotni tanlab ko'rsatish
func (h *BotHandler) handleSmartPickAction(ctx context.Context, chatID int64) {
	params := h.getParams(chatID)

	filtered, err := h.filterUseCase.Filter(ctx, params)
	if err != nil {
		log.Printf("Filter error: %v", err)
		h.sendMessage(chatID, "❌ Filtrlashda xatolik yuz berdi.")
		return
	}

	best, score, err := usecase.BestOf(filtered, params.Category)
	if err != nil {
		h.sendMessage(chatID, "⚠️ Tanlash uchun mos mahsulot yo'q.")
		return
	}

	summary, err := usecase.Summarize(filtered)
	if err != nil {
		h.sendMessage(chatID, "⚠️ Tanlash uchun mos mahsulot yo'q.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🧠 Smart Pick\n\n")
	sb.WriteString(formatProductCard(best))
	sb.WriteString(fmt.Sprintf("🧠 SmartScore: %.2f\n", score))
	sb.WriteString("\n🔍 Qisqa xulosa:\n")
	sb.WriteString(fmt.Sprintf("🔹 Eng ko'p uchragan brend: %s\n", summary.TopBrand))
	sb.WriteString(fmt.Sprintf("🔹 Eng yuqori reyting: %s (⭐ %.1f)\n", summary.HighestRated.Name, summary.HighestRated.Rating))
	sb.WriteString(fmt.Sprintf("🔹 O'rtacha narx: %d\n", summary.MeanPrice))

	// Gemini mavjud bo'lsa stilist izohini qo'shamiz; xatosi kartani buzmaydi
	if h.aiRepo != nil {
		if blurb, err := h.aiRepo.ExplainPick(ctx, best, filtered, params.Category); err == nil && blurb != "" {
			sb.WriteString("\n💬 Stilist izohi:\n")
			sb.WriteString(strings.TrimSpace(blurb))
			sb.WriteString("\n")
		} else if err != nil {
			log.Printf("Stilist izohi olinmadi: %v", err)
		}
	}

	h.sendMessage(chatID, sb.String())
}

// formatProductCard bitta mahsulot kartasi
func formatProductCard(p entity.Product) string {
	return fmt.Sprintf("🛍 %s\n🏷 %s\n📦 %s\n💸 %.0f\n⭐ %.1f\n", p.Name, p.Brand, p.Category, p.Price, p.Rating)
}

// getParams chat uchun joriy filtr parametrlarini olish
func (h *BotHandler) getParams(chatID int64) entity.FilterParams {
	h.sessionMu.RLock()
	session, ok := h.sessions[chatID]
	h.sessionMu.RUnlock()
	if ok {
		return session.Params
	}

	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()
	if session, ok := h.sessions[chatID]; ok {
		return session.Params
	}
	params := entity.DefaultFilterParams()
	h.sessions[chatID] = &filterSession{Params: params}
	return params
}

// stepBudget budjetni chegaralar ichida o'zgartirish
func (h *BotHandler) stepBudget(chatID int64, delta float64) {
	h.updateParams(chatID, func(p *entity.FilterParams) {
		p.MaxPrice = clamp(p.MaxPrice+delta, entity.MinBudget, entity.MaxBudget)
	})
}

// stepRating reytingni chegaralar ichida o'zgartirish
func (h *BotHandler) stepRating(chatID int64, delta float64) {
	h.updateParams(chatID, func(p *entity.FilterParams) {
		// Float qadamlar yig'ilib ketmasligi uchun 1 xonagacha yaxlitlaymiz
		v := math.Round((p.MinRating+delta)*10) / 10
		p.MinRating = clamp(v, entity.MinRatingLow, entity.MinRatingHigh)
	})
}

// setCategory kategoriya tanlovini o'rnatish
func (h *BotHandler) setCategory(chatID int64, category string) {
	h.updateParams(chatID, func(p *entity.FilterParams) {
		p.Category = category
	})
}

// resetCategory kategoriya tanlovini boshlang'ichga qaytarish
func (h *BotHandler) resetCategory(chatID int64) {
	h.setCategory(chatID, entity.CategoryAll)
}

func (h *BotHandler) updateParams(chatID int64, fn func(*entity.FilterParams)) {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()

	session, ok := h.sessions[chatID]
	if !ok {
		params := entity.DefaultFilterParams()
		session = &filterSession{Params: params}
		h.sessions[chatID] = session
	}
	fn(&session.Params)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

func (h *BotHandler) getWelcomeMessage() string {
	return `🛍 Fashion Recommender botiga xush kelibsiz!

Katalogdan o'zingizga mos kiyim toping:
💰 Budjet va ⭐ reyting bo'yicha filtrlang
✅ Yoqqan natijalarni tarixga saqlang
📊 Diagrammalar bilan tahlil qiling
🧠 SmartPick - eng yaxshi tanlovni oling

/filters - filtr panelini ochish
/help - yordam`
}

func (h *BotHandler) getHelpMessage() string {
	return `📖 Yordam

/filters - filtr paneli (budjet, reyting, kategoriya)
/products - filtrlangan mahsulotlar ro'yxati
/catalog - katalog haqida ma'lumot

Panel tugmalari:
✅ Saqlash - joriy natijani tarixga yozish
📜 Tarix - saqlangan mahsulotlarni ko'rish
📊 Diagramma - Bar / Pie / Line tahlil (.xlsx)
🧠 SmartPick - eng yaxshi mahsulot tavsiyasi

Katalogni almashtirish uchun .csv yoki .xlsx fayl yuboring
(ustunlar: Product_Name, Brand, Category, Price, Rating).`
}
