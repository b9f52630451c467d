package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	sem    chan struct{}
	mu     sync.Mutex
	last   time.Time
	delay  time.Duration
}

// NewGeminiClient yangi Gemini stilist client yaratish
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash-exp")

	// Model konfiguratsiyasi - qisqa va aniq izohlar uchun
	model.SetTemperature(0.4)
	model.SetTopK(20)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(256)

	// System instruction - moda maslahatchisi sifatida
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`Sen moda bo'yicha maslahatchisan. Senga tanlangan mahsulot va
filtrlangan ro'yxat beriladi. Nega aynan shu mahsulot yaxshi tanlov ekanini
2-3 jumlada tushuntir: narx, reyting va kategoriya mosligiga tayanib.

QOIDALAR:
- FAQAT berilgan ma'lumotlarga tayang, yangi mahsulot o'ylab topma
- Narx va reytingni AYNAN berilganidek yoz
- Javob qisqa bo'lsin, reklama ohangisiz`),
		},
	}

	return &geminiClient{
		client: client,
		model:  model,
		sem:    make(chan struct{}, 3), // bir vaqtda 3 ta so'rovdan oshirma
		delay:  350 * time.Millisecond, // minimal interval
	}, nil
}

// ExplainPick tanlangan mahsulot haqida qisqa izoh yaratish
func (g *geminiClient) ExplainPick(ctx context.Context, best entity.Product, set []entity.Product, category string) (string, error) {
	release := g.acquire()
	defer release()

	var sb strings.Builder
	sb.WriteString("TANLANGAN MAHSULOT:\n")
	sb.WriteString(fmt.Sprintf("%s | %s | %s | narx %.0f | reyting %.1f\n\n", best.Name, best.Brand, best.Category, best.Price, best.Rating))
	sb.WriteString(fmt.Sprintf("TANLANGAN KATEGORIYA: %s\n\n", category))
	sb.WriteString("FILTRLANGAN RO'YXAT:\n")
	for i, p := range set {
		if i >= 30 { // prompt ni cheklash
			sb.WriteString(fmt.Sprintf("... va yana %d ta\n", len(set)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("- %s | %s | %s | %.0f | %.1f\n", p.Name, p.Brand, p.Category, p.Price, p.Rating))
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(sb.String()))
	if err != nil {
		return "", fmt.Errorf("failed to generate explanation: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	return extractText(resp), nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

func (g *geminiClient) acquire() func() {
	g.sem <- struct{}{}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	} else {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
		g.last = now
	}

	return func() {
		<-g.sem
	}
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}
