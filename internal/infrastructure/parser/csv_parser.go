package parser

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

type csvParser struct{}

// NewCSVParser yangi CSV katalog parser yaratish
func NewCSVParser() repository.CatalogParser {
	return &csvParser{}
}

// ParseProducts CSV fayldan mahsulotlarni o'qish
func (p *csvParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return p.parse(f, filePath)
}

// ParseProductsFromBytes byte array dan parse qilish
func (p *csvParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error) {
	return p.parse(bytes.NewReader(data), filename)
}

func (p *csvParser) parse(r io.Reader, source string) ([]entity.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // qator uzunliklari har xil bo'lishi mumkin

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", source, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog file %s is empty", source)
	}

	indexes, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	return buildProducts(records[1:], indexes, source)
}
