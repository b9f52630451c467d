package parser

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

type excelParser struct{}

// NewExcelParser yangi Excel katalog parser yaratish
func NewExcelParser() repository.CatalogParser {
	return &excelParser{}
}

// ParseProducts Excel fayldan mahsulotlarni o'qish
func (p *excelParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return p.parseExcelFile(f, filePath)
}

// ParseProductsFromBytes byte array dan parse qilish
func (p *excelParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	return p.parseExcelFile(f, filename)
}

// parseExcelFile birinchi sheet dan katalogni o'qish
func (p *excelParser) parseExcelFile(f *excelize.File, source string) ([]entity.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file %s has no sheets", source)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file %s is empty", source)
	}

	indexes, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	return buildProducts(rows[1:], indexes, source)
}
