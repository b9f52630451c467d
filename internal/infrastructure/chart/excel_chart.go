package chart

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/entity"
	"github.com/yourusername/fashion-recommender-bot/internal/domain/repository"
)

const dataSheet = "Data"

type excelChartRenderer struct{}

// NewExcelChartRenderer excelize asosidagi diagramma renderer yaratish.
// Har chaqiruv yangi workbook yaratadi, holat saqlanmaydi.
func NewExcelChartRenderer() repository.ChartRenderer {
	return &excelChartRenderer{}
}

// RenderBar brend bo'yicha o'rtacha reyting (kamayish tartibida, top 10)
func (r *excelChartRenderer) RenderBar(ctx context.Context, data []entity.BrandRating) ([]byte, string, error) {
	f, err := newDataSheet([]string{"Brand", "Mean Rating"})
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	for i, d := range data {
		row := i + 2
		f.SetCellValue(dataSheet, fmt.Sprintf("A%d", row), d.Brand)
		f.SetCellValue(dataSheet, fmt.Sprintf("B%d", row), d.MeanRating)
	}

	if err := addChart(f, excelize.Col, "Top Brands by Mean Rating", len(data)); err != nil {
		return nil, "", err
	}
	return workbookBytes(f, "brand_ratings.xlsx")
}

// RenderPie kategoriya ulushlari (foizlarda)
func (r *excelChartRenderer) RenderPie(ctx context.Context, data []entity.CategoryShare) ([]byte, string, error) {
	f, err := newDataSheet([]string{"Category", "Count", "Percent"})
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	for i, d := range data {
		row := i + 2
		f.SetCellValue(dataSheet, fmt.Sprintf("A%d", row), d.Category)
		f.SetCellValue(dataSheet, fmt.Sprintf("B%d", row), d.Count)
		f.SetCellValue(dataSheet, fmt.Sprintf("C%d", row), d.Percent)
	}

	if err := addChart(f, excelize.Pie, "Products by Category", len(data)); err != nil {
		return nil, "", err
	}
	return workbookBytes(f, "category_share.xlsx")
}

// RenderLine narx bo'yicha o'sish tartibida reyting trendi
func (r *excelChartRenderer) RenderLine(ctx context.Context, data []entity.PricePoint) ([]byte, string, error) {
	f, err := newDataSheet([]string{"Price", "Rating"})
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	for i, d := range data {
		row := i + 2
		f.SetCellValue(dataSheet, fmt.Sprintf("A%d", row), d.Price)
		f.SetCellValue(dataSheet, fmt.Sprintf("B%d", row), d.Rating)
	}

	if err := addChart(f, excelize.Line, "Price vs Rating Trend", len(data)); err != nil {
		return nil, "", err
	}
	return workbookBytes(f, "price_rating_trend.xlsx")
}

// newDataSheet header qatori bilan yangi workbook yaratish
func newDataSheet(header []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(dataSheet, cell, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	return f, nil
}

// addChart A ustuni kategoriya, B ustuni qiymat sifatida diagramma qo'shish
func addChart(f *excelize.File, kind excelize.ChartType, title string, rows int) error {
	if rows == 0 {
		return fmt.Errorf("no data rows for chart")
	}

	series := excelize.ChartSeries{
		Name:       fmt.Sprintf("%s!$B$1", dataSheet),
		Categories: fmt.Sprintf("%s!$A$2:$A$%d", dataSheet, rows+1),
		Values:     fmt.Sprintf("%s!$B$2:$B$%d", dataSheet, rows+1),
	}

	err := f.AddChart(dataSheet, "E2", &excelize.Chart{
		Type:   kind,
		Series: []excelize.ChartSeries{series},
		Title:  []excelize.RichTextRun{{Text: title}},
	})
	if err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}
	return nil
}

// workbookBytes workbook ni byte array ga aylantirish
func workbookBytes(f *excelize.File, name string) ([]byte, string, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), name, nil
}
