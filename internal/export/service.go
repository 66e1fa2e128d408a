package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/hansaki/quizforge/internal/entity"
	"github.com/hansaki/quizforge/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	questions  repository.QuestionRepository
	categories repository.CategoryRepository
	links      repository.ImageLinkRepository
	logger     *slog.Logger
}

func NewService(questions repository.QuestionRepository, categories repository.CategoryRepository, links repository.ImageLinkRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{questions: questions, categories: categories, links: links, logger: logger}
}

// ExportQuestionsXLSX returns an XLSX workbook (as bytes) of questions.
// With sourceLabel set, only questions from that import source are included;
// empty exports everything.
func (s *Service) ExportQuestionsXLSX(ctx context.Context, sourceLabel string) ([]byte, error) {
	start := time.Now()

	var (
		recs []*entity.Question
		err  error
	)
	if sourceLabel != "" {
		recs, err = s.questions.ListBySource(ctx, sourceLabel)
	} else {
		recs, err = s.questions.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	categoryNames, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Question",
		"Choices",
		"Correct Answer",
		"Explanation",
		"Difficulty",
		"Category",
		"Source",
		"Images",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, q := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		correct := ""
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Choices) {
			correct = q.Choices[q.CorrectIndex]
		}

		category := ""
		if q.CategoryID != nil {
			category = categoryNames[*q.CategoryID]
		}

		locators := ""
		if links, err := s.links.ListByQuestion(ctx, q.ID); err == nil {
			parts := make([]string, len(links))
			for i, l := range links {
				parts[i] = l.Locator
			}
			locators = strings.Join(parts, "\n")
		}

		write(1, q.Content)
		write(2, strings.Join(q.Choices, "\n"))
		write(3, correct)
		write(4, truncate(q.Explanation, 500))
		write(5, q.Difficulty)
		write(6, category)
		write(7, q.SourceLabel)
		write(8, locators)
		write(9, q.CreatedAt.Format("2006-01-02"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 60) // question
	_ = f.SetColWidth(sheet, "B", "B", 40) // choices
	_ = f.SetColWidth(sheet, "C", "C", 28) // correct
	_ = f.SetColWidth(sheet, "D", "D", 48) // explanation
	_ = f.SetColWidth(sheet, "E", "E", 10) // difficulty
	_ = f.SetColWidth(sheet, "F", "G", 22) // category/source
	_ = f.SetColWidth(sheet, "H", "H", 40) // images

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"source_label", sourceLabel,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) categoryNames(ctx context.Context) (map[int]string, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	names := make(map[int]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

// truncate caps s at n bytes, cutting on a rune boundary so multibyte text
// never ends in a broken sequence.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	cut := n - 1
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
