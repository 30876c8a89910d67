package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"github.com/xuri/excelize/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter"
)

type XLSXLeaderboardExporter struct {
	log loggerv2.Logger
}

var _ exporter.LeaderboardExporter = (*XLSXLeaderboardExporter)(nil)

func NewXLSXLeaderboardExporter(log loggerv2.Logger) *XLSXLeaderboardExporter {
	return &XLSXLeaderboardExporter{log: log}
}

func (e *XLSXLeaderboardExporter) Export(ctx context.Context, leaderboard *model.GetLeaderboardResponse, writer io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.log.ErrorContext(ctx, "close excel file failed", logger.Error(err))
		}
	}()

	sheetName := "Leaderboard"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet failed: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []any{"rank", "participant_id", "score", "submissions", "best_submitted_at"}
	if err = e.writeRow(f, sheetName, 1, headers); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}

	for i, entry := range leaderboard.Entries {
		row := []any{
			entry.Rank,
			entry.ParticipantID,
			entry.DisplayScore,
			entry.SubmissionCount,
			entry.BestSubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if err = e.writeRow(f, sheetName, i+2, row); err != nil {
			return fmt.Errorf("write row failed: %w", err)
		}
	}

	if err = f.Write(writer); err != nil {
		return fmt.Errorf("write excel file failed: %w", err)
	}
	return nil
}

func (e *XLSXLeaderboardExporter) writeRow(f *excelize.File, sheetName string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("get cell name failed: %w", err)
		}
		if err = f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set cell value failed: %w", err)
		}
	}
	return nil
}
