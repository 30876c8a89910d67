package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/to404hanga/pkg404/gotools/transform"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter"
)

type CSVLeaderboardExporter struct {
	log loggerv2.Logger
}

var _ exporter.LeaderboardExporter = (*CSVLeaderboardExporter)(nil)

func NewCSVLeaderboardExporter(log loggerv2.Logger) *CSVLeaderboardExporter {
	return &CSVLeaderboardExporter{log: log}
}

func (e *CSVLeaderboardExporter) Export(_ context.Context, leaderboard *model.GetLeaderboardResponse, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	err := csvWriter.Write([]string{"rank", "participant_id", "score", "submissions", "best_submitted_at"})
	if err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}

	records := transform.SliceFromSlice(leaderboard.Entries, func(_ int, entry model.LeaderboardEntry) []string {
		return []string{
			strconv.Itoa(entry.Rank),
			strconv.FormatUint(entry.ParticipantID, 10),
			strconv.FormatFloat(entry.DisplayScore, 'f', 6, 64),
			strconv.Itoa(entry.SubmissionCount),
			entry.BestSubmittedAt.Format("2006-01-02 15:04:05"),
		}
	})
	return csvWriter.WriteAll(records)
}
