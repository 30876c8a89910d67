package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

func TestDownloadableArtifact(t *testing.T) {
	withFile := &model.Submission{ID: 1, ObjectKey: "1/100/abc.csv"}
	assert.NoError(t, downloadableArtifact(withFile))

	cleaned := &model.Submission{ID: 2}
	de, ok := errs.AsDomain(downloadableArtifact(cleaned))
	require.True(t, ok)
	assert.Equal(t, errs.CodeMalformedInput, de.Code)
}

func TestValidatePredictionFile(t *testing.T) {
	valid := []byte("id,label\n1,0\n2,1\n")

	testCases := []struct {
		name     string
		fileName string
		fileSize int64
		content  []byte
		maxMB    int
		wantMsg  string
	}{
		{
			name:     "valid file",
			fileName: "predictions.csv",
			fileSize: int64(len(valid)),
			content:  valid,
			maxMB:    1,
		},
		{
			name:     "extension check is case insensitive",
			fileName: "PREDICTIONS.CSV",
			fileSize: int64(len(valid)),
			content:  valid,
			maxMB:    1,
		},
		{
			name:     "wrong extension",
			fileName: "predictions.json",
			fileSize: int64(len(valid)),
			content:  valid,
			maxMB:    1,
			wantMsg:  "must be a .csv",
		},
		{
			name:     "declared size over the limit",
			fileName: "predictions.csv",
			fileSize: 2 * 1024 * 1024,
			content:  valid,
			maxMB:    1,
			wantMsg:  "exceeds the 1MB limit",
		},
		{
			name:     "actual content over the limit",
			fileName: "predictions.csv",
			fileSize: 10,
			content:  bytes.Repeat([]byte("a"), 1024*1024+1),
			maxMB:    1,
			wantMsg:  "exceeds the 1MB limit",
		},
		{
			name:     "empty file",
			fileName: "predictions.csv",
			fileSize: 0,
			content:  nil,
			maxMB:    1,
			wantMsg:  "no readable header row",
		},
		{
			name:     "header only",
			fileName: "predictions.csv",
			fileSize: 9,
			content:  []byte("id,label\n"),
			maxMB:    1,
			wantMsg:  "no data rows",
		},
		{
			name:     "ragged rows are not valid csv",
			fileName: "predictions.csv",
			fileSize: 16,
			content:  []byte("id,label\n1,0,9\n"),
			maxMB:    1,
			wantMsg:  "not valid csv",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePredictionFile(tc.fileName, tc.fileSize, tc.content, tc.maxMB)
			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			de, ok := errs.AsDomain(err)
			require.True(t, ok)
			assert.Equal(t, errs.CodeMalformedInput, de.Code)
			assert.True(t, strings.Contains(de.Message, tc.wantMsg),
				"message %q should contain %q", de.Message, tc.wantMsg)
		})
	}
}
