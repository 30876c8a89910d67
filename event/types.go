package event

import json "github.com/bytedance/sonic"

const (
	// ScoringTopic carries admitted submissions to the external scorer.
	ScoringTopic = "submission_scoring"
	// ScoreResultTopic carries the scorer's verdicts back.
	ScoreResultTopic = "submission_score_result"
)

type ScoringMessage struct {
	SubmissionID  uint64 `json:"submission_id"`
	CompetitionID uint64 `json:"competition_id"`
	ObjectKey     string `json:"object_key"`
	Phase         string `json:"phase"`
}

func (m *ScoringMessage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

type ScoreResultMessage struct {
	SubmissionID uint64  `json:"submission_id"`
	Score        float64 `json:"score"`
	Valid        bool    `json:"valid"`
}

func (m *ScoreResultMessage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *ScoreResultMessage) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
