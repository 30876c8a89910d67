package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/pointer"
)

func validThreePhaseParam() *model.CreateCompetitionParam {
	return &model.CreateCompetitionParam{
		Title:             "spam detection",
		CompetitionType:   model.CompetitionTypeThreePhase,
		ScoringMetric:     model.MetricF1,
		RegistrationStart: regStart,
		RegistrationEnd:   regEnd,
		PublicTestStart:   pubStart,
		PublicTestEnd:     pubEnd,
	}
}

func validFourPhaseParam() *model.CreateCompetitionParam {
	p := validThreePhaseParam()
	p.CompetitionType = model.CompetitionTypeFourPhase
	p.PrivateTestStart = pointer.ToPtr(privStart)
	p.PrivateTestEnd = pointer.ToPtr(privEnd)
	return p
}

func TestValidateSchedule(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(p *model.CreateCompetitionParam)
		param   *model.CreateCompetitionParam
		wantErr bool
	}{
		{
			name:  "valid three phase",
			param: validThreePhaseParam(),
		},
		{
			name:  "valid four phase",
			param: validFourPhaseParam(),
		},
		{
			name:  "registration start equals registration end",
			param: validThreePhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.RegistrationStart = p.RegistrationEnd
			},
			wantErr: true,
		},
		{
			name:  "public test starts before registration ends",
			param: validThreePhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.PublicTestStart = p.RegistrationEnd.Add(-time.Hour)
			},
			wantErr: true,
		},
		{
			name:  "public test window inverted",
			param: validThreePhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.PublicTestEnd = p.PublicTestStart
			},
			wantErr: true,
		},
		{
			name:  "three phase with a private window",
			param: validThreePhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.PrivateTestStart = pointer.ToPtr(privStart)
				p.PrivateTestEnd = pointer.ToPtr(privEnd)
			},
			wantErr: true,
		},
		{
			name:  "four phase missing the private window",
			param: validFourPhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.PrivateTestEnd = nil
			},
			wantErr: true,
		},
		{
			name:  "private test starts before public test ends",
			param: validFourPhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.PrivateTestStart = pointer.ToPtr(p.PublicTestEnd.Add(-time.Hour))
			},
			wantErr: true,
		},
		{
			name:  "private test window inverted",
			param: validFourPhaseParam(),
			mutate: func(p *model.CreateCompetitionParam) {
				p.PrivateTestStart = p.PrivateTestEnd
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.mutate != nil {
				tc.mutate(tc.param)
			}
			err := validateSchedule(tc.param)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			de, ok := errs.AsDomain(err)
			require.True(t, ok)
			assert.Equal(t, errs.CodeMalformedInput, de.Code)
		})
	}
}
