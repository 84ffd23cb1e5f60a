package source

import (
	"context"
	"encoding/json"
	"fmt"

	"quiz-engine/internal/domain"
)

// QuestionSource decodes the quiz question set from a fetched JSON array.
type QuestionSource struct {
	fetcher Fetcher
}

func NewQuestionSource(f Fetcher) *QuestionSource {
	return &QuestionSource{fetcher: f}
}

func (s *QuestionSource) FetchQuestions(ctx context.Context) ([]domain.Question, error) {
	body, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	var questions []domain.Question
	if err := json.Unmarshal(body, &questions); err != nil {
		return nil, fmt.Errorf("decode questions from %s: %w", s.fetcher.Location(), err)
	}
	return questions, nil
}

// OrganizationSource decodes the organisation document from fetched JSON.
type OrganizationSource struct {
	fetcher Fetcher
}

func NewOrganizationSource(f Fetcher) *OrganizationSource {
	return &OrganizationSource{fetcher: f}
}

func (s *OrganizationSource) FetchOrganization(ctx context.Context) (*domain.Organization, error) {
	body, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	var org domain.Organization
	if err := json.Unmarshal(body, &org); err != nil {
		return nil, fmt.Errorf("decode organization from %s: %w", s.fetcher.Location(), err)
	}
	return &org, nil
}

var (
	_ domain.QuestionSource     = (*QuestionSource)(nil)
	_ domain.OrganizationSource = (*OrganizationSource)(nil)
)
