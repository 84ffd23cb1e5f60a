package domain

import "context"

// QuestionSource fetches the raw quiz question set.
type QuestionSource interface {
	FetchQuestions(ctx context.Context) ([]Question, error)
}

// OrganizationSource fetches the organisation data document.
type OrganizationSource interface {
	FetchOrganization(ctx context.Context) (*Organization, error)
}
