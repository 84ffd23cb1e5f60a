package service

import (
	"context"
	"time"

	"quiz-engine/internal/domain"
	"quiz-engine/internal/dto"
	"quiz-engine/internal/logger"

	"go.uber.org/zap"
)

// OrganizationService serves the site data document
type OrganizationService interface {
	GetOrganization(ctx context.Context) (*dto.OrganizationResponse, error)
}

type organizationService struct {
	source  domain.OrganizationSource
	timeout time.Duration
}

// NewOrganizationService creates a new instance of organizationService
func NewOrganizationService(source domain.OrganizationSource, timeout time.Duration) OrganizationService {
	return &organizationService{source: source, timeout: timeout}
}

// GetOrganization implements OrganizationService
func (s *organizationService) GetOrganization(ctx context.Context) (*dto.OrganizationResponse, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	org, err := s.source.FetchOrganization(ctx)
	if err != nil {
		logger.Get().Error("Failed to load organization data", zap.Error(err))
		return nil, domain.NewLoadError("organization data", err)
	}

	resp := &dto.OrganizationResponse{
		Company: dto.CompanyResponse{
			Name:        org.Company.Name,
			Description: org.Company.Description,
			Vision:      org.Company.Vision,
		},
		Members: make([]dto.MemberResponse, 0, len(org.Members)),
		Events:  make([]dto.EventResponse, 0, len(org.Events)),
		Gallery: org.Gallery,
	}
	if resp.Gallery == nil {
		resp.Gallery = []string{}
	}
	for _, m := range org.Members {
		resp.Members = append(resp.Members, dto.MemberResponse{Name: m.Name, Role: m.Role, Image: m.Image})
	}
	for i, e := range org.Events {
		formatted, err := FormatHungarianDate(e.Date)
		if err != nil {
			logger.Get().Warn("Unparseable event date, showing it verbatim",
				zap.String("event", e.Name),
				zap.String("date", e.Date),
			)
			formatted = e.Date
		}
		resp.Events = append(resp.Events, dto.EventResponse{
			Index:         i,
			Name:          e.Name,
			Date:          e.Date,
			FormattedDate: formatted,
			Location:      e.Location,
			Description:   e.Description,
			Images:        e.Images,
		})
	}
	return resp, nil
}
