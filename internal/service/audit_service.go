package service

import (
	"context"
	"errors"

	"gifttax/internal/repository"
)

var ErrAuditDisabled = errors.New("audit trail is not configured")

type AuditLogResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Action        string  `json:"action"`
	EntityID      string  `json:"entity_id"`
	LawVersion    string  `json:"law_version"`
	LawConfigured bool    `json:"law_configured"`
	TaxableBase   *string `json:"taxable_base"`
	TaxDue        *string `json:"tax_due"`
	Details       string  `json:"details"`
	CreatedAt     string  `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService; a nil repository means the
// audit trail is disabled.
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) GetAuditLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error) {
	if s.auditRepo == nil {
		return nil, 0, ErrAuditDisabled
	}

	logs, total, err := s.auditRepo.List(ctx, action, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, AuditLogResponse{
			ID:            l.ID.String(),
			UserID:        l.UserID,
			Action:        l.Action,
			EntityID:      l.EntityID,
			LawVersion:    l.LawVersion,
			LawConfigured: l.LawConfigured,
			TaxableBase:   optionalString(l.TaxableBase),
			TaxDue:        optionalString(l.TaxDue),
			Details:       l.Details,
			CreatedAt:     l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
