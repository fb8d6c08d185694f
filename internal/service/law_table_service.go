package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gifttax/internal/logger"
	"gifttax/internal/model"
	"gifttax/internal/repository"
	"gifttax/internal/websocket"
)

type LawTableResponse struct {
	Source          string             `json:"source"`
	Configured      bool               `json:"configured"`
	Usable          bool               `json:"usable"`
	Problem         string             `json:"problem,omitempty"`
	Law             *model.LawMetadata `json:"law,omitempty"`
	DeductionGroups int                `json:"deduction_groups"`
	Brackets        int                `json:"brackets"`
	LoadedAt        string             `json:"loaded_at"`
}

// LawReloader is a LawSource that can rebuild its table
type LawReloader interface {
	LawSource
	Reload() model.LawContext
}

type LawTableService interface {
	Current() LawTableResponse
	Reload(ctx context.Context, userID string) LawTableResponse
}

type lawTableService struct {
	laws      LawReloader
	auditRepo repository.AuditRepository
	events    EventPublisher
	log       *slog.Logger
}

func NewLawTableService(laws LawReloader, auditRepo repository.AuditRepository, events EventPublisher, log *slog.Logger) LawTableService {
	return &lawTableService{laws: laws, auditRepo: auditRepo, events: events, log: log}
}

func (s *lawTableService) Current() LawTableResponse {
	return toLawTableResponse(s.laws.Current())
}

// Reload swaps in a freshly loaded table. A broken file still installs an
// unconfigured context, which is what the computation will then report.
func (s *lawTableService) Reload(ctx context.Context, userID string) LawTableResponse {
	before := s.laws.Current()
	after := s.laws.Reload()
	res := toLawTableResponse(after)
	log := logger.FromContextOr(ctx, s.log)

	LogLawContext(log, "law table reloaded", after)

	if s.auditRepo != nil {
		details, _ := json.Marshal(map[string]any{
			"previous_version": versionOf(before),
			"table":            res,
		})
		entry := model.AuditLog{
			UserID:        userID,
			Action:        model.ActionReloadLawTable,
			EntityID:      versionOf(after),
			LawVersion:    versionOf(after),
			LawConfigured: after.Configured,
			Details:       string(details),
		}
		if err := s.auditRepo.Log(ctx, &entry); err != nil {
			log.Warn("failed to write law table audit log", "error", err)
		}
	}

	if s.events != nil {
		s.events.Publish(websocket.EventLawTableReloaded, res)
	}
	return res
}

// LogLawContext reports the state of a law table at info, or warn when it
// cannot be used for computation.
func LogLawContext(log *slog.Logger, msg string, lc model.LawContext) {
	attrs := []any{
		"source", lc.Source,
		"configured", lc.Configured,
		"version", versionOf(lc),
	}
	if lc.Problem != "" {
		attrs = append(attrs, "problem", lc.Problem)
	}
	if lc.Usable() {
		log.Info(msg, attrs...)
		return
	}
	log.Warn(msg+"; gift tax will not be computed", attrs...)
}

func versionOf(lc model.LawContext) string {
	if m := lc.Metadata(); m != nil {
		return m.Version
	}
	return ""
}

func toLawTableResponse(lc model.LawContext) LawTableResponse {
	res := LawTableResponse{
		Source:     lc.Source,
		Configured: lc.Configured,
		Usable:     lc.Usable(),
		Problem:    lc.Problem,
		Law:        lc.Metadata(),
	}
	if lc.Table != nil {
		res.DeductionGroups = len(lc.Table.BasicDeduction)
		res.Brackets = len(lc.Table.ProgressiveRates)
	}
	if !lc.LoadedAt.IsZero() {
		res.LoadedAt = lc.LoadedAt.Format(time.RFC3339)
	}
	return res
}
