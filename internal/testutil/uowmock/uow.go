package uowmock

import (
	"context"

	"activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"
)

// UoW runs callbacks against a fixed Repos set without any real
// transaction. Rollback-on-error semantics are not simulated; tests
// that need them use the sqlite-backed GormUoW instead.
type UoW struct {
	Repos uow.Repos
}

func (m *UoW) WithinTx(_ context.Context, fn func(r uow.Repos) error) error {
	return fn(m.Repos)
}

func (m *UoW) WithinReportTx(ctx context.Context, reportID uint64, fn func(r uow.Repos, rep *report.Report) error) error {
	rep, err := m.Repos.Reports.GetByIDForUpdate(ctx, reportID)
	if err != nil {
		return err
	}
	return fn(m.Repos, rep)
}
