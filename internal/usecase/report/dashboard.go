package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"activity-report-service/internal/domain/policy"
	reportDomain "activity-report-service/internal/domain/report"
	"activity-report-service/internal/domain/uow"
	userDomain "activity-report-service/internal/domain/user"
)

const recentReportLimit = 10

// Dashboard computes the five status counts and the ten most recent
// reports over the caller's role-scoped set. Counts and the recent list
// come from a single transaction so they never disagree; the redis
// cache in front only ever stores a whole snapshot.
func (u *Usecase) Dashboard(ctx context.Context, callerID uint64, role userDomain.Role) (*DashboardStats, error) {
	scope := policy.ScopeCreator(callerID, role, nil)

	key := "dashboard:all"
	if scope != nil {
		key = fmt.Sprintf("dashboard:user:%d", *scope)
	}

	if u.cache != nil {
		if b, err := u.cache.Get(ctx, key).Bytes(); err == nil {
			var cached DashboardStats
			if json.Unmarshal(b, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var stats DashboardStats
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		counts, err := r.Reports.CountByStatus(ctx, scope)
		if err != nil {
			return err
		}
		recent, err := r.Reports.Recent(ctx, scope, recentReportLimit)
		if err != nil {
			return err
		}
		if recent == nil {
			recent = []reportDomain.Report{}
		}
		stats = DashboardStats{StatusCounts: counts, RecentReports: recent}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := u.cache.Set(ctx, key, payload, u.statsTTL).Err(); err != nil {
				log.Printf("dashboard cache set %s: %v", key, err)
			}
		}
	}
	return &stats, nil
}
