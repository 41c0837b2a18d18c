package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// PlanRepository implements port.PlanRepository using pgxpool.
type PlanRepository struct {
	pool *pgxpool.Pool
}

var _ port.PlanRepository = (*PlanRepository)(nil)

// NewPlanRepository returns a new repository instance.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{pool: pool}
}

// SavePlan stores the brief and the report. Saving the same trace id twice
// keeps the first report.
func (r *PlanRepository) SavePlan(ctx context.Context, brief domain.CampaignBrief, report *domain.Report) error {
	if report == nil {
		return errors.New("nil report")
	}
	briefJSON, err := json.Marshal(brief)
	if err != nil {
		return fmt.Errorf("marshal brief: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	totals := report.Kpis.Totals
	_, err = r.pool.Exec(ctx, `
        INSERT INTO plans (trace_id, industry, budget, revenue, roas, brief, report)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (trace_id) DO NOTHING`,
		report.TraceID,
		domain.NormalizeKey(report.Industry),
		totals.Budget,
		totals.Revenue,
		totals.ROAS,
		briefJSON,
		reportJSON,
	)
	if err != nil {
		return fmt.Errorf("insert plan %s: %w", report.TraceID, err)
	}
	return nil
}

// GetPlan returns a stored report by trace id.
func (r *PlanRepository) GetPlan(ctx context.Context, traceID string) (*domain.Report, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT report FROM plans WHERE trace_id = $1`, traceID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	var report domain.Report
	if err = json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", traceID, err)
	}
	return &report, nil
}

// GetStats aggregates stored plans created in [From, To]. A nil Industry
// covers every industry.
func (r *PlanRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereIndustry := ""
	if req.Industry != nil {
		whereIndustry = "AND industry = $3"
		args = append(args, domain.NormalizeKey(*req.Industry))
	}
	query := fmt.Sprintf(`
        SELECT count(*), COALESCE(sum(budget),0), COALESCE(sum(revenue),0)
        FROM plans
        WHERE created_at >= $1 AND created_at <= $2 %s`, whereIndustry)

	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).Scan(&resp.Plans, &resp.TotalBudget, &resp.TotalRevenue)
	if err != nil {
		return nil, err
	}
	if resp.TotalBudget > 0 {
		resp.AverageROAS = resp.TotalRevenue / resp.TotalBudget
	}
	return &resp, nil
}
