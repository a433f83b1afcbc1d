package pgrepo

import (
	"context"

	"github.com/fsdevblog/tubecash/internal/domain"
	"github.com/fsdevblog/tubecash/pkg/uow"
)

const planColumns = `id, name, price, videos_per_day, earning_per_video, monthly_earning,
	features, active, sort_order`

type PlanRepository struct {
	db uow.DBTX
}

func NewPlanRepository(db uow.DBTX) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetActive возвращает активные тарифы по возрастанию sort_order.
func (r *PlanRepository) GetActive(ctx context.Context) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE active
		ORDER BY sort_order ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting active plans")
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		plan, scanErr := r.scanPlan(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning plan row")
		}
		plans = append(plans, *plan)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "reading active plans")
	}
	return plans, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id int64) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = $1`

	plan, err := r.scanPlan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "finding plan by id %d", id)
	}
	return plan, nil
}

func (r *PlanRepository) FindByName(ctx context.Context, name string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE name = $1 ORDER BY sort_order ASC, id ASC LIMIT 1`

	plan, err := r.scanPlan(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, convertErr(err, "finding plan by name `%s`", name)
	}
	return plan, nil
}

func (r *PlanRepository) scanPlan(row rowScanner) (*domain.Plan, error) {
	var plan domain.Plan
	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Price,
		&plan.VideosPerDay,
		&plan.EarningPerVideo,
		&plan.MonthlyEarning,
		&plan.Features,
		&plan.Active,
		&plan.SortOrder,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &plan, nil
}
