package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quickgigs-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gigColumns = `id, title, description, category, budget, deadline, posted_by, created_at, updated_at`

type gigRepo struct {
	db *pgxpool.Pool
}

func NewGigRepository(db *pgxpool.Pool) domain.GigRepository {
	return &gigRepo{db: db}
}

func (r *gigRepo) Create(ctx context.Context, gig *domain.Gig) error {
	query := `INSERT INTO gigs (title, description, category, budget, deadline, posted_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		gig.Title, gig.Description, gig.Category, gig.Budget, gig.Deadline, gig.PostedBy,
		gig.CreatedAt, gig.UpdatedAt,
	).Scan(&gig.ID)
	if err != nil {
		return err
	}
	gig.Applicants = []domain.Applicant{}
	return nil
}

func (r *gigRepo) GetByID(ctx context.Context, id int64) (*domain.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1`
	var gig domain.Gig
	err := r.db.QueryRow(ctx, query, id).Scan(
		&gig.ID, &gig.Title, &gig.Description, &gig.Category, &gig.Budget, &gig.Deadline, &gig.PostedBy,
		&gig.CreatedAt, &gig.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	applicants, err := r.loadApplicants(ctx, []int64{gig.ID})
	if err != nil {
		return nil, err
	}
	gig.Applicants = applicants[gig.ID]
	if gig.Applicants == nil {
		gig.Applicants = []domain.Applicant{}
	}
	return &gig, nil
}

func (r *gigRepo) Fetch(ctx context.Context, filter domain.GigFilter, sortBy string, limit, offset int) ([]domain.Gig, int64, error) {
	where, args := buildWhere(filter)

	query := `SELECT ` + gigColumns + ` FROM gigs` + where + orderClause(sortBy, filter, &args)
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	gigs, err := r.queryGigs(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	countWhere, countArgs := buildWhere(filter)
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM gigs`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return gigs, total, nil
}

func (r *gigRepo) Search(ctx context.Context, query string) ([]domain.Gig, error) {
	sql := `SELECT ` + gigColumns + ` FROM gigs
            WHERE search_vector @@ plainto_tsquery('english', $1)
            ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC`
	return r.queryGigs(ctx, sql, query)
}

func (r *gigRepo) FetchByCategory(ctx context.Context, category string) ([]domain.Gig, error) {
	sql := `SELECT ` + gigColumns + ` FROM gigs WHERE category = $1 ORDER BY created_at DESC`
	return r.queryGigs(ctx, sql, category)
}

// AppendApplicant inserts conditionally against the unique index on
// (gig_id, lower(freelancer_name)). Two racing same-name applications hit the
// same index entry, so at most one insert succeeds; the loser sees no row and
// gets ErrDuplicateApplicant. The parent's updated_at moves in the same
// statement, so the append either lands whole or not at all.
func (r *gigRepo) AppendApplicant(ctx context.Context, gigID int64, applicant *domain.Applicant) error {
	query := `WITH ins AS (
                  INSERT INTO gig_applicants (gig_id, freelancer_name, short_message, submitted_at)
                  VALUES ($1, $2, $3, $4)
                  ON CONFLICT (gig_id, lower(freelancer_name)) DO NOTHING
                  RETURNING id
              )
              UPDATE gigs SET updated_at = $4 FROM ins WHERE gigs.id = $1
              RETURNING ins.id`
	err := r.db.QueryRow(ctx, query,
		gigID, applicant.FreelancerName, applicant.ShortMessage, applicant.SubmittedAt,
	).Scan(&applicant.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDuplicateApplicant
		}
		return err
	}
	return nil
}

func (r *gigRepo) queryGigs(ctx context.Context, query string, args ...any) ([]domain.Gig, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := []domain.Gig{}
	var ids []int64
	for rows.Next() {
		var gig domain.Gig
		if err := rows.Scan(
			&gig.ID, &gig.Title, &gig.Description, &gig.Category, &gig.Budget, &gig.Deadline, &gig.PostedBy,
			&gig.CreatedAt, &gig.UpdatedAt,
		); err != nil {
			return nil, err
		}
		gig.Applicants = []domain.Applicant{}
		gigs = append(gigs, gig)
		ids = append(ids, gig.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return gigs, nil
	}

	applicants, err := r.loadApplicants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range gigs {
		if apps, ok := applicants[gigs[i].ID]; ok {
			gigs[i].Applicants = apps
		}
	}
	return gigs, nil
}

// loadApplicants returns each gig's applicants in insertion order.
func (r *gigRepo) loadApplicants(ctx context.Context, gigIDs []int64) (map[int64][]domain.Applicant, error) {
	query := `SELECT id, gig_id, freelancer_name, short_message, submitted_at
              FROM gig_applicants WHERE gig_id = ANY($1) ORDER BY gig_id, id`
	rows, err := r.db.Query(ctx, query, gigIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]domain.Applicant)
	for rows.Next() {
		var app domain.Applicant
		var gigID int64
		if err := rows.Scan(&app.ID, &gigID, &app.FreelancerName, &app.ShortMessage, &app.SubmittedAt); err != nil {
			return nil, err
		}
		result[gigID] = append(result[gigID], app)
	}
	return result, rows.Err()
}

// buildWhere turns a GigFilter into a conjunctive WHERE clause. Absent fields
// impose no constraint.
func buildWhere(filter domain.GigFilter) (string, []any) {
	var clauses []string
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, filter.Query)
		clauses = append(clauses, fmt.Sprintf("search_vector @@ plainto_tsquery('english', $%d)", len(args)))
	}
	if filter.MinBudget != nil {
		args = append(args, *filter.MinBudget)
		clauses = append(clauses, fmt.Sprintf("budget >= $%d", len(args)))
	}
	if filter.MaxBudget != nil {
		args = append(args, *filter.MaxBudget)
		clauses = append(clauses, fmt.Sprintf("budget <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(sortBy string, filter domain.GigFilter, args *[]any) string {
	switch sortBy {
	case domain.SortOldest:
		return " ORDER BY created_at ASC"
	case domain.SortBudgetHigh:
		return " ORDER BY budget DESC"
	case domain.SortBudgetLow:
		return " ORDER BY budget ASC"
	case domain.SortDeadline:
		return " ORDER BY deadline ASC"
	case domain.SortRelevance:
		if filter.Query == "" {
			return " ORDER BY created_at DESC"
		}
		*args = append(*args, filter.Query)
		return fmt.Sprintf(" ORDER BY ts_rank(search_vector, plainto_tsquery('english', $%d)) DESC", len(*args))
	default:
		return " ORDER BY created_at DESC"
	}
}
