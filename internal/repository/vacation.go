package repository

import (
	"context"

	"github.com/hray3182/FamilyBoard/internal/database"
	"github.com/hray3182/FamilyBoard/internal/models"
)

type VacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) *VacationRepository {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) Create(ctx context.Context, v *models.Vacation) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO vacation (family_id, user_id, person, type, title, start_date, end_date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING vacation_id, created_at`,
		v.FamilyID, v.UserID, v.Person, v.Type, v.Title, v.StartDate, v.EndDate, v.Notes,
	).Scan(&v.VacationID, &v.CreatedAt)
}

func (r *VacationRepository) GetByFamilyID(ctx context.Context, familyID string) ([]*models.Vacation, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT vacation_id, family_id, user_id, person, type, title, start_date, end_date,
		 notes, created_at
		 FROM vacation WHERE family_id = $1
		 ORDER BY start_date ASC`,
		familyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacations []*models.Vacation
	for rows.Next() {
		v := &models.Vacation{}
		if err := rows.Scan(&v.VacationID, &v.FamilyID, &v.UserID, &v.Person, &v.Type,
			&v.Title, &v.StartDate, &v.EndDate, &v.Notes, &v.CreatedAt); err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}
	return vacations, nil
}

func (r *VacationRepository) Delete(ctx context.Context, vacationID int) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM vacation WHERE vacation_id = $1`,
		vacationID,
	)
	return err
}
