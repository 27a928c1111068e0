package repository

import (
	"context"

	"github.com/hray3182/FamilyBoard/internal/database"
	"github.com/hray3182/FamilyBoard/internal/models"
)

type FamilyRepository struct {
	db *database.DB
}

func NewFamilyRepository(db *database.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

func (r *FamilyRepository) GetMember(ctx context.Context, userID string) (*models.FamilyMember, error) {
	m := &models.FamilyMember{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT family_id, user_id, role, display_name, created_at
		 FROM family_member WHERE user_id = $1`,
		userID,
	).Scan(&m.FamilyID, &m.UserID, &m.Role, &m.DisplayName, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *FamilyRepository) AddMember(ctx context.Context, m *models.FamilyMember) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO family_member (family_id, user_id, role, display_name)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (family_id, user_id) DO UPDATE SET display_name = EXCLUDED.display_name
		 RETURNING created_at`,
		m.FamilyID, m.UserID, m.Role, m.DisplayName,
	).Scan(&m.CreatedAt)
}

// GetWithDigestChat lists the families that opted into the morning Telegram
// digest.
func (r *FamilyRepository) GetWithDigestChat(ctx context.Context) ([]*models.Family, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT family_id, name, digest_chat_id, created_at
		 FROM family WHERE digest_chat_id IS NOT NULL`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var families []*models.Family
	for rows.Next() {
		f := &models.Family{}
		if err := rows.Scan(&f.FamilyID, &f.Name, &f.DigestChatID, &f.CreatedAt); err != nil {
			return nil, err
		}
		families = append(families, f)
	}
	return families, nil
}
