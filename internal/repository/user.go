package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/TimeslotBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

type UserRepository struct {
	conn
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{conn: newConn(db)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, created_at)
 			  VALUES ($1, $2, $3)`
	_, err := r.exec(ctx, query, user.ID, user.Username, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapPgError(err))
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, created_at
    		  FROM users
    		  WHERE id = $1`

	row, err := r.queryRow(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, username, created_at
			  FROM users
			  ORDER BY username`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
