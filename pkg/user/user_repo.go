package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
	DeleteUser(ctx context.Context, id int) error
	GetAllUsers(ctx context.Context) ([]User, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

const userColumns = "id, uid, email, display_name, role, currency, created_at"

func (u *RepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	role := user.Role
	if role == "" {
		role = RoleUser
	}
	query := `INSERT INTO app_user (uid, email, display_name, role, currency)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := u.db.QueryRow(ctx, query,
		user.Uid,
		user.Email,
		user.DisplayName,
		role,
		user.Currency,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (u *RepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := fmt.Sprintf("SELECT %s FROM app_user WHERE id = $1", userColumns)
	return u.scanOne(u.db.QueryRow(ctx, query, id))
}

func (u *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := fmt.Sprintf("SELECT %s FROM app_user WHERE uid = $1", userColumns)
	return u.scanOne(u.db.QueryRow(ctx, query, uid))
}

func (u *RepoImpl) GetUserByEmail(ctx context.Context, email string) (User, error) {
	query := fmt.Sprintf("SELECT %s FROM app_user WHERE email = $1", userColumns)
	return u.scanOne(u.db.QueryRow(ctx, query, email))
}

func (u *RepoImpl) scanOne(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Email,
		&user.DisplayName,
		&user.Role,
		&user.Currency,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *RepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE app_user SET display_name = $1, currency = $2 WHERE id = $3`
	tag, err := u.db.Exec(ctx, query, user.DisplayName, user.Currency, userId)
	if err != nil {
		log.Errorf("failed to update user %d: %v", userId, err)
		return User{}, err
	}
	if tag.RowsAffected() == 0 {
		return User{}, ErrUserNotFound
	}
	return u.GetUser(ctx, userId)
}

func (u *RepoImpl) DeleteUser(ctx context.Context, id int) error {
	tag, err := u.db.Exec(ctx, "DELETE FROM app_user WHERE id = $1", id)
	if err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (u *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf("SELECT %s FROM app_user ORDER BY id", userColumns)
	rows, err := u.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to list users: %v", err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(
			&user.Id,
			&user.Uid,
			&user.Email,
			&user.DisplayName,
			&user.Role,
			&user.Currency,
			&user.CreatedAt,
		); err != nil {
			log.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
