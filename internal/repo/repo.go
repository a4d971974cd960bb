package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Description  string     `json:"description"`
	AvatarURL    string     `json:"avatar_url"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

type PremiumTicket struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Calculation is one saved wind run: the site parameters as submitted and
// the resulting velocity pressure.
type Calculation struct {
	ID        int             `json:"id"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	QhPSF     float64         `json:"qh_psf"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error
	UpdateAvatar(ctx context.Context, id int, avatarURL string) error

	SetPremiumUntil(ctx context.Context, userID int, until time.Time) error
	ClearPremium(ctx context.Context, userID int) error
	CreatePremiumTicket(ctx context.Context, userID int) (int, error)
	GetPremiumTicket(ctx context.Context, id int) (PremiumTicket, error)
	ListPendingTickets(ctx context.Context) ([]PremiumTicket, error)
	UpdatePremiumTicketStatus(ctx context.Context, id int, status string) error

	SaveCalculation(ctx context.Context, userID int, tool string, input json.RawMessage, qhPSF float64) error
	ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var description, avatar sql.NullString
	var until sql.NullTime

	query := "SELECT id, login, email, description, avatar_url, premium_until FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &description, &avatar, &until)
	if err != nil {
		return Profile{}, err
	}
	p.Description = description.String
	p.AvatarURL = avatar.String
	if until.Valid {
		t := until.Time
		p.PremiumUntil = &t
		p.IsPremium = time.Now().Before(t)
	}
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id int, avatarURL string) error {
	query := "UPDATE users SET avatar_url=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, avatarURL)
	return err
}

func (r *PostgresUserRepository) SetPremiumUntil(ctx context.Context, userID int, until time.Time) error {
	query := "UPDATE users SET premium_until=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, userID, until)
	return err
}

func (r *PostgresUserRepository) ClearPremium(ctx context.Context, userID int) error {
	query := "UPDATE users SET premium_until=NULL WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *PostgresUserRepository) CreatePremiumTicket(ctx context.Context, userID int) (int, error) {
	var id int
	query := "INSERT INTO premium_tickets (user_id, status, created_at) VALUES ($1, 'pending', NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetPremiumTicket(ctx context.Context, id int) (PremiumTicket, error) {
	var t PremiumTicket
	query := "SELECT id, user_id, status, created_at FROM premium_tickets WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.UserID, &t.Status, &t.CreatedAt)
	return t, err
}

func (r *PostgresUserRepository) ListPendingTickets(ctx context.Context) ([]PremiumTicket, error) {
	query := "SELECT id, user_id, status, created_at FROM premium_tickets WHERE status='pending' ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []PremiumTicket
	for rows.Next() {
		var t PremiumTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PostgresUserRepository) UpdatePremiumTicketStatus(ctx context.Context, id int, status string) error {
	query := "UPDATE premium_tickets SET status=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *PostgresUserRepository) SaveCalculation(ctx context.Context, userID int, tool string, input json.RawMessage, qhPSF float64) error {
	query := "INSERT INTO calculations (user_id, tool, input, qh_psf, created_at) VALUES ($1, $2, $3, $4, NOW())"
	_, err := r.db.ExecContext(ctx, query, userID, tool, []byte(input), qhPSF)
	return err
}

func (r *PostgresUserRepository) ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error) {
	if limit <= 0 {
		limit = 50
	}
	query := "SELECT id, tool, input, qh_psf, created_at FROM calculations WHERE user_id=$1 ORDER BY id DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []Calculation
	for rows.Next() {
		var c Calculation
		var input []byte
		if err := rows.Scan(&c.ID, &c.Tool, &input, &c.QhPSF, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Input = json.RawMessage(input)
		calcs = append(calcs, c)
	}
	return calcs, rows.Err()
}
