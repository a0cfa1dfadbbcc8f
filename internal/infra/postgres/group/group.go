package infra_postgres_group

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	usecase_group "github.com/johnziss9/SceneStack-sub000/internal/usecase/group"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type groupDTO struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

type membershipDTO struct {
	GroupID  uuid.UUID `db:"group_id"`
	UserID   uuid.UUID `db:"user_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}

type groupWithRoleDTO struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	Role      string    `db:"role"`
}

type memberRowDTO struct {
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}

// Create inserts the group together with its creator membership so a group
// can never exist without at least one member.
func (d *Driver) Create(ctx context.Context, g model.Group) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	groupQuery := `
		INSERT INTO groups (id, name, created_by, created_at)
		VALUES (:id, :name, :created_by, :created_at)
	`

	if _, err := tx.NamedExecContext(ctx, groupQuery, groupDTO{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt,
	}); err != nil {
		return err
	}

	memberQuery := `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES (:group_id, :user_id, :role, :joined_at)
	`

	if _, err := tx.NamedExecContext(ctx, memberQuery, membershipDTO{
		GroupID:  g.ID,
		UserID:   g.CreatedBy,
		Role:     model.RoleCreator,
		JoinedAt: g.CreatedAt,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *Driver) AddMember(ctx context.Context, m model.Membership) error {
	query := `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES (:group_id, :user_id, :role, :joined_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, membershipDTO{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	})
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "duplicate key") {
			return usecase_group.ErrAlreadyMember
		}
		if strings.Contains(err.Error(), "foreign key constraint") {
			return usecase_group.ErrGroupNotFound
		}
		return err
	}
	return nil
}

func (d *Driver) ByUser(ctx context.Context, userID uuid.UUID) ([]*model.GroupWithRole, error) {
	var rows []groupWithRoleDTO

	query := `
		SELECT g.id, g.name, g.created_by, g.created_at, gm.role
		FROM group_members gm
		JOIN groups g ON g.id = gm.group_id
		WHERE gm.user_id = $1
		ORDER BY gm.joined_at DESC
	`

	err := d.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, err
	}

	gg := make([]*model.GroupWithRole, 0, len(rows))
	for _, row := range rows {
		gg = append(gg, &model.GroupWithRole{
			Group: model.Group{
				ID:        row.ID,
				Name:      row.Name,
				CreatedBy: row.CreatedBy,
				CreatedAt: row.CreatedAt,
			},
			Role: row.Role,
		})
	}

	return gg, nil
}

func (d *Driver) MembersOf(ctx context.Context, groupID uuid.UUID) ([]*model.GroupMember, error) {
	var rows []memberRowDTO

	query := `
		SELECT gm.user_id, u.username, gm.role, gm.joined_at
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at ASC
	`

	err := d.db.SelectContext(ctx, &rows, query, groupID)
	if err != nil {
		return nil, err
	}

	mm := make([]*model.GroupMember, 0, len(rows))
	for _, row := range rows {
		mm = append(mm, &model.GroupMember{
			UserID:   row.UserID,
			Username: row.Username,
			Role:     row.Role,
			JoinedAt: row.JoinedAt,
		})
	}

	return mm, nil
}

func (d *Driver) IsMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`

	err := d.db.GetContext(ctx, &exists, query, groupID, userID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) ListMemberships(ctx context.Context, userID uuid.UUID) ([]model.Membership, error) {
	var rows []membershipDTO

	query := `
		SELECT group_id, user_id, role, joined_at
		FROM group_members
		WHERE user_id = $1
	`

	err := d.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, err
	}

	mm := make([]model.Membership, 0, len(rows))
	for _, row := range rows {
		mm = append(mm, model.Membership{
			GroupID:  row.GroupID,
			UserID:   row.UserID,
			Role:     row.Role,
			JoinedAt: row.JoinedAt,
		})
	}

	return mm, nil
}
