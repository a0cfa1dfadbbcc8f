package infra_postgres_group

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/johnziss9/SceneStack-sub000/internal/model"
	usecase_group "github.com/johnziss9/SceneStack-sub000/internal/usecase/group"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type GroupInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	driver := New(sqlxDB)

	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: driver,
		ctx:    context.Background(),
	}
}

func (s *GroupInfraUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	r := initResources(t)

	g := model.Group{
		ID:        uuid.New(),
		Name:      "Tuesday Movie Club",
		CreatedBy: uuid.New(),
		CreatedAt: time.Now().UTC(),
	}

	r.mock.ExpectBegin()
	r.mock.ExpectExec("INSERT INTO groups").
		WithArgs(g.ID, g.Name, g.CreatedBy, g.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	r.mock.ExpectExec("INSERT INTO group_members").
		WithArgs(g.ID, g.CreatedBy, model.RoleCreator, g.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	r.mock.ExpectCommit()

	err := r.driver.Create(r.ctx, g)

	assert.NoError(t, err)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *GroupInfraUnitSuite) TestAddMember(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		driverErr   error
		expectedErr error
	}{
		{
			name: "Should insert a new membership",
		},
		{
			name:        "Should map a duplicate key to already-member",
			driverErr:   errors.New(`pq: duplicate key value violates unique constraint "group_members_pkey"`),
			expectedErr: usecase_group.ErrAlreadyMember,
		},
		{
			name:        "Should map a broken foreign key to group-not-found",
			driverErr:   errors.New(`pq: insert or update on table "group_members" violates foreign key constraint "group_members_group_id_fkey"`),
			expectedErr: usecase_group.ErrGroupNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)

			m := model.Membership{
				GroupID:  uuid.New(),
				UserID:   uuid.New(),
				Role:     model.RoleMember,
				JoinedAt: time.Now().UTC(),
			}

			exec := r.mock.ExpectExec("INSERT INTO group_members").
				WithArgs(m.GroupID, m.UserID, m.Role, m.JoinedAt)
			if tc.driverErr != nil {
				exec.WillReturnError(tc.driverErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := r.driver.AddMember(r.ctx, m)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *GroupInfraUnitSuite) TestIsMember(t provider.T) {
	t.Parallel()

	r := initResources(t)

	groupID := uuid.New()
	userID := uuid.New()

	r.mock.ExpectQuery("SELECT EXISTS").WithArgs(groupID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := r.driver.IsMember(r.ctx, groupID, userID)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *GroupInfraUnitSuite) TestListMemberships(t provider.T) {
	t.Parallel()

	r := initResources(t)

	userID := uuid.New()
	groupID := uuid.New()
	joined := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"group_id", "user_id", "role", "joined_at"}).
		AddRow(groupID.String(), userID.String(), model.RoleMember, joined)
	r.mock.ExpectQuery("FROM group_members").WithArgs(userID).WillReturnRows(rows)

	mm, err := r.driver.ListMemberships(r.ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, mm, 1)
	assert.Equal(t, groupID, mm[0].GroupID)
	assert.Equal(t, model.RoleMember, mm[0].Role)
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(GroupInfraUnitSuite))
}
