//go:build unit

package commands_test

import (
	"context"
	"testing"

	"gavel/internal/infra"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/commands"
	commandsmock "gavel/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *commandsmock.MockUserRepository
	uc    commands.UserCommands
}

func TestUserCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(UserCommandsTestSuite))
}

func (s *UserCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = commandsmock.NewMockUserRepository(s.ctrl)
	s.uc = commands.NewUserCommands(s.users)
}

func (s *UserCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserCommandsTestSuite) TestSetVerified_Success() {
	id := uuid.New()
	s.users.EXPECT().SetVerified(gomock.Any(), id, true).Return(nil)

	err := s.uc.SetVerified(context.Background(), id, true)

	s.NoError(err)
}

func (s *UserCommandsTestSuite) TestSetVerified_RevokeIsPassedThrough() {
	id := uuid.New()
	s.users.EXPECT().SetVerified(gomock.Any(), id, false).Return(nil)

	err := s.uc.SetVerified(context.Background(), id, false)

	s.NoError(err)
}

func (s *UserCommandsTestSuite) TestSetVerified_UserNotFound() {
	s.users.EXPECT().SetVerified(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))

	err := s.uc.SetVerified(context.Background(), uuid.New(), true)

	s.ErrorIs(err, errs.ErrUserNotFound)
}

func (s *UserCommandsTestSuite) TestSetVerified_StorageFailure() {
	s.users.EXPECT().SetVerified(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("failed to update verification flag", pgx.ErrTxClosed))

	err := s.uc.SetVerified(context.Background(), uuid.New(), true)

	s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
}
