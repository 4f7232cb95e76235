//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"gavel/internal/domain/user"
	"gavel/internal/infra"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase"
	usecasemock "gavel/tests/mock/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PermissionCheckerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	reader   *usecasemock.MockPermissionReader
	store    *usecasemock.MockPermissionCacheStore
	checker  usecase.PermissionChecker
}

func (s *PermissionCheckerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reader = usecasemock.NewMockPermissionReader(s.mockCtrl)
	s.store = usecasemock.NewMockPermissionCacheStore(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.checker = usecase.NewPermissionChecker(s.reader, s.store, logger)
}

func (s *PermissionCheckerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPermissionCheckerSuite(t *testing.T) {
	suite.Run(t, new(PermissionCheckerTestSuite))
}

func (s *PermissionCheckerTestSuite) TestHasPermission() {
	userActions := []string{user.ActionBidPlace, user.ActionAuctionCreate}

	s.Run("cache hit grants without touching the store", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return(userActions, nil)

		allowed, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionBidPlace)
		s.Require().NoError(err)
		s.True(allowed)
	})

	s.Run("cache hit denies an action outside the set", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return(userActions, nil)

		allowed, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionUserBan)
		s.Require().NoError(err)
		s.False(allowed)
	})

	s.Run("cache miss falls back to the store and populates the cache", func() {
		s.SetupTest()
		gomock.InOrder(
			s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return(nil, nil),
			s.reader.EXPECT().FindActionsByRole(gomock.Any(), "USER").Return(userActions, nil),
			s.store.EXPECT().SetRoleActions(gomock.Any(), "USER", userActions).Return(nil),
		)

		allowed, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionBidPlace)
		s.Require().NoError(err)
		s.True(allowed)
	})

	s.Run("cached empty set denies without a store read", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return([]string{}, nil)

		allowed, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionBidPlace)
		s.Require().NoError(err)
		s.False(allowed)
	})

	s.Run("cache read failure degrades to the store", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return(nil, errors.New("redis down"))
		s.reader.EXPECT().FindActionsByRole(gomock.Any(), "USER").Return(userActions, nil)
		s.store.EXPECT().SetRoleActions(gomock.Any(), "USER", userActions).Return(nil)

		allowed, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionBidPlace)
		s.Require().NoError(err)
		s.True(allowed)
	})

	s.Run("cache populate failure does not block the grant", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return(nil, nil)
		s.reader.EXPECT().FindActionsByRole(gomock.Any(), "USER").Return(userActions, nil)
		s.store.EXPECT().SetRoleActions(gomock.Any(), "USER", userActions).Return(errors.New("redis down"))

		allowed, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionBidPlace)
		s.Require().NoError(err)
		s.True(allowed)
	})

	s.Run("unknown role", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "ADMIN").Return(nil, nil)
		s.reader.EXPECT().FindActionsByRole(gomock.Any(), "ADMIN").
			Return(nil, infra.WrapRepoErr("role not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := s.checker.HasPermission(context.Background(), user.RoleAdmin, user.ActionUserBan)
		s.Require().ErrorIs(err, errs.ErrRoleNotFound)
	})

	s.Run("store failure", func() {
		s.SetupTest()
		s.store.EXPECT().GetRoleActions(gomock.Any(), "USER").Return(nil, nil)
		s.reader.EXPECT().FindActionsByRole(gomock.Any(), "USER").
			Return(nil, infra.WrapRepoErr("query failed", errors.New("db down")))

		_, err := s.checker.HasPermission(context.Background(), user.RoleUser, user.ActionBidPlace)
		s.Require().ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}
