//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gavel/internal/handler/api"
	"gavel/internal/pkg/errs"
	commonhttp "gavel/tests/common/httptest"
	commandsmock "gavel/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userCommands *commandsmock.MockUserCommands
	router       *gin.Engine
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.userCommands = commandsmock.NewMockUserCommands(s.ctrl)

	handler := api.NewUserHandler(s.userCommands)
	s.router = gin.New()
	s.router.PATCH("/api/users/:id/verification", handler.SetVerified)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func verificationPath(id string) string {
	return "/api/users/" + id + "/verification"
}

func (s *UserHandlerTestSuite) TestSetVerified_Success() {
	id := uuid.New()
	s.userCommands.EXPECT().SetVerified(gomock.Any(), id, true).Return(nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, verificationPath(id.String()),
		map[string]any{"verified": true}, "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *UserHandlerTestSuite) TestSetVerified_RevokesWithExplicitFalse() {
	id := uuid.New()
	s.userCommands.EXPECT().SetVerified(gomock.Any(), id, false).Return(nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, verificationPath(id.String()),
		map[string]any{"verified": false}, "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *UserHandlerTestSuite) TestSetVerified_InvalidUserID() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, verificationPath("not-a-uuid"),
		map[string]any{"verified": true}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *UserHandlerTestSuite) TestSetVerified_MissingFlag() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, verificationPath(uuid.NewString()),
		map[string]any{}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *UserHandlerTestSuite) TestSetVerified_UserNotFound() {
	s.userCommands.EXPECT().SetVerified(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.ErrUserNotFound)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, verificationPath(uuid.NewString()),
		map[string]any{"verified": true}, "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *UserHandlerTestSuite) TestSetVerified_StorageFailure() {
	s.userCommands.EXPECT().SetVerified(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.ErrDatabaseOperationFailed)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, verificationPath(uuid.NewString()),
		map[string]any{"verified": true}, "")

	s.Equal(http.StatusInternalServerError, w.Code)
}
