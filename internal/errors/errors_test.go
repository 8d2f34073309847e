package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberforge/adventurer-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "adventurer not found",
			expected: "NOT_FOUND: adventurer not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid page index",
			expected: "INVALID_ARGUMENT: invalid page index",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("adventurer not found").
		WithMeta("token_id", "123")

	s.Assert().Equal("123", err.Meta["token_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection failed")
	wrapped := errors.Wrap(baseErr, "failed to get adventurer")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get adventurer", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "adventurer not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("adventurer not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "snapshot store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("snapshot store unavailable", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"OutOfRange", func() *errors.Error { return errors.OutOfRange("test") }, errors.CodeOutOfRange},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("missing")))
	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad")))
	s.Assert().True(errors.IsNotFound(errors.Wrap(errors.NotFound("missing"), "context")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code   errors.Code
		status int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeOutOfRange, http.StatusBadRequest},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
		{errors.Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.status, tc.code.HTTPStatus())
		})
	}
}
