package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberforge/adventurer-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("snapshot", "is required")
	ve.AddFieldErrorf("page", "must be at most %d", 2)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "snapshot: is required")
	s.Assert().Contains(ve.Error(), "page: must be at most 2")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("snapshot", "is required").
		Fieldf("page", "must be between %d and %d", 0, 2).
		RequiredField("tokenID").
		InvalidField("name", "not a packed string")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("page", 7, 0, 2, vb)
	errors.ValidateRange("vitality", 31, 0, 255, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["page"][0], "must be between 0 and 2")
	s.Assert().NotContains(validationErrors, "vitality")
}
