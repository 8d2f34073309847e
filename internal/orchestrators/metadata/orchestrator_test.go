package metadata_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/emberforge/adventurer-api/internal/errors"
	orchestrator "github.com/emberforge/adventurer-api/internal/orchestrators/metadata"
	"github.com/emberforge/adventurer-api/internal/pkg/encoding"
	"github.com/emberforge/adventurer-api/internal/renderer"
	adventurerrepo "github.com/emberforge/adventurer-api/internal/repositories/adventurer"
	adventurermock "github.com/emberforge/adventurer-api/internal/repositories/adventurer/mock"
	"github.com/emberforge/adventurer-api/internal/services/metadata"
	"github.com/emberforge/adventurer-api/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *adventurermock.MockRepository
	orch     *orchestrator.Orchestrator
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = adventurermock.NewMockRepository(s.ctrl)

	orch, err := orchestrator.New(&orchestrator.Config{AdventurerRepo: s.mockRepo})
	s.Require().NoError(err)
	s.orch = orch

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) expectGet(tokenID uint64, out *adventurerrepo.GetOutput, err error) {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), adventurerrepo.GetInput{TokenID: tokenID}).
		Return(out, err)
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	_, err := orchestrator.New(&orchestrator.Config{})
	s.Assert().Error(err)
}

func (s *OrchestratorTestSuite) TestGetMetadata() {
	snapshot := builders.NewSnapshotBuilder().Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetMetadata(s.ctx, &metadata.GetMetadataInput{TokenID: 7})
	s.Require().NoError(err)
	s.Assert().True(strings.HasPrefix(out.DataURI, encoding.JSONPrefix))
	s.Assert().Equal(renderer.Render(7, snapshot), out.DataURI)
}

func (s *OrchestratorTestSuite) TestGetMetadataNotFound() {
	s.expectGet(404, nil, errors.NotFound("adventurer not found"))

	_, err := s.orch.GetMetadata(s.ctx, &metadata.GetMetadataInput{TokenID: 404})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetMetadataNilInput() {
	_, err := s.orch.GetMetadata(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetMetadataPage() {
	snapshot := builders.NewSnapshotBuilder().Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetMetadataPage(s.ctx, &metadata.GetMetadataPageInput{TokenID: 7, Page: 1})
	s.Require().NoError(err)
	s.Assert().Equal(uint8(1), out.Page)
	s.Assert().Equal(uint8(renderer.NormalPageCount), out.PageCount)
	s.Assert().Equal(renderer.RenderPage(7, snapshot, renderer.PageItemBag), out.DataURI)
}

func (s *OrchestratorTestSuite) TestGetImage() {
	snapshot := builders.NewSnapshotBuilder().Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetImage(s.ctx, &metadata.GetImageInput{TokenID: 7})
	s.Require().NoError(err)
	s.Assert().True(strings.HasPrefix(out.DataURI, encoding.SVGPrefix))
}

func (s *OrchestratorTestSuite) TestGetImagePage() {
	snapshot := builders.NewSnapshotBuilder().Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetImagePage(s.ctx, &metadata.GetImagePageInput{TokenID: 7, Page: 2})
	s.Require().NoError(err)
	s.Assert().Equal(renderer.ImagePage(snapshot, renderer.PageBattle), out.DataURI)
}

func (s *OrchestratorTestSuite) TestGetTraits() {
	snapshot := builders.NewSnapshotBuilder().Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetTraits(s.ctx, &metadata.GetTraitsInput{TokenID: 7})
	s.Require().NoError(err)
	s.Assert().Len(out.Traits, 18)
}

func (s *OrchestratorTestSuite) TestGetDescription() {
	out, err := s.orch.GetDescription(s.ctx, &metadata.GetDescriptionInput{})
	s.Require().NoError(err)
	s.Assert().Equal(renderer.Description(), out.Description)
}

func (s *OrchestratorTestSuite) TestGetBattleStatus() {
	snapshot := builders.NewSnapshotBuilder().WithHealth(10).WithBeastHealth(30).Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetBattleStatus(s.ctx, &metadata.GetBattleStatusInput{TokenID: 7})
	s.Require().NoError(err)
	s.Assert().Equal(renderer.BattleStateInCombat, out.State)
	s.Assert().True(out.BattleMode)
	s.Assert().True(out.PageMode.BattleOnly)
	s.Assert().Equal(uint8(1), out.PageCount)
}

func (s *OrchestratorTestSuite) TestGetBattleStatusDead() {
	snapshot := builders.NewSnapshotBuilder().WithHealth(0).WithBeastHealth(30).Build()
	s.expectGet(7, &adventurerrepo.GetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.GetBattleStatus(s.ctx, &metadata.GetBattleStatusInput{TokenID: 7})
	s.Require().NoError(err)
	s.Assert().Equal(renderer.BattleStateDead, out.State)
	s.Assert().True(out.BattleMode)
	s.Assert().False(out.PageMode.BattleOnly)
	s.Assert().Equal(uint8(renderer.NormalPageCount), out.PageCount)
}

func (s *OrchestratorTestSuite) TestPutSnapshot() {
	snapshot := builders.NewSnapshotBuilder().Build()
	s.mockRepo.EXPECT().
		Set(gomock.Any(), adventurerrepo.SetInput{TokenID: 7, Snapshot: snapshot}).
		Return(&adventurerrepo.SetOutput{Snapshot: snapshot}, nil)

	out, err := s.orch.PutSnapshot(s.ctx, &metadata.PutSnapshotInput{TokenID: 7, Snapshot: snapshot})
	s.Require().NoError(err)
	s.Assert().Equal(snapshot, out.Snapshot)
}

func (s *OrchestratorTestSuite) TestPutSnapshotNilSnapshot() {
	_, err := s.orch.PutSnapshot(s.ctx, &metadata.PutSnapshotInput{TokenID: 7})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteSnapshot() {
	s.mockRepo.EXPECT().
		Delete(gomock.Any(), adventurerrepo.DeleteInput{TokenID: 7}).
		Return(&adventurerrepo.DeleteOutput{}, nil)

	_, err := s.orch.DeleteSnapshot(s.ctx, &metadata.DeleteSnapshotInput{TokenID: 7})
	s.Assert().NoError(err)
}

func (s *OrchestratorTestSuite) TestDeleteSnapshotNotFound() {
	s.mockRepo.EXPECT().
		Delete(gomock.Any(), adventurerrepo.DeleteInput{TokenID: 7}).
		Return(nil, errors.NotFound("adventurer not found"))

	_, err := s.orch.DeleteSnapshot(s.ctx, &metadata.DeleteSnapshotInput{TokenID: 7})
	s.Assert().True(errors.IsNotFound(err))
}
