package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MarkupServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockCache     *mocks.MockMarkupCache
	store         *memStore
	markupService *MarkupService
}

func TestMarkupServiceSuite(t *testing.T) {
	suite.Run(t, new(MarkupServiceTestSuite))
}

func (s *MarkupServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCache = mocks.NewMockMarkupCache(s.mockCtrl)
	s.store = newMemStore()
	var err error
	s.markupService, err = NewMarkupService(s.store, s.mockCache, testLogger())
	s.Require().NoError(err)
}

func (s *MarkupServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MarkupServiceTestSuite) TestList_CacheHit() {
	cached := []domain.MarkupRule{
		{CategoryKey: "YouTube_Views", Type: domain.MarkupFixed, Value: decimal.NewFromInt(2)},
	}
	s.mockCache.EXPECT().Load(gomock.Any()).Return(cached, true, nil)

	rules, err := s.markupService.Rules(context.Background())
	s.Require().NoError(err)
	s.Require().Contains(rules, "YouTube_Views")
	s.Equal(domain.MarkupFixed, rules["YouTube_Views"].Type)
}

func (s *MarkupServiceTestSuite) TestList_CacheMissStores() {
	s.store.rules["Instagram_Likes"] = domain.MarkupRule{
		CategoryKey: "Instagram_Likes", Type: domain.MarkupPercent, Value: decimal.NewFromInt(50),
	}
	s.mockCache.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	s.mockCache.EXPECT().Store(gomock.Any(), gomock.Len(1)).Return(nil)

	rules, err := s.markupService.List(context.Background())
	s.Require().NoError(err)
	s.Len(rules, 1)
}

func (s *MarkupServiceTestSuite) TestList_CacheErrorFallsBack() {
	s.mockCache.EXPECT().Load(gomock.Any()).Return(nil, false, errors.New("connection refused"))
	s.mockCache.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	rules, err := s.markupService.List(context.Background())
	s.Require().NoError(err)
	s.Empty(rules)
}

func (s *MarkupServiceTestSuite) TestSave_InvalidatesCache() {
	gomock.InOrder(
		s.mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		s.mockCache.EXPECT().Load(gomock.Any()).Return(nil, false, nil),
		s.mockCache.EXPECT().Store(gomock.Any(), gomock.Len(2)).Return(nil),
	)

	saved, err := s.markupService.Save(context.Background(), []domain.MarkupRule{
		{CategoryKey: " Instagram_Followers ", Type: domain.MarkupPercent, Value: decimal.NewFromInt(60)},
		{CategoryKey: "TikTok_Views", Type: domain.MarkupFixed, Value: decimal.RequireFromString("0.5")},
	})
	s.Require().NoError(err)
	s.Len(saved, 2)
	s.Contains(s.store.rules, "Instagram_Followers")
}

func (s *MarkupServiceTestSuite) TestSave_Validation() {
	cases := []struct {
		name  string
		rules []domain.MarkupRule
	}{
		{name: "empty key", rules: []domain.MarkupRule{{Type: domain.MarkupFixed}}},
		{name: "unknown type", rules: []domain.MarkupRule{{CategoryKey: "Spotify_Other", Type: "ratio"}}},
		{name: "duplicate key", rules: []domain.MarkupRule{
			{CategoryKey: "Spotify_Other", Type: domain.MarkupFixed},
			{CategoryKey: "Spotify_Other", Type: domain.MarkupPercent},
		}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.markupService.Save(context.Background(), tc.rules)
			s.Require().ErrorIs(err, domain.ErrInvalidRequest)
		})
	}
}
