package service

import (
	"github.com/venturebase/backoffice/internal/model"
	"github.com/venturebase/backoffice/internal/repository"
)

// MainService 메인 화면 집계: 최신 포트폴리오 15건 + 최신 뉴스 3건
type MainService struct {
	portfolioRepo repository.PortfolioRepository
	newsRepo      repository.NewsRepository
}

func NewMainService(portfolioRepo repository.PortfolioRepository, newsRepo repository.NewsRepository) *MainService {
	return &MainService{
		portfolioRepo: portfolioRepo,
		newsRepo:      newsRepo,
	}
}

func (s *MainService) Overview() ([]model.Portfolio, []model.News, error) {
	portfolios, err := s.portfolioRepo.ListRecent(15)
	if err != nil {
		return nil, nil, err
	}
	news, err := s.newsRepo.ListRecent(3)
	if err != nil {
		return nil, nil, err
	}
	return portfolios, news, nil
}
