package newshandlers

import (
	"context"

	newsservice "github.com/Black-And-White-Club/fantasy-league/app/modules/news/application"
)

type FakeService struct {
	CreateNewsFunc     func(ctx context.Context, authorID string, input newsservice.CreateNewsInput) (*newsservice.NewsInfo, error)
	GetNewsFunc        func(ctx context.Context, id int64) (*newsservice.NewsInfo, error)
	ListNewsFunc       func(ctx context.Context) ([]newsservice.NewsInfo, error)
	ListPlayerNewsFunc func(ctx context.Context, playerID int64) ([]newsservice.NewsInfo, error)
}

func (f *FakeService) CreateNews(ctx context.Context, authorID string, input newsservice.CreateNewsInput) (*newsservice.NewsInfo, error) {
	if f.CreateNewsFunc != nil {
		return f.CreateNewsFunc(ctx, authorID, input)
	}
	return &newsservice.NewsInfo{ID: 1, PlayerID: input.PlayerID, Text: input.Text, AuthorID: authorID}, nil
}

func (f *FakeService) GetNews(ctx context.Context, id int64) (*newsservice.NewsInfo, error) {
	if f.GetNewsFunc != nil {
		return f.GetNewsFunc(ctx, id)
	}
	return nil, newsservice.ErrNewsNotFound
}

func (f *FakeService) ListNews(ctx context.Context) ([]newsservice.NewsInfo, error) {
	if f.ListNewsFunc != nil {
		return f.ListNewsFunc(ctx)
	}
	return []newsservice.NewsInfo{}, nil
}

func (f *FakeService) ListPlayerNews(ctx context.Context, playerID int64) ([]newsservice.NewsInfo, error) {
	if f.ListPlayerNewsFunc != nil {
		return f.ListPlayerNewsFunc(ctx, playerID)
	}
	return []newsservice.NewsInfo{}, nil
}

func (f *FakeService) Designations() []newsservice.DesignationInfo {
	return []newsservice.DesignationInfo{{Code: "O", Description: "Out"}}
}

var _ newsservice.Service = (*FakeService)(nil)
