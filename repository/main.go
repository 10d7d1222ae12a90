package repository

import (
	"github.com/ola007-cpu/webApp/infra"
)

type Repository struct {
	VideoRepo   *VideoRepository
	CommentRepo *CommentRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		VideoRepo:   NewVideoRepository(infra.Postgres),
		CommentRepo: NewCommentRepository(infra.Postgres),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
