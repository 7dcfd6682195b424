package handler

import (
	"github.com/abhishek622/entrystore/internal/repository"
	"go.uber.org/zap"
)

type Handler struct {
	Logger    *zap.Logger
	EntryRepo repository.EntryStore
}

func New(logger *zap.Logger, entries repository.EntryStore) *Handler {
	return &Handler{Logger: logger, EntryRepo: entries}
}
