package handler

import (
	"github.com/abhishek622/entrystore/pkg/model"
	"github.com/abhishek622/entrystore/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const errTitleContentRequired = "Title and content required"

// ListEntries returns every entry
// GET /api/entries
func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.EntryRepo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("list_entries: failed to fetch", zap.Error(err))
		response.InternalError(c, err.Error())
		return
	}

	response.OK(c, entries)
}

// CreateEntry stores a new entry and echoes it back with its id.
// Existing clients expect 200 here, not 201.
// POST /api/entries
func (h *Handler) CreateEntry(c *gin.Context) {
	var req model.CreateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Debug("create_entry: rejected body", zap.Error(err))
		response.BadRequest(c, errTitleContentRequired)
		return
	}

	entry, err := h.EntryRepo.Create(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		h.Logger.Error("create_entry: failed to create", zap.Error(err))
		response.InternalError(c, err.Error())
		return
	}

	h.Logger.Info("create_entry: entry created", zap.Int64("entry_id", entry.ID))

	response.OK(c, entry)
}

// DeleteEntry removes an entry. The id is passed to the store untouched; an id
// that matches nothing reports zero changes.
// DELETE /api/entries/:id
func (h *Handler) DeleteEntry(c *gin.Context) {
	id := c.Param("id")

	changes, err := h.EntryRepo.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("delete_entry: failed to delete",
			zap.String("entry_id", id),
			zap.Error(err),
		)
		response.InternalError(c, err.Error())
		return
	}

	h.Logger.Info("delete_entry: delete applied",
		zap.String("entry_id", id),
		zap.Int64("changes", changes),
	)

	response.Deleted(c, changes)
}
