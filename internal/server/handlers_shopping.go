package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hray3182/FamilyBoard/internal/models"
)

func (s *Server) handleListShoppingLists(c *gin.Context) {
	lists, err := s.shopping.GetListsByFamilyID(c.Request.Context(), c.Param("familyID"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load lists")
		return
	}
	respondOK(c, http.StatusOK, lists)
}

type createListRequest struct {
	Name      string  `json:"name"`
	CreatedBy *string `json:"created_by"`
}

func (s *Server) handleCreateShoppingList(c *gin.Context) {
	var req createListRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	list := &models.ShoppingList{
		FamilyID:  c.Param("familyID"),
		CreatedBy: req.CreatedBy,
		Name:      strings.TrimSpace(req.Name),
	}
	if err := s.shopping.CreateList(c.Request.Context(), list); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create list")
		return
	}
	respondOK(c, http.StatusCreated, list)
}

func (s *Server) handleDeleteShoppingList(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid list id")
		return
	}
	if err := s.shopping.DeleteList(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete list")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

// handleListShoppingItems returns the items of one list grouped by category,
// preserving the store's (category, created_at) order inside each group.
func (s *Server) handleListShoppingItems(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid list id")
		return
	}

	items, err := s.shopping.GetItemsByListID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load items")
		return
	}

	grouped := make(map[string][]*models.ShoppingItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	respondOK(c, http.StatusOK, gin.H{"items": items, "by_category": grouped})
}

type addItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

func (s *Server) handleAddShoppingItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid list id")
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity == "" {
		req.Quantity = "1"
	}

	item := &models.ShoppingItem{
		ListID:   id,
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		Quantity: req.Quantity,
	}
	if err := s.shopping.AddItem(c.Request.Context(), item); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to add item")
		return
	}
	respondOK(c, http.StatusCreated, item)
}

type setCheckedRequest struct {
	Checked *bool `json:"checked"`
}

func (s *Server) handleSetItemChecked(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var req setCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Checked == nil {
		respondError(c, http.StatusBadRequest, "checked is required")
		return
	}

	if err := s.shopping.SetItemChecked(c.Request.Context(), id, *req.Checked); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update item")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"item_id": id, "checked": *req.Checked})
}

func (s *Server) handleDeleteShoppingItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	if err := s.shopping.DeleteItem(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}
