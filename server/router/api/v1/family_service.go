package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hrygo/famichat/store"
)

// MemberRequest carries member fields for create and update. Interests is
// the newline-delimited form the edit UI submits.
type MemberRequest struct {
	Name      string `json:"name"`
	Interests string `json:"interests"`
	DOB       string `json:"dob"`
	Notes     string `json:"notes"`
}

// ListMembers returns the persisted family document.
// GET /api/v1/members
func (s *APIV1Service) ListMembers(c echo.Context) error {
	doc, err := s.Store.Document()
	if err != nil {
		return storeHTTPError(err)
	}
	return c.JSON(http.StatusOK, doc.Members)
}

// CreateMember adds a member and persists the document.
// POST /api/v1/members
func (s *APIV1Service) CreateMember(c echo.Context) error {
	req := &MemberRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	member, err := s.Store.AddMember(req.Name, req.Interests, req.DOB, req.Notes)
	if err != nil {
		return storeHTTPError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

// UpdateMember rewrites interests and notes of an existing member.
// PATCH /api/v1/members/:name
func (s *APIV1Service) UpdateMember(c echo.Context) error {
	req := &MemberRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	member, err := s.Store.UpdateMember(c.Param("name"), req.Interests, req.Notes)
	if err != nil {
		return storeHTTPError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// DeleteMember removes a member. Deleting an absent member succeeds.
// DELETE /api/v1/members/:name
func (s *APIV1Service) DeleteMember(c echo.Context) error {
	if err := s.Store.DeleteMember(c.Param("name")); err != nil {
		return storeHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFamilyInfo returns the shared family information.
// GET /api/v1/family-info
func (s *APIV1Service) GetFamilyInfo(c echo.Context) error {
	doc, err := s.Store.Document()
	if err != nil {
		return storeHTTPError(err)
	}
	return c.JSON(http.StatusOK, doc.FamilyInfo)
}

// UpdateFamilyInfo replaces the shared family information.
// PUT /api/v1/family-info
func (s *APIV1Service) UpdateFamilyInfo(c echo.Context) error {
	info := store.FamilyInfo{}
	if err := c.Bind(&info); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := s.Store.UpdateFamilyInfo(info); err != nil {
		return storeHTTPError(err)
	}
	return c.JSON(http.StatusOK, info)
}

// storeHTTPError maps store errors onto HTTP statuses.
func storeHTTPError(err error) error {
	switch {
	case errors.Is(err, store.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateName):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
