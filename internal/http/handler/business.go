package handler

import (
	"github.com/gofiber/fiber/v2"

	"bizreview/internal/model"
	"bizreview/internal/service"
)

// businessRequest uses pointers so absent attributes can be told apart from zero values.
type businessRequest struct {
	OwnerID       *int64         `json:"owner_id"`
	Name          *string        `json:"name"`
	StreetAddress *string        `json:"street_address"`
	City          *string        `json:"city"`
	State         *string        `json:"state"`
	ZipCode       *model.ZipCode `json:"zip_code"`
}

func (r businessRequest) complete() bool {
	return r.OwnerID != nil && r.Name != nil && r.StreetAddress != nil &&
		r.City != nil && r.State != nil && r.ZipCode != nil
}

func (r businessRequest) toModel(id int64) model.Business {
	return model.Business{
		ID:            id,
		OwnerID:       *r.OwnerID,
		Name:          *r.Name,
		StreetAddress: *r.StreetAddress,
		City:          *r.City,
		State:         *r.State,
		ZipCode:       *r.ZipCode,
	}
}

type businessResponse struct {
	model.Business
	Self string `json:"self"`
}

type businessListResponse struct {
	Entries []businessResponse `json:"entries"`
	Next    *string            `json:"next"`
}

func toBusinessResponses(c *fiber.Ctx, links Links, items []model.Business) []businessResponse {
	out := make([]businessResponse, 0, len(items))
	for _, b := range items {
		out = append(out, businessResponse{Business: b, Self: links.business(c, b.ID)})
	}
	return out
}

// CreateBusiness godoc
// @Summary Create a business
// @Tags businesses
// @Accept json
// @Produce json
// @Success 201 {object} businessResponse
// @Failure 400 {object} errorPayload
// @Router /businesses [post]
func CreateBusiness(svc service.BusinessService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req businessRequest
		if ok, err := decodeBody(c, &req); !ok {
			return err
		}
		if !req.complete() {
			return writeError(c, fiber.StatusBadRequest, "MISSING_ATTRIBUTES", msgMissingAttributes)
		}

		b, err := svc.Create(c.UserContext(), req.toModel(0))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(businessResponse{Business: *b, Self: links.business(c, b.ID)})
	}
}

// GetBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} businessResponse
// @Failure 404 {object} errorPayload
// @Router /businesses/{id} [get]
func GetBusiness(svc service.BusinessService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c, "id")
		if !ok {
			return err
		}
		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(businessResponse{Business: *b, Self: links.business(c, b.ID)})
	}
}

// ListBusinesses godoc
// @Summary List businesses
// @Description Pages through all businesses ordered by ID. next is null on the last page. Malformed offset or limit values fall back to the defaults.
// @Tags businesses
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size" default(3)
// @Success 200 {object} businessListResponse
// @Router /businesses [get]
func ListBusinesses(svc service.BusinessService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset := queryInt(c, "offset", 0)
		limit := queryInt(c, "limit", service.DefaultPageLimit)

		page, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}

		res := businessListResponse{Entries: toBusinessResponses(c, links, page.Items)}
		if page.HasNext {
			next := links.businessPage(c, page.Offset+page.Limit, page.Limit)
			res.Next = &next
		}
		return c.JSON(res)
	}
}

// UpdateBusiness godoc
// @Summary Replace a business
// @Tags businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} businessResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /businesses/{id} [put]
func UpdateBusiness(svc service.BusinessService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c, "id")
		if !ok {
			return err
		}
		var req businessRequest
		if ok, err := decodeBody(c, &req); !ok {
			return err
		}
		if !req.complete() {
			return writeError(c, fiber.StatusBadRequest, "MISSING_ATTRIBUTES", msgMissingAttributes)
		}

		b, err := svc.Update(c.UserContext(), req.toModel(id))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(businessResponse{Business: *b, Self: links.business(c, b.ID)})
	}
}

// DeleteBusiness godoc
// @Summary Delete a business and all of its reviews
// @Tags businesses
// @Param id path int true "Business ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /businesses/{id} [delete]
func DeleteBusiness(svc service.BusinessService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListOwnerBusinesses godoc
// @Summary List an owner's businesses
// @Tags businesses
// @Produce json
// @Param owner_id path int true "Owner ID"
// @Success 200 {array} businessResponse
// @Failure 404 {object} errorPayload
// @Router /owners/{owner_id}/businesses [get]
func ListOwnerBusinesses(svc service.BusinessService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok, err := pathID(c, "owner_id")
		if !ok {
			return err
		}
		items, err := svc.ListByOwner(c.UserContext(), ownerID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(toBusinessResponses(c, links, items))
	}
}
