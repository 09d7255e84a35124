package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bizreview/internal/model"
	"bizreview/internal/service"
)

type createReviewRequest struct {
	UserID     *int64  `json:"user_id"`
	BusinessID *int64  `json:"business_id"`
	Stars      *int    `json:"stars"`
	ReviewText *string `json:"review_text"`
}

type updateReviewRequest struct {
	Stars      *int    `json:"stars"`
	ReviewText *string `json:"review_text"`
}

type reviewResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Business   string `json:"business"`
	Stars      int    `json:"stars"`
	ReviewText string `json:"review_text"`
	Self       string `json:"self"`
}

func newReviewResponse(c *fiber.Ctx, links Links, r model.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Business:   links.business(c, r.BusinessID),
		Stars:      r.Stars,
		ReviewText: r.ReviewText,
		Self:       links.review(c, r.ID),
	}
}

// CreateReview godoc
// @Summary Review a business
// @Description A user may review each business once.
// @Tags reviews
// @Accept json
// @Produce json
// @Success 201 {object} reviewResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /reviews [post]
func CreateReview(svc service.ReviewService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createReviewRequest
		if ok, err := decodeBody(c, &req); !ok {
			return err
		}
		if req.UserID == nil || req.BusinessID == nil || req.Stars == nil {
			return writeError(c, fiber.StatusBadRequest, "MISSING_ATTRIBUTES", msgMissingAttributes)
		}
		in := model.Review{UserID: *req.UserID, BusinessID: *req.BusinessID, Stars: *req.Stars}
		if req.ReviewText != nil {
			in.ReviewText = *req.ReviewText
		}

		r, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(newReviewResponse(c, links, *r))
	}
}

// GetReview godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} reviewResponse
// @Failure 404 {object} errorPayload
// @Router /reviews/{id} [get]
func GetReview(svc service.ReviewService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c, "id")
		if !ok {
			return err
		}
		r, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newReviewResponse(c, links, *r))
	}
}

// UpdateReview godoc
// @Summary Edit a review
// @Description stars is required. review_text is replaced only when present.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} reviewResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /reviews/{id} [put]
func UpdateReview(svc service.ReviewService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c, "id")
		if !ok {
			return err
		}
		var req updateReviewRequest
		if ok, err := decodeBody(c, &req); !ok {
			return err
		}
		if req.Stars == nil {
			return writeError(c, fiber.StatusBadRequest, "MISSING_ATTRIBUTES", msgMissingAttributes)
		}

		r, err := svc.Update(c.UserContext(), id, *req.Stars, req.ReviewText)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newReviewResponse(c, links, *r))
	}
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags reviews
// @Param id path int true "Review ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /reviews/{id} [delete]
func DeleteReview(svc service.ReviewService) fiber.Handler {
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

// ListUserReviews godoc
// @Summary List a user's reviews
// @Description Answers 404 with an empty array when the user has no reviews.
// @Tags reviews
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} reviewResponse
// @Failure 404 {array} reviewResponse
// @Router /users/{user_id}/reviews [get]
func ListUserReviews(svc service.ReviewService, links Links) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok, err := pathID(c, "user_id")
		if !ok {
			return err
		}
		items, err := svc.ListByUser(c.UserContext(), userID)
		if errors.Is(err, service.ErrNoReviewsForUser) {
			return c.Status(fiber.StatusNotFound).JSON([]reviewResponse{})
		}
		if err != nil {
			return writeServiceError(c, err)
		}

		out := make([]reviewResponse, 0, len(items))
		for _, r := range items {
			out = append(out, newReviewResponse(c, links, r))
		}
		return c.JSON(out)
	}
}
