package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/models"
	"github.com/workfree/pocket-lawyer/internal/store"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// ConsultationHandler handles consultation booking routes. Bookings have no
// delete operation.
type ConsultationHandler struct {
	Store *store.Store
}

// List handles GET /api/consultations
// @Summary List bookings
// @Tags Consultations
// @Produce json
// @Success 200 {array} models.ConsultationBooking
// @Failure 500 {object} utils.ErrorBody
// @Router /consultations [get]
func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Store.GetConsultationBookings())
}

// Get handles GET /api/consultations/:id
// @Summary Get a booking
// @Tags Consultations
// @Produce json
// @Param id path int true "Booking id"
// @Success 200 {object} models.ConsultationBooking
// @Failure 404 {object} utils.ErrorBody
// @Router /consultations/{id} [get]
func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	booking, ok := h.Store.GetConsultationBooking(id)
	if !ok {
		return utils.NotFoundResponse(c, "Booking not found")
	}
	return c.Status(fiber.StatusOK).JSON(booking)
}

// Create handles POST /api/consultations
// @Summary Create a booking
// @Description Create a booking; status always starts at "pending"
// @Tags Consultations
// @Accept json
// @Produce json
// @Param booking body models.InsertConsultationBooking true "Booking"
// @Success 200 {object} models.ConsultationBooking
// @Failure 400 {object} utils.ErrorBody
// @Router /consultations [post]
func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var in models.InsertConsultationBooking
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid booking data", errs)
	}

	return c.Status(fiber.StatusOK).JSON(h.Store.CreateConsultationBooking(in))
}

// Update handles PUT /api/consultations/:id
// @Summary Update a booking
// @Description Merge the supplied fields onto the stored booking; status transitions are not validated
// @Tags Consultations
// @Accept json
// @Produce json
// @Param id path int true "Booking id"
// @Param booking body models.UpdateConsultationBooking true "Partial booking"
// @Success 200 {object} models.ConsultationBooking
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /consultations/{id} [put]
func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	var in models.UpdateConsultationBooking
	if errs := decodeBody(c, &in); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid booking data", errs)
	}

	booking, ok := h.Store.UpdateConsultationBooking(id, in)
	if !ok {
		return utils.NotFoundResponse(c, "Booking not found")
	}
	return c.Status(fiber.StatusOK).JSON(booking)
}
