package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

// InventoryHandler handles HTTP requests for chain, hotel and room
// management plus the public catalog reads.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// CreateChain handles POST /myspace/create-hotel-chain.
//
// @Summary      Create the caller's hotel chain with its initial hotels
// @Tags         myspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createChainRequest  true  "Chain details"
// @Success      201   {object}  createChainResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /myspace/create-hotel-chain [post]
func (h *InventoryHandler) CreateChain(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createChainRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	chain, hotels, err := h.service.CreateChain(c.Request().Context(), adminID, ports.CreateChainInput{
		Name:   req.Name,
		Hotels: toHotelInputs(req.Hotels),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createChainResponse{Chain: chain, Hotels: hotels})
}

// AddHotels handles POST /myspace/add-hotels-to-chain.
// Hotels whose name already exists in the chain are skipped, not rejected.
//
// @Summary      Add hotels to the caller's chain
// @Tags         myspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addHotelsRequest  true  "Hotels to add"
// @Success      201   {object}  addHotelsResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /myspace/add-hotels-to-chain [post]
func (h *InventoryHandler) AddHotels(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addHotelsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.AddHotelsToChain(c.Request().Context(), adminID, toHotelInputs(req.Hotels))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, addHotelsResponse{Added: result.Added, Skipped: result.Skipped})
}

// MyHotels handles GET /myspace/my-hotels.
//
// @Summary      List the caller's hotels with their rooms
// @Tags         myspace
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.HotelWithRooms
// @Failure      404  {object}  map[string]string
// @Router       /myspace/my-hotels [get]
func (h *InventoryHandler) MyHotels(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	hotels, err := h.service.MyHotels(c.Request().Context(), adminID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, hotels)
}

// UpdateHotel handles PUT /myspace/my-hotels/:hotelId.
// Empty fields in the payload keep their stored values.
//
// @Summary      Update one of the caller's hotels
// @Tags         myspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path      string              true  "Hotel id"
// @Param        body     body      updateHotelRequest  true  "Fields to change"
// @Success      200      {object}  domain.Hotel
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /myspace/my-hotels/{hotelId} [put]
func (h *InventoryHandler) UpdateHotel(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	hotel, err := h.service.UpdateHotel(c.Request().Context(), adminID, c.Param("hotelId"), toUpdateHotelInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, hotel)
}

// DeleteHotel handles DELETE /myspace/my-hotels/:hotelId.
// Deletes the hotel's rooms and detaches it from the chain.
//
// @Summary      Delete one of the caller's hotels
// @Tags         myspace
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path      string  true  "Hotel id"
// @Success      200      {object}  messageResponse
// @Failure      404      {object}  map[string]string
// @Router       /myspace/my-hotels/{hotelId} [delete]
func (h *InventoryHandler) DeleteHotel(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteHotel(c.Request().Context(), adminID, c.Param("hotelId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "hotel deleted"})
}

// AddRoom handles POST /myspace/add-room/:hotelId.
//
// @Summary      Add a room to one of the caller's hotels
// @Tags         myspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path      string       true  "Hotel id"
// @Param        body     body      roomRequest  true  "Room details"
// @Success      201      {object}  domain.Room
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /myspace/add-room/{hotelId} [post]
func (h *InventoryHandler) AddRoom(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.AddRoom(c.Request().Context(), adminID, c.Param("hotelId"), toRoomInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /myspace/my-hotels/:hotelId/rooms/:roomId.
// Renaming to a name already used in the hotel is rejected with 409.
//
// @Summary      Update a room in one of the caller's hotels
// @Tags         myspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path      string             true  "Hotel id"
// @Param        roomId   path      string             true  "Room id"
// @Param        body     body      updateRoomRequest  true  "Fields to change"
// @Success      200      {object}  domain.Room
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /myspace/my-hotels/{hotelId}/rooms/{roomId} [put]
func (h *InventoryHandler) UpdateRoom(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.UpdateRoom(c.Request().Context(), adminID, c.Param("hotelId"), c.Param("roomId"), toUpdateRoomInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /myspace/my-hotels/:hotelId/rooms/:roomId.
//
// @Summary      Delete a room from one of the caller's hotels
// @Tags         myspace
// @Produce      json
// @Security     BearerAuth
// @Param        hotelId  path      string  true  "Hotel id"
// @Param        roomId   path      string  true  "Room id"
// @Success      200      {object}  messageResponse
// @Failure      404      {object}  map[string]string
// @Router       /myspace/my-hotels/{hotelId}/rooms/{roomId} [delete]
func (h *InventoryHandler) DeleteRoom(c echo.Context) error {
	adminID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteRoom(c.Request().Context(), adminID, c.Param("hotelId"), c.Param("roomId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "room deleted"})
}

// --- Public catalog reads ---

// HotelsWithRoomCount handles GET /myspace/hotels-with-room-count.
//
// @Summary      List all hotels with their room counts
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.HotelRoomCount
// @Router       /myspace/hotels-with-room-count [get]
func (h *InventoryHandler) HotelsWithRoomCount(c echo.Context) error {
	hotels, err := h.service.HotelsWithRoomCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// Hotels handles GET /hotels — all hotels joined with their rooms' reviews
// and the occurrence-weighted average rating.
//
// @Summary      List all hotels with reviews and average rating
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  ports.HotelRatingsView
// @Router       /hotels [get]
func (h *InventoryHandler) Hotels(c echo.Context) error {
	hotels, err := h.service.HotelsWithRatings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}

// HotelRooms handles GET /hotel/:hotelId/rooms.
//
// @Summary      List a hotel's rooms with ratings and reviews
// @Tags         catalog
// @Produce      json
// @Param        hotelId  path      string  true  "Hotel id"
// @Success      200      {object}  hotelRoomsResponse
// @Failure      404      {object}  map[string]string
// @Router       /hotel/{hotelId}/rooms [get]
func (h *InventoryHandler) HotelRooms(c echo.Context) error {
	hotel, rooms, err := h.service.RoomsOfHotelWithRatings(c.Request().Context(), c.Param("hotelId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotelRoomsResponse{Hotel: hotel, Rooms: rooms})
}

// Room handles GET /rooms/:roomId.
//
// @Summary      Get a room with its ratings, reviews and hotel location
// @Tags         catalog
// @Produce      json
// @Param        roomId  path      string  true  "Room id"
// @Success      200     {object}  ports.RoomDetailView
// @Failure      404     {object}  map[string]string
// @Router       /rooms/{roomId} [get]
func (h *InventoryHandler) Room(c echo.Context) error {
	room, err := h.service.RoomWithRatings(c.Request().Context(), c.Param("roomId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Search handles GET /search. All present query parameters are combined
// with AND using exact matching.
//
// @Summary      Search hotels by chain, city, country, name or room type
// @Tags         catalog
// @Produce      json
// @Param        chain      query     string  false  "Chain id"
// @Param        city       query     string  false  "City (exact match)"
// @Param        country    query     string  false  "Country (exact match)"
// @Param        roomType   query     string  false  "Room type (Suite, Simple, Double, Deluxe)"
// @Param        hotelName  query     string  false  "Hotel name (exact match)"
// @Success      200        {array}   domain.Hotel
// @Failure      400        {object}  map[string]string
// @Router       /search [get]
func (h *InventoryHandler) Search(c echo.Context) error {
	criteria := domain.HotelSearch{
		ChainID:  c.QueryParam("chain"),
		City:     c.QueryParam("city"),
		Country:  c.QueryParam("country"),
		RoomType: c.QueryParam("roomType"),
		Name:     c.QueryParam("hotelName"),
	}

	hotels, err := h.service.Search(c.Request().Context(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hotels)
}
