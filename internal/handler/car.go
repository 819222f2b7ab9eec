package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// CarHandler handles HTTP requests for the fleet registry.
type CarHandler struct {
	fleetService *service.FleetService
}

// NewCarHandler creates a new CarHandler.
func NewCarHandler(fleetService *service.FleetService) *CarHandler {
	return &CarHandler{fleetService: fleetService}
}

// LocationPayload is the location block of a car payload.
type LocationPayload struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// AvailabilityPayload is the availability block of a car payload.
type AvailabilityPayload struct {
	DaysOfWeek  []int  `json:"days_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// AddCarRequest is the HTTP request body for listing a car.
type AddCarRequest struct {
	HostID       string              `json:"host_id"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
	Year         int                 `json:"year"`
	Color        string              `json:"color"`
	PlateNumber  string              `json:"plate_number"`
	PricePerHour float64             `json:"price_per_hour"`
	PricePerDay  float64             `json:"price_per_day"`
	Seats        int                 `json:"seats"`
	Transmission string              `json:"transmission"`
	FuelType     string              `json:"fuel_type"`
	Location     LocationPayload     `json:"location"`
	Availability AvailabilityPayload `json:"availability"`
	Features     []string            `json:"features"`
}

// UpdateCarRequest is the HTTP request body for a partial car update.
type UpdateCarRequest struct {
	Make         *string              `json:"make"`
	Model        *string              `json:"model"`
	PlateNumber  *string              `json:"plate_number"`
	Color        *string              `json:"color"`
	PricePerHour *float64             `json:"price_per_hour"`
	PricePerDay  *float64             `json:"price_per_day"`
	Features     []string             `json:"features"`
	Availability *AvailabilityPayload `json:"availability"`
}

// CarResponse is the HTTP response for car operations.
type CarResponse struct {
	ID           string              `json:"id"`
	HostID       string              `json:"host_id"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
	Year         int                 `json:"year"`
	Color        string              `json:"color"`
	PlateNumber  string              `json:"plate_number"`
	PricePerHour float64             `json:"price_per_hour"`
	PricePerDay  float64             `json:"price_per_day"`
	Seats        int                 `json:"seats"`
	Transmission string              `json:"transmission"`
	FuelType     string              `json:"fuel_type"`
	Location     LocationPayload     `json:"location"`
	Availability AvailabilityPayload `json:"availability"`
	Features     []string            `json:"features"`
	IsActive     bool                `json:"is_active"`
}

func toCarResponse(car *domain.Car) CarResponse {
	return CarResponse{
		ID:           car.ID,
		HostID:       car.HostID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		Color:        car.Color,
		PlateNumber:  car.PlateNumber,
		PricePerHour: car.PricePerHour,
		PricePerDay:  car.PricePerDay,
		Seats:        car.Seats,
		Transmission: string(car.Transmission),
		FuelType:     string(car.FuelType),
		Location: LocationPayload{
			Address: car.Location.Address,
			Lat:     car.Location.Lat,
			Lng:     car.Location.Lng,
		},
		Availability: AvailabilityPayload{
			DaysOfWeek:  car.Availability.DaysOfWeek,
			StartTime:   car.Availability.StartTime,
			EndTime:     car.Availability.EndTime,
			IsAvailable: car.Availability.IsAvailable,
		},
		Features: car.Features,
		IsActive: car.IsActive,
	}
}

// AddCar handles POST /v1/cars
func (h *CarHandler) AddCar(c *gin.Context) {
	var req AddCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	car, err := h.fleetService.AddCar(c.Request.Context(), service.AddCarRequest{
		HostID:       req.HostID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Color:        req.Color,
		PlateNumber:  req.PlateNumber,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Seats:        req.Seats,
		Transmission: domain.Transmission(req.Transmission),
		FuelType:     domain.FuelType(req.FuelType),
		Location: domain.Location{
			Address: req.Location.Address,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		},
		Availability: domain.Availability{
			DaysOfWeek:  req.Availability.DaysOfWeek,
			StartTime:   req.Availability.StartTime,
			EndTime:     req.Availability.EndTime,
			IsAvailable: req.Availability.IsAvailable,
		},
		Features: req.Features,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toCarResponse(car))
}

// UpdateCar handles PATCH /v1/cars/:id
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	svcReq := service.UpdateCarRequest{
		CarID:        c.Param("id"),
		Make:         req.Make,
		Model:        req.Model,
		PlateNumber:  req.PlateNumber,
		Color:        req.Color,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Features:     req.Features,
	}
	if req.Availability != nil {
		svcReq.Availability = &domain.Availability{
			DaysOfWeek:  req.Availability.DaysOfWeek,
			StartTime:   req.Availability.StartTime,
			EndTime:     req.Availability.EndTime,
			IsAvailable: req.Availability.IsAvailable,
		}
	}

	car, err := h.fleetService.UpdateCar(c.Request.Context(), svcReq)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCarResponse(car))
}

// DeleteCar handles DELETE /v1/cars/:id
func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.fleetService.DeleteCar(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"deleted": true})
}

// ToggleAvailability handles POST /v1/cars/:id/toggle-availability
func (h *CarHandler) ToggleAvailability(c *gin.Context) {
	car, err := h.fleetService.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCarResponse(car))
}

// GetCar handles GET /v1/cars/:id
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.fleetService.GetCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toCarResponse(car))
}

// ListAvailable handles GET /v1/cars
func (h *CarHandler) ListAvailable(c *gin.Context) {
	var filter repository.CarFilter

	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPricePerHour = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPricePerHour = &p
		}
	}
	filter.Transmission = domain.Transmission(c.Query("transmission"))
	filter.FuelType = domain.FuelType(c.Query("fuel_type"))

	cars, err := h.fleetService.ListAvailableCars(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		response = append(response, toCarResponse(car))
	}

	respondJSON(c, http.StatusOK, gin.H{"cars": response, "total": len(response)})
}

// ListHostCars handles GET /v1/hosts/:id/cars
func (h *CarHandler) ListHostCars(c *gin.Context) {
	cars, err := h.fleetService.ListHostCars(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		response = append(response, toCarResponse(car))
	}

	respondJSON(c, http.StatusOK, gin.H{"cars": response, "total": len(response)})
}
