// Package api implements the HTTP surface of the lessons storefront: lesson
// listing and search, order creation, and lesson spaces updates, plus the
// static image responder. Handlers validate locally, call the injected
// repositories, and translate failures into {error, message} JSON bodies.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"afterschool/pkg/lesson"
	"afterschool/pkg/order"
	"afterschool/pkg/otel"
)

// API holds the handler dependencies. Repositories are injected once at
// construction and shared read-only across requests.
type API struct {
	lessons     lesson.Repository
	orders      order.Repository
	log         zerolog.Logger
	imagesDir   string
	corsOrigins []string
	now         func() time.Time
}

// Option customizes an API.
type Option func(*API)

// WithImagesDir sets the directory served under /images/.
func WithImagesDir(dir string) Option {
	return func(a *API) { a.imagesDir = dir }
}

// WithCORSOrigins sets the allowed CORS origins.
func WithCORSOrigins(origins []string) Option {
	return func(a *API) { a.corsOrigins = origins }
}

// WithClock overrides the timestamp source. Tests use it to pin createdAt.
func WithClock(now func() time.Time) Option {
	return func(a *API) { a.now = now }
}

// New constructs the API around the given repositories.
func New(lessons lesson.Repository, orders order.Repository, log zerolog.Logger, opts ...Option) *API {
	a := &API{
		lessons:     lessons,
		orders:      orders,
		log:         log,
		imagesDir:   "images",
		corsOrigins: []string{"*"},
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router builds the full handler chain: request id, request logging, CORS,
// the API routes, the image responder, and the swagger UI.
func (a *API) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(a.requestID, a.requestLogger)

	r.HandleFunc("/", a.index).Methods(http.MethodGet)
	r.HandleFunc("/lessons", a.listLessons).Methods(http.MethodGet)
	r.HandleFunc("/search", a.searchLessons).Methods(http.MethodGet)
	r.HandleFunc("/orders", a.createOrder).Methods(http.MethodPost)
	r.HandleFunc("/lessons/{id}", a.updateLessonSpaces).Methods(http.MethodPut)
	r.PathPrefix("/images/").HandlerFunc(a.serveImage).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	cors := handlers.CORS(
		handlers.AllowedOrigins(a.corsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(r)
}

// listLessons returns every lesson, unfiltered and unpaginated.
// @Summary List lessons
// @Produce json
// @Success 200 {array} lesson.Lesson
// @Failure 500 {object} errorResponse
// @Router /lessons [get]
func (a *API) listLessons(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listLessons")
	defer span.End()

	lessons, err := a.lessons.FindAll(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("list lessons")
		a.writeError(w, http.StatusInternalServerError, "Failed to fetch lessons", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

// searchLessons returns lessons matching the q parameter across subject,
// location, price text, and exact spaces. An empty q lists everything.
// @Summary Search lessons
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} lesson.Lesson
// @Failure 500 {object} errorResponse
// @Router /search [get]
func (a *API) searchLessons(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "searchLessons")
	defer span.End()

	f := lesson.NewFilter(r.URL.Query().Get("q"))
	lessons, err := a.lessons.Search(ctx, f)
	if err != nil {
		a.log.Error().Err(err).Str("q", f.Term).Msg("search lessons")
		a.writeError(w, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

// createOrderRequest is the order submission body. All four fields are
// required and must be non-zero; note that a spaces of 0 is rejected by this
// rule while negative values pass, matching the storefront contract.
type createOrderRequest struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	LessonIDs []string `json:"lessonIds"`
	Spaces    int      `json:"spaces"`
}

type createOrderResponse struct {
	Message string      `json:"message"`
	OrderID string      `json:"orderId"`
	Order   order.Order `json:"order"`
}

// createOrder validates, timestamps, and persists a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order"
// @Success 201 {object} createOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /orders [post]
func (a *API) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrder")
	defer span.End()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Name == "" || req.Phone == "" || len(req.LessonIDs) == 0 || req.Spaces == 0 {
		a.writeError(w, http.StatusBadRequest, "Missing required fields",
			"Please provide name, phone, lessonIds, and spaces")
		return
	}

	o := order.Order{
		Name:      req.Name,
		Phone:     req.Phone,
		LessonIDs: req.LessonIDs,
		Spaces:    req.Spaces,
		CreatedAt: a.now(),
	}
	id, err := a.orders.Insert(ctx, o)
	if err != nil {
		a.log.Error().Err(err).Msg("create order")
		a.writeError(w, http.StatusInternalServerError, "Failed to create order", err.Error())
		return
	}
	o.ID = id
	writeJSON(w, http.StatusCreated, createOrderResponse{
		Message: "Order created successfully",
		OrderID: id,
		Order:   o,
	})
}

// updateSpacesRequest carries the new spaces value. A pointer distinguishes a
// missing field from an explicit 0; zero is a valid capacity.
type updateSpacesRequest struct {
	Spaces *int `json:"spaces"`
}

type updateSpacesResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// updateLessonSpaces overwrites a lesson's spaces with the supplied value.
// @Summary Update lesson spaces
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param body body updateSpacesRequest true "New spaces value"
// @Success 200 {object} updateSpacesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /lessons/{id} [put]
func (a *API) updateLessonSpaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateLessonSpaces")
	defer span.End()

	id := mux.Vars(r)["id"]
	var req updateSpacesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Spaces == nil || *req.Spaces < 0 {
		a.writeError(w, http.StatusBadRequest, "Invalid spaces value",
			"Spaces must be a non-negative number")
		return
	}

	modified, err := a.lessons.UpdateSpaces(ctx, id, *req.Spaces)
	if err != nil {
		if errors.Is(err, lesson.ErrNotFound) {
			a.writeError(w, http.StatusNotFound, "Lesson not found", "")
			return
		}
		a.log.Error().Err(err).Str("lesson_id", id).Msg("update lesson spaces")
		a.writeError(w, http.StatusInternalServerError, "Failed to update lesson", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updateSpacesResponse{
		Message:       "Lesson updated successfully",
		ModifiedCount: modified,
	})
}

// index describes the API so a bare GET / confirms the service is up.
// @Summary API description
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (a *API) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "After-School Lessons API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"GET /lessons":          "Retrieve all lessons from database",
			"GET /search?q={query}": "Search lessons by subject, location, price, or spaces",
			"POST /orders":          "Create new order (requires: name, phone, lessonIds, spaces)",
			"PUT /lessons/{id}":     "Update lesson spaces to specific value",
			"GET /images/{file}":    "Serve lesson images from static directory",
		},
		"database": map[string]interface{}{
			"collections": []string{"lessons", "orders"},
		},
	})
}
