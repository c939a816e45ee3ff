package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	catalogapp "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/application"
	catalogdomain "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
	memberapp "github.com/tanakrit-dev/pizzashop-pos/internal/member/application"
	memberdomain "github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/application"
	orderdomain "github.com/tanakrit-dev/pizzashop-pos/internal/order/domain"
)

// Handler is the register's HTTP surface. It only translates JSON to and
// from the application services; all business decisions stay below it.
type Handler struct {
	log      *slog.Logger
	checkout *application.Service
	catalog  *catalogapp.Service
	members  *memberapp.Service
	tracer   trace.Tracer
}

func NewHandler(log *slog.Logger, checkout *application.Service, catalog *catalogapp.Service, members *memberapp.Service) *Handler {
	return &Handler{
		log:      log,
		checkout: checkout,
		catalog:  catalog,
		members:  members,
		tracer:   otel.Tracer("pos-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", h.openSession)
	r.Get("/sessions/{id}", h.getSession)
	r.Delete("/sessions/{id}", h.closeSession)
	r.Post("/sessions/{id}/items", h.addItem)
	r.Delete("/sessions/{id}/items/{itemID}", h.removeItem)
	r.Delete("/sessions/{id}/items", h.clearCart)
	r.Put("/sessions/{id}/member", h.attachMember)
	r.Delete("/sessions/{id}/member", h.detachMember)
	r.Put("/sessions/{id}/dine-in", h.setDineIn)
	r.Post("/sessions/{id}/checkout", h.checkoutOrder)

	r.Get("/menu/items", h.listItems)
	r.Get("/menu/categories", h.listCategories)

	r.Post("/members", h.registerMember)
	r.Get("/members/{phone}", h.getMember)
	r.Post("/members/{phone}/renew", h.renewMember)

	r.Get("/reports/sales", h.salesReport)
	r.Get("/reports/popular", h.popularItems)

	return r
}

type openSessionReq struct {
	DineIn bool `json:"dine_in"`
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "OpenSession")
	defer span.End()

	var req openSessionReq
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid body")
			return
		}
	}

	snap, err := h.checkout.OpenSession(ctx, req.DineIn)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snapshotResponse(snap))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.checkout.Snapshot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.checkout.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addItemReq struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AddItem")
	defer span.End()

	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	snap, err := h.checkout.AddItem(ctx, chi.URLParam(r, "id"), req.ItemID, req.Quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RemoveItem")
	defer span.End()

	// quantity omitted or zero removes the whole line
	quantity := 0
	if q := r.URL.Query().Get("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid quantity")
			return
		}
		quantity = n
	}

	snap, err := h.checkout.RemoveItem(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	snap, err := h.checkout.ClearCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

type attachMemberReq struct {
	Phone string `json:"phone"`
}

func (h *Handler) attachMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AttachMember")
	defer span.End()

	var req attachMemberReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	snap, err := h.checkout.AttachMember(ctx, chi.URLParam(r, "id"), req.Phone)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

func (h *Handler) detachMember(w http.ResponseWriter, r *http.Request) {
	snap, err := h.checkout.DetachMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

type dineInReq struct {
	DineIn bool `json:"dine_in"`
}

func (h *Handler) setDineIn(w http.ResponseWriter, r *http.Request) {
	var req dineInReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	snap, err := h.checkout.SetDineIn(r.Context(), chi.URLParam(r, "id"), req.DineIn)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

func (h *Handler) checkoutOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Checkout")
	defer span.End()

	snap, err := h.checkout.Checkout(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse(snap))
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, menuItemResp(item))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

type registerMemberReq struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

func (h *Handler) registerMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegisterMember")
	defer span.End()

	var req registerMemberReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return
	}

	m, err := h.members.Register(ctx, req.Name, req.Phone, birthDate)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberResp(m))
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	m, err := h.members.FindByPhone(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, memberResp(m))
}

func (h *Handler) renewMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RenewMember")
	defer span.End()

	m, err := h.members.Renew(ctx, chi.URLParam(r, "phone"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, memberResp(m))
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if (from == "") != (to == "") {
		writeError(w, http.StatusBadRequest, "from and to must be given together")
		return
	}

	if from == "" {
		total, err := h.checkout.TotalSales(r.Context())
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"total_sales": total.StringFixed(2)})
		return
	}

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		writeError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		writeError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}

	total, err := h.checkout.SalesBetween(r.Context(), fromDate, toDate)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"from":        from,
		"to":          to,
		"total_sales": total.StringFixed(2),
	})
}

func (h *Handler) popularItems(w http.ResponseWriter, r *http.Request) {
	top := 5
	if q := r.URL.Query().Get("top"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid top")
			return
		}
		top = n
	}

	rows, err := h.checkout.PopularItems(r.Context(), top)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := make([]popularItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, popularItemResponse{
			Item:     menuItemResp(row.Item),
			Quantity: row.Quantity,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderdomain.ErrInvalidQuantity),
		errors.Is(err, memberapp.ErrInvalidPhone):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, memberdomain.ErrMemberNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, application.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, memberdomain.ErrDuplicatePhone):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, application.ErrMemberInactive),
		errors.Is(err, application.ErrMemberExpired),
		errors.Is(err, application.ErrEmptyOrder):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
