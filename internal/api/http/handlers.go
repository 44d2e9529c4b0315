package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"tavolo/internal/domain"
	"tavolo/internal/handoff"
	"tavolo/internal/locator"
	"tavolo/internal/service"
)

type Handler struct {
	Orders service.OrderServiceInterface
	Stats  service.StatsProvider

	// ShareBase is the public ordering-page URL the share link and QR code
	// point at.
	ShareBase string
}

func NewHandler(orders service.OrderServiceInterface, stats service.StatsProvider, shareBase string) *Handler {
	return &Handler{Orders: orders, Stats: stats, ShareBase: shareBase}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu/search", h.searchMenu).Methods("POST")
	r.HandleFunc("/api/menu", h.loadFromLocator).Methods("GET")

	r.HandleFunc("/api/order", h.getOrder).Methods("GET")
	r.HandleFunc("/api/order/items/{itemId}", h.adjustItem).Methods("POST")
	r.HandleFunc("/api/order/filter", h.setFilter).Methods("PUT")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/checkout", h.consumeCheckout).Methods("GET")

	r.HandleFunc("/api/share", h.shareLink).Methods("GET")
	r.HandleFunc("/api/share/qrcode", h.shareQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{name}/stats", h.restaurantStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) searchMenu(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	h.loadMenu(w, r, payload.Name)
}

// loadFromLocator resolves the restaurant from the shareable URL parameters
// (canonical key or deprecated alias) and loads its menu.
func (h *Handler) loadFromLocator(w http.ResponseWriter, r *http.Request) {
	id, ok := locator.Read(r.URL.String())
	if !ok {
		http.Error(w, "Missing restaurant identifier", http.StatusBadRequest)
		return
	}
	h.loadMenu(w, r, id)
}

func (h *Handler) loadMenu(w http.ResponseWriter, r *http.Request, name string) {
	view, err := h.Orders.LoadMenu(r.Context(), sessionID(r), name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrRestaurantNotFound):
			http.Error(w, "Restaurant not found. Check the name and try again.", http.StatusNotFound)
		case errors.Is(err, service.ErrLoadInFlight), errors.Is(err, service.ErrStaleResponse):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "Failed to load the menu. Please retry.", http.StatusBadGateway)
		}
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.View(sessionID(r)))
}

func (h *Handler) adjustItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Orders.Adjust(sessionID(r), itemID, payload.Delta))
}

func (h *Handler) setFilter(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Orders.ToggleFilter(sessionID(r), payload.Category))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	payload, err := h.Orders.Checkout(r.Context(), sessionID(r))
	if err != nil {
		if errors.Is(err, handoff.ErrEmptyOrder) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Failed to hand the order off: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, payload)
}

func (h *Handler) consumeCheckout(w http.ResponseWriter, r *http.Request) {
	payload, ok, err := h.Orders.Consume(r.Context(), sessionID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "No pending order", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) shareLink(w http.ResponseWriter, r *http.Request) {
	id, ok := locator.Read(r.URL.String())
	if !ok {
		http.Error(w, "Missing restaurant identifier", http.StatusBadRequest)
		return
	}

	// History handling is the client's job; the endpoint just echoes the
	// requested mode back alongside the canonical URL.
	mode := "replace"
	if r.URL.Query().Get("push") == "true" {
		mode = "push"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":  locator.Save(h.ShareBase, id),
		"mode": mode,
	})
}

func (h *Handler) shareQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := locator.Read(r.URL.String())
	if !ok {
		http.Error(w, "Missing restaurant identifier", http.StatusBadRequest)
		return
	}

	png, err := qrcode.Encode(locator.Save(h.ShareBase, id), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) restaurantStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	stats, err := h.Stats.RestaurantStats(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
