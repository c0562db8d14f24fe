package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/arcanaland/boosterbox/internal/card"
	"github.com/arcanaland/boosterbox/internal/catalog"
	"github.com/arcanaland/boosterbox/internal/decklist"
	"github.com/arcanaland/boosterbox/internal/pack"
)

const qrSize = 512

// Handlers serves pack generation over HTTP
type Handlers struct {
	catalog  *catalog.Catalog
	imageDir string

	// The generator's random source is not safe for concurrent use
	mu        sync.Mutex
	generator *pack.Generator
}

// NewHandlers creates the API handlers
func NewHandlers(c *catalog.Catalog, g *pack.Generator, imageDir string) *Handlers {
	return &Handlers{
		catalog:   c,
		generator: g,
		imageDir:  imageDir,
	}
}

// OpenResponse is the body of a box or prerelease request
type OpenResponse struct {
	Mode         pack.Mode    `json:"mode"`
	Cards        []*card.Card `json:"cards"`
	Packs        []pack.Pack  `json:"packs"`
	Stats        pack.Stats   `json:"stats"`
	Notification string       `json:"notification"`
}

type decklistRequest struct {
	IDs []string `json:"ids"`
}

// RegisterRoutes registers all API routes
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/box", h.open(pack.ModeBox)).Methods("GET")
	r.HandleFunc("/api/prerelease", h.open(pack.ModePrerelease)).Methods("GET")
	r.HandleFunc("/api/cards/{id}", h.GetCard).Methods("GET")
	r.HandleFunc("/api/decklist", h.Decklist).Methods("POST")
	r.HandleFunc("/api/decklist/qr", h.DecklistQR).Methods("POST")
	r.HandleFunc("/healthz", h.Health).Methods("GET")

	if h.imageDir != "" {
		r.PathPrefix("/cards/").Handler(http.StripPrefix("/cards/", http.FileServer(http.Dir(h.imageDir))))
	}
}

// response helper function to send JSON responses
func response(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// error response helper function
func errorResponse(w http.ResponseWriter, status int, message string) {
	response(w, status, map[string]string{"error": message})
}

// Notification returns the banner text shown after opening packs
func Notification(mode pack.Mode) string {
	if mode == pack.ModePrerelease {
		return fmt.Sprintf("Opened %d packs (prerelease)!", pack.PrereleasePacks)
	}
	return fmt.Sprintf("Opened %d packs (full box)!", pack.PacksPerBox)
}

func (h *Handlers) open(mode pack.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		packs := h.generator.Open(mode, h.catalog.Cards)
		h.mu.Unlock()

		cards := pack.Flatten(packs)
		response(w, http.StatusOK, OpenResponse{
			Mode:         mode,
			Cards:        cards,
			Packs:        packs,
			Stats:        pack.Summarize(cards),
			Notification: Notification(mode),
		})
	}
}

// GetCard returns the details of one card
func (h *Handlers) GetCard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.catalog.Lookup(id)
	if err != nil {
		errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	response(w, http.StatusOK, c)
}

// Decklist formats the posted card ids as a decklist
func (h *Handlers) Decklist(w http.ResponseWriter, r *http.Request) {
	cards, ok := h.resolve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, decklist.Export(cards))
}

// DecklistQR returns the decklist of the posted card ids as a QR code PNG
func (h *Handlers) DecklistQR(w http.ResponseWriter, r *http.Request) {
	cards, ok := h.resolve(w, r)
	if !ok {
		return
	}
	png, err := decklist.QRPNG(decklist.Export(cards), qrSize)
	if err != nil {
		errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Health reports the catalog size
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response(w, http.StatusOK, map[string]any{
		"status": "ok",
		"cards":  h.catalog.Len(),
	})
}

// resolve decodes a decklist request and looks every id up in the catalog
func (h *Handlers) resolve(w http.ResponseWriter, r *http.Request) ([]*card.Card, bool) {
	var req decklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if len(req.IDs) == 0 {
		errorResponse(w, http.StatusBadRequest, "no card ids given")
		return nil, false
	}

	cards := make([]*card.Card, 0, len(req.IDs))
	for _, id := range req.IDs {
		c, err := h.catalog.Lookup(id)
		if err != nil {
			errorResponse(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		cards = append(cards, c)
	}
	return cards, true
}
