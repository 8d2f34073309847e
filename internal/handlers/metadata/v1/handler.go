// Package v1 implements the HTTP handlers exposing the metadata
// rendering operations. Data-URI endpoints return plain text; the rest
// return JSON.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/errors"
	"github.com/emberforge/adventurer-api/internal/services/metadata"
)

// HandlerConfig holds the dependencies for the metadata handler
type HandlerConfig struct {
	Service metadata.Service
}

// Validate ensures all required dependencies are provided
func (cfg *HandlerConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Service == nil {
		return errors.InvalidArgument("service cannot be nil")
	}
	return nil
}

// Handler serves the v1 metadata API
type Handler struct {
	service metadata.Service
}

// NewHandler creates a new metadata handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{service: cfg.Service}, nil
}

// Register mounts the v1 routes on the router
func (h *Handler) Register(r *mux.Router) {
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/adventurers/{id}/metadata", h.getMetadata).Methods(http.MethodGet)
	v1.HandleFunc("/adventurers/{id}/image", h.getImage).Methods(http.MethodGet)
	v1.HandleFunc("/adventurers/{id}/traits", h.getTraits).Methods(http.MethodGet)
	v1.HandleFunc("/adventurers/{id}/battle", h.getBattleStatus).Methods(http.MethodGet)
	v1.HandleFunc("/adventurers/{id}", h.putSnapshot).Methods(http.MethodPut)
	v1.HandleFunc("/adventurers/{id}", h.deleteSnapshot).Methods(http.MethodDelete)
	v1.HandleFunc("/description", h.getDescription).Methods(http.MethodGet)
}

func (h *Handler) getMetadata(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, hasPage, err := pageFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var dataURI string
	if hasPage {
		out, err := h.service.GetMetadataPage(r.Context(), &metadata.GetMetadataPageInput{TokenID: tokenID, Page: page})
		if err != nil {
			writeError(w, err)
			return
		}
		dataURI = out.DataURI
	} else {
		out, err := h.service.GetMetadata(r.Context(), &metadata.GetMetadataInput{TokenID: tokenID})
		if err != nil {
			writeError(w, err)
			return
		}
		dataURI = out.DataURI
	}

	writeText(w, dataURI)
}

func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	page, hasPage, err := pageFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var dataURI string
	if hasPage {
		out, err := h.service.GetImagePage(r.Context(), &metadata.GetImagePageInput{TokenID: tokenID, Page: page})
		if err != nil {
			writeError(w, err)
			return
		}
		dataURI = out.DataURI
	} else {
		out, err := h.service.GetImage(r.Context(), &metadata.GetImageInput{TokenID: tokenID})
		if err != nil {
			writeError(w, err)
			return
		}
		dataURI = out.DataURI
	}

	writeText(w, dataURI)
}

func (h *Handler) getTraits(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.service.GetTraits(r.Context(), &metadata.GetTraitsInput{TokenID: tokenID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"traits": out.Traits})
}

func (h *Handler) getBattleStatus(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.service.GetBattleStatus(r.Context(), &metadata.GetBattleStatusInput{TokenID: tokenID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"state":      out.State,
		"battleMode": out.BattleMode,
		"battleOnly": out.PageMode.BattleOnly,
		"pageCount":  out.PageCount,
	})
}

func (h *Handler) getDescription(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetDescription(r.Context(), &metadata.GetDescriptionInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeText(w, out.Description)
}

func (h *Handler) putSnapshot(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var snapshot adventurer.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, errors.InvalidArgumentf("invalid snapshot body: %v", err))
		return
	}

	out, err := h.service.PutSnapshot(r.Context(), &metadata.PutSnapshotInput{TokenID: tokenID, Snapshot: &snapshot})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Snapshot)
}

func (h *Handler) deleteSnapshot(w http.ResponseWriter, r *http.Request) {
	tokenID, err := tokenIDFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.DeleteSnapshot(r.Context(), &metadata.DeleteSnapshotInput{TokenID: tokenID}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func tokenIDFrom(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	tokenID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid token id %q", raw)
	}
	return tokenID, nil
}

// pageFrom parses the optional page query parameter. Values past the
// page range are accepted; the renderer clamps them to page 0.
func pageFrom(r *http.Request) (uint8, bool, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 0, false, nil
	}
	page, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, false, errors.InvalidArgumentf("invalid page %q", raw)
	}
	return uint8(page), true, nil
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, code.HTTPStatus(), map[string]string{
		"code":    code.String(),
		"message": errors.GetMessage(err),
	})
}
