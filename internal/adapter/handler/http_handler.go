package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/scanchain/scanchain/internal/core/domain"
	"github.com/scanchain/scanchain/internal/core/service"
)

// ownerHeader carries the caller identity. Authentication of the
// identity itself happens upstream of this service.
const ownerHeader = "X-Owner"

const defaultScanLimit = 50

type HTTPHandler struct {
	registry       *service.RegistryService
	maxUploadBytes int64
}

func NewHTTPHandler(registry *service.RegistryService, maxUploadBytes int64) *HTTPHandler {
	return &HTTPHandler{registry: registry, maxUploadBytes: maxUploadBytes}
}

type registerResponse struct {
	ProductID   string `json:"productId"`
	ContentHash string `json:"contentHash"`
	WasUpdate   bool   `json:"wasUpdate"`
	BlobLocator string `json:"blobLocator"`
	Payload     string `json:"payload"`
}

type verifyRequest struct {
	ProductID   string `json:"productId"`
	BlobLocator string `json:"blobLocator"`
}

type verifyResponse struct {
	ProductID    string `json:"productId"`
	Verified     bool   `json:"verified"`
	Reason       string `json:"reason,omitempty"`
	StoredHash   string `json:"storedHash,omitempty"`
	CurrentHash  string `json:"currentHash,omitempty"`
	Owner        string `json:"owner,omitempty"`
	RegisteredAt int64  `json:"registeredAt,omitempty"`
}

type recordResponse struct {
	ProductID    string `json:"productId"`
	ContentHash  string `json:"contentHash"`
	Owner        string `json:"owner"`
	RegisteredAt int64  `json:"registeredAt"`
}

type scanRequest struct {
	Payload         string `json:"payload"`
	ScannerName     string `json:"scannerName"`
	ScannerLocation string `json:"scannerLocation"`
}

type scanResponse struct {
	ScanID    string         `json:"scanId"`
	ScannedAt int64          `json:"scannedAt"`
	Record    recordResponse `json:"record"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// Register handles multipart uploads: the document under "file", the
// product id and optional metadata as form fields.
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get(ownerHeader)
	if caller == "" {
		writeError(w, http.StatusUnauthorized, "missing "+ownerHeader+" header")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable file")
		return
	}

	metadata := map[string]string{}
	for _, key := range []string{"name", "manufacturer", "productType", "description"} {
		if v := r.FormValue(key); v != "" {
			metadata[key] = v
		}
	}

	receipt, err := h.registry.Register(r.Context(), service.RegisterInput{
		ProductID:   r.FormValue("productId"),
		Caller:      domain.Owner(caller),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Metadata:    metadata,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{
		ProductID:   receipt.ProductID,
		ContentHash: receipt.ContentHash,
		WasUpdate:   receipt.WasUpdate,
		BlobLocator: receipt.BlobLocator,
		Payload:     receipt.PayloadText,
	})
}

// Verify accepts either a multipart form (file plus productId or a
// scanned payload) or a JSON body naming a blob locator to fetch.
func (h *HTTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var res domain.VerificationResult
	var err error

	switch mediaType {
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		file, _, ferr := r.FormFile("file")
		if ferr != nil {
			writeError(w, http.StatusBadRequest, "file field is required")
			return
		}
		defer file.Close()
		data, rerr := io.ReadAll(file)
		if rerr != nil {
			writeError(w, http.StatusBadRequest, "unreadable file")
			return
		}
		if payloadText := r.FormValue("payload"); payloadText != "" {
			res, err = h.registry.VerifyPayload(r.Context(), payloadText, data)
		} else {
			res, err = h.registry.Verify(r.Context(), r.FormValue("productId"), data)
		}

	case "application/json":
		var req verifyRequest
		if derr := json.NewDecoder(r.Body).Decode(&req); derr != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		res, err = h.registry.VerifyLocator(r.Context(), req.ProductID, req.BlobLocator)

	default:
		writeError(w, http.StatusUnsupportedMediaType, "expected multipart/form-data or application/json")
		return
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toVerifyResponse(res))
}

func (h *HTTPHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.registry.Scan(r.Context(), req.Payload, req.ScannerName, req.ScannerLocation)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, scanResponse{
		ScanID:    receipt.Scan.ID,
		ScannedAt: receipt.Scan.ScannedAt.Unix(),
		Record:    toRecordResponse(receipt.Record),
	})
}

func (h *HTTPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	rec, err := h.registry.Lookup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

func (h *HTTPHandler) Payload(w http.ResponseWriter, r *http.Request) {
	text, err := h.registry.PayloadFor(r.Context(), r.PathValue("id"), nil)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"productId": r.PathValue("id"),
		"payload":   text,
	})
}

func (h *HTTPHandler) Scans(w http.ResponseWriter, r *http.Request) {
	limit := defaultScanLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	scans, err := h.registry.ScansFor(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	type scanEntry struct {
		ScanID          string `json:"scanId"`
		ScannerName     string `json:"scannerName"`
		ScannerLocation string `json:"scannerLocation,omitempty"`
		ScannedAt       int64  `json:"scannedAt"`
	}
	out := make([]scanEntry, 0, len(scans))
	for _, s := range scans {
		out = append(out, scanEntry{
			ScanID:          s.ID,
			ScannerName:     s.ScannerName,
			ScannerLocation: s.ScannerLocation,
			ScannedAt:       s.ScannedAt.Unix(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"productId": r.PathValue("id"),
		"scans":     out,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func toVerifyResponse(res domain.VerificationResult) verifyResponse {
	out := verifyResponse{
		ProductID:   res.ProductID,
		Verified:    res.Verified,
		Reason:      string(res.Reason),
		StoredHash:  res.StoredHash,
		CurrentHash: res.CurrentHash,
		Owner:       string(res.Owner),
	}
	if !res.RegisteredAt.IsZero() {
		out.RegisteredAt = res.RegisteredAt.Unix()
	}
	return out
}

func toRecordResponse(rec domain.ProductRecord) recordResponse {
	return recordResponse{
		ProductID:    rec.ProductID,
		ContentHash:  rec.ContentHash,
		Owner:        string(rec.Owner),
		RegisteredAt: rec.RegisteredAt.Unix(),
	}
}

// writeDomainError maps the error taxonomy onto HTTP statuses. A
// failed verification is never reported through this path; only
// request or infrastructure errors are.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMalformedPayload):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrBackendUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Retryable: true})
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
