package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scanchain/scanchain/internal/adapter/blob"
	"github.com/scanchain/scanchain/internal/adapter/storage"
	"github.com/scanchain/scanchain/internal/core/service"
)

func newTestServer(t *testing.T) (*httptest.Server, *service.RegistryService) {
	t.Helper()

	store := storage.NewMemoryAdapter()
	blobs, err := blob.NewFSStore(t.TempDir(), "http://localhost:8080/blobs")
	if err != nil {
		t.Fatalf("blob store setup failed: %v", err)
	}
	registry := service.NewRegistryService(store, blobs, store, nil, "registry.local/main", 64)
	t.Cleanup(registry.Close)

	h := NewHTTPHandler(registry, 10<<20)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("POST /api/register", h.Register)
	mux.HandleFunc("POST /api/verify", h.Verify)
	mux.HandleFunc("POST /api/scan", h.Scan)
	mux.HandleFunc("GET /api/products/{id}", h.Lookup)
	mux.HandleFunc("GET /api/products/{id}/payload", h.Payload)
	mux.HandleFunc("GET /api/products/{id}/scans", h.Scans)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, registry
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		fw.Write(data)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func register(t *testing.T, srv *httptest.Server, owner, productID string, data []byte) registerResponse {
	t.Helper()

	body, contentType := multipartBody(t, map[string]string{
		"productId": productID,
		"name":      "Widget",
	}, "file", "widget.pdf", data)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/register", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(ownerHeader, owner)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register returned status %d", resp.StatusCode)
	}

	var out registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("register response not JSON: %v", err)
	}
	return out
}

func TestRegisterVerifyFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	doc := []byte("authentic document")

	reg := register(t, srv, "0xA", "SKU-42", doc)
	if reg.ProductID != "SKU-42" || reg.WasUpdate || reg.ContentHash == "" || reg.Payload == "" {
		t.Fatalf("unexpected register response %+v", reg)
	}

	// The same bytes verify; tampered bytes do not.
	cases := []struct {
		name     string
		data     []byte
		verified bool
		reason   string
	}{
		{"authentic", doc, true, ""},
		{"tampered", []byte("forged document"), false, "hash_mismatch"},
	}
	for _, tc := range cases {
		body, contentType := multipartBody(t, map[string]string{"productId": "SKU-42"}, "file", "check.pdf", tc.data)
		resp, err := http.Post(srv.URL+"/api/verify", contentType, body)
		if err != nil {
			t.Fatalf("%s: verify request failed: %v", tc.name, err)
		}
		var out verifyResponse
		json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: verify returned status %d", tc.name, resp.StatusCode)
		}
		if out.Verified != tc.verified {
			t.Errorf("%s: verified = %v, want %v", tc.name, out.Verified, tc.verified)
		}
		if out.Reason != tc.reason {
			t.Errorf("%s: reason = %q, want %q", tc.name, out.Reason, tc.reason)
		}
		if tc.verified && out.Owner != "0xA" {
			t.Errorf("%s: owner = %q, want 0xA", tc.name, out.Owner)
		}
	}
}

func TestVerifyByLocator(t *testing.T) {
	srv, _ := newTestServer(t)
	reg := register(t, srv, "0xA", "SKU-LOC", []byte("stored bytes"))

	body, _ := json.Marshal(verifyRequest{ProductID: "SKU-LOC", BlobLocator: reg.BlobLocator})
	resp, err := http.Post(srv.URL+"/api/verify", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("verify request failed: %v", err)
	}
	defer resp.Body.Close()

	var out verifyResponse
	json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK || !out.Verified {
		t.Errorf("locator verify: status %d, response %+v", resp.StatusCode, out)
	}
}

func TestVerifyUnregisteredProduct(t *testing.T) {
	srv, _ := newTestServer(t)

	body, contentType := multipartBody(t, map[string]string{"productId": "never-seen"}, "file", "f.pdf", []byte("x"))
	resp, err := http.Post(srv.URL+"/api/verify", contentType, body)
	if err != nil {
		t.Fatalf("verify request failed: %v", err)
	}
	defer resp.Body.Close()

	var out verifyResponse
	json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for a clean not-found verdict, got %d", resp.StatusCode)
	}
	if out.Verified || out.Reason != "not_found" {
		t.Errorf("unexpected verdict %+v", out)
	}
}

func TestScanRecordsAndReturnsRecord(t *testing.T) {
	srv, _ := newTestServer(t)
	reg := register(t, srv, "0xA", "SKU-SCAN", []byte("scan target"))

	body, _ := json.Marshal(scanRequest{Payload: reg.Payload, ScannerName: "gate-3", ScannerLocation: "warehouse"})
	resp, err := http.Post(srv.URL+"/api/scan", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("scan request failed: %v", err)
	}
	defer resp.Body.Close()

	var out scanResponse
	json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scan returned status %d", resp.StatusCode)
	}
	if out.ScanID == "" || out.Record.ProductID != "SKU-SCAN" || out.Record.ContentHash != reg.ContentHash {
		t.Errorf("unexpected scan response %+v", out)
	}

	resp2, err := http.Get(srv.URL + "/api/products/SKU-SCAN/scans")
	if err != nil {
		t.Fatalf("scans request failed: %v", err)
	}
	defer resp2.Body.Close()
	var listing struct {
		ProductID string `json:"productId"`
		Scans     []struct {
			ScanID      string `json:"scanId"`
			ScannerName string `json:"scannerName"`
		} `json:"scans"`
	}
	json.NewDecoder(resp2.Body).Decode(&listing)
	if len(listing.Scans) != 1 || listing.Scans[0].ScannerName != "gate-3" {
		t.Errorf("unexpected scan listing %+v", listing)
	}
}

func TestLookupAndPayloadEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	reg := register(t, srv, "0xB", "SKU-LOOKUP", []byte("lookup target"))

	resp, err := http.Get(srv.URL + "/api/products/SKU-LOOKUP")
	if err != nil {
		t.Fatalf("lookup request failed: %v", err)
	}
	defer resp.Body.Close()
	var rec recordResponse
	json.NewDecoder(resp.Body).Decode(&rec)
	if resp.StatusCode != http.StatusOK || rec.ContentHash != reg.ContentHash || rec.Owner != "0xB" {
		t.Errorf("lookup: status %d, record %+v", resp.StatusCode, rec)
	}

	resp2, err := http.Get(srv.URL + "/api/products/SKU-LOOKUP/payload")
	if err != nil {
		t.Fatalf("payload request failed: %v", err)
	}
	defer resp2.Body.Close()
	var pl map[string]string
	json.NewDecoder(resp2.Body).Decode(&pl)
	if resp2.StatusCode != http.StatusOK || pl["payload"] == "" {
		t.Errorf("payload endpoint: status %d, body %v", resp2.StatusCode, pl)
	}
}

func TestStatusCodeMapping(t *testing.T) {
	srv, _ := newTestServer(t)
	register(t, srv, "0xA", "SKU-OWNED", []byte("original"))

	t.Run("missing owner header", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"productId": "p"}, "file", "f", []byte("x"))
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/register", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("foreign owner forbidden", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"productId": "SKU-OWNED"}, "file", "f", []byte("takeover"))
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/register", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(ownerHeader, "0xEVE")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("status = %d, want 403", resp.StatusCode)
		}
	})

	t.Run("missing product not found", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/products/absent")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("empty product id rejected", func(t *testing.T) {
		body, contentType := multipartBody(t, nil, "file", "f", []byte("x"))
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/register", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(ownerHeader, "0xA")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("malformed scan payload rejected", func(t *testing.T) {
		body, _ := json.Marshal(scanRequest{Payload: "not json", ScannerName: "gate"})
		resp, err := http.Post(srv.URL+"/api/scan", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("unsupported verify media type", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/verify", "text/plain", strings.NewReader("hello"))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnsupportedMediaType {
			t.Errorf("status = %d, want 415", resp.StatusCode)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out)
	if out["status"] != "ok" {
		t.Errorf("unexpected body %v", out)
	}
}
