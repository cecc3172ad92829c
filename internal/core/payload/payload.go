// Package payload encodes the verification payload carried by a
// scannable code. The wire form is a compact JSON object so the
// payload stays human-diffable and embeds directly as code content.
package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/scanchain/scanchain/internal/core/domain"
)

const (
	// Version is the payload format version written on encode and
	// required on decode.
	Version = "1.0"

	// MaxEncodedSize bounds the encoded payload. 512 bytes fits a
	// version 10 QR symbol in byte mode with error correction to spare.
	MaxEncodedSize = 512
)

// Payload is the portable verification artifact: which product to
// check and which registry deployment to ask. Metadata is carried
// opaquely and never interpreted here.
type Payload struct {
	ProductID       string
	RegistryLocator string
	Metadata        map[string]string
}

type wirePayload struct {
	Version         string            `json:"v"`
	ProductID       string            `json:"productId"`
	RegistryLocator string            `json:"registryLocator"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// Encode serializes p to its canonical text form. Map keys are sorted
// by the encoder, so equal payloads always encode to equal strings.
func Encode(p Payload) (string, error) {
	if p.ProductID == "" {
		return "", fmt.Errorf("%w: productId is required", domain.ErrInvalidArgument)
	}
	if p.RegistryLocator == "" {
		return "", fmt.Errorf("%w: registryLocator is required", domain.ErrInvalidArgument)
	}

	data, err := json.Marshal(wirePayload{
		Version:         Version,
		ProductID:       p.ProductID,
		RegistryLocator: p.RegistryLocator,
		Metadata:        p.Metadata,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	if len(data) > MaxEncodedSize {
		return "", fmt.Errorf("%w: encoded payload is %d bytes, limit %d",
			domain.ErrInvalidArgument, len(data), MaxEncodedSize)
	}
	return string(data), nil
}

// Decode parses text produced by Encode. Any input that is not a
// well-formed payload of the expected shape fails with
// domain.ErrMalformedPayload.
func Decode(text string) (Payload, error) {
	if len(text) > MaxEncodedSize {
		return Payload{}, fmt.Errorf("%w: payload is %d bytes, limit %d",
			domain.ErrMalformedPayload, len(text), MaxEncodedSize)
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()

	var w wirePayload
	if err := dec.Decode(&w); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, fmt.Errorf("%w: trailing data after payload", domain.ErrMalformedPayload)
	}

	if w.Version != Version {
		return Payload{}, fmt.Errorf("%w: unsupported version %q", domain.ErrMalformedPayload, w.Version)
	}
	if w.ProductID == "" {
		return Payload{}, fmt.Errorf("%w: productId is required", domain.ErrMalformedPayload)
	}
	if w.RegistryLocator == "" {
		return Payload{}, fmt.Errorf("%w: registryLocator is required", domain.ErrMalformedPayload)
	}

	return Payload{
		ProductID:       w.ProductID,
		RegistryLocator: w.RegistryLocator,
		Metadata:        w.Metadata,
	}, nil
}
