package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/scanchain/scanchain/internal/adapter/handler/pb"
	"github.com/scanchain/scanchain/internal/core/domain"
	"github.com/scanchain/scanchain/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedRegistryServiceServer
	registry *service.RegistryService
}

func NewGRPCHandler(registry *service.RegistryService) *GRPCHandler {
	return &GRPCHandler{registry: registry}
}

func (h *GRPCHandler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	receipt, err := h.registry.Register(ctx, service.RegisterInput{
		ProductID: req.GetProductId(),
		Caller:    domain.Owner(req.GetOwner()),
		FileName:  req.GetFileName(),
		Data:      req.GetContent(),
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &pb.RegisterResponse{
		WasUpdate:   receipt.WasUpdate,
		ContentHash: receipt.ContentHash,
		BlobLocator: receipt.BlobLocator,
		Payload:     receipt.PayloadText,
	}, nil
}

func (h *GRPCHandler) Verify(ctx context.Context, req *pb.VerifyRequest) (*pb.VerifyResponse, error) {
	res, err := h.registry.Verify(ctx, req.GetProductId(), req.GetContent())
	if err != nil {
		return nil, grpcError(err)
	}
	out := &pb.VerifyResponse{
		Verified:    res.Verified,
		Reason:      string(res.Reason),
		StoredHash:  res.StoredHash,
		CurrentHash: res.CurrentHash,
		Owner:       string(res.Owner),
	}
	if !res.RegisteredAt.IsZero() {
		out.RegisteredAt = res.RegisteredAt.Unix()
	}
	return out, nil
}

func (h *GRPCHandler) Lookup(ctx context.Context, req *pb.LookupRequest) (*pb.LookupResponse, error) {
	rec, err := h.registry.Lookup(ctx, req.GetProductId())
	if err != nil {
		return nil, grpcError(err)
	}
	return &pb.LookupResponse{
		ProductId:    rec.ProductID,
		ContentHash:  rec.ContentHash,
		Owner:        string(rec.Owner),
		RegisteredAt: rec.RegisteredAt.Unix(),
	}, nil
}

func grpcError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrMalformedPayload):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrBackendUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
