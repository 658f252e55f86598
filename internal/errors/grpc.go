package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

var codesFromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(grpcCodes))
	for c, g := range grpcCodes {
		m[g] = c
	}
	return m
}()

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if g, ok := grpcCodes[c]; ok {
		return g
	}
	return codes.Unknown
}

// ToGRPCError converts an error to a gRPC status error. Errors that are
// already statuses pass through untouched.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	st := status.New(GetCode(err).GRPCCode(), GetMessage(err))

	// Metadata (upstream url, http_status, validation fields) rides along as a Struct detail
	if meta := GetMeta(err); len(meta) > 0 {
		if details, convErr := structpb.NewStruct(meta); convErr == nil {
			if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC status back into an *Error, restoring
// metadata from the first Struct detail
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code, ok := codesFromGRPC[st.Code()]
	if !ok {
		code = CodeInternal
	}
	customErr := New(code, st.Message())

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}
