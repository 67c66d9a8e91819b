// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             v7.35.1
// source: controlplane/v1/controlplane.proto

package controlplanev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DocumentStatusService_UpdateDocumentStatus_FullMethodName = "/controlplane.v1.DocumentStatusService/UpdateDocumentStatus"
)

// DocumentStatusServiceClient is the client API for DocumentStatusService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentStatusService is implemented by the control plane, which owns the
// documents table and per-tenant quota. The ingestion worker reports the
// lifecycle of each document through it and never touches the table directly.
type DocumentStatusServiceClient interface {
	UpdateDocumentStatus(ctx context.Context, in *UpdateDocumentStatusRequest, opts ...grpc.CallOption) (*DocumentStatusResponse, error)
}

type documentStatusServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentStatusServiceClient(cc grpc.ClientConnInterface) DocumentStatusServiceClient {
	return &documentStatusServiceClient{cc}
}

func (c *documentStatusServiceClient) UpdateDocumentStatus(ctx context.Context, in *UpdateDocumentStatusRequest, opts ...grpc.CallOption) (*DocumentStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DocumentStatusResponse)
	err := c.cc.Invoke(ctx, DocumentStatusService_UpdateDocumentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentStatusServiceServer is the server API for DocumentStatusService service.
// All implementations must embed UnimplementedDocumentStatusServiceServer
// for forward compatibility.
//
// DocumentStatusService is implemented by the control plane, which owns the
// documents table and per-tenant quota. The ingestion worker reports the
// lifecycle of each document through it and never touches the table directly.
type DocumentStatusServiceServer interface {
	UpdateDocumentStatus(context.Context, *UpdateDocumentStatusRequest) (*DocumentStatusResponse, error)
	mustEmbedUnimplementedDocumentStatusServiceServer()
}

// UnimplementedDocumentStatusServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentStatusServiceServer struct{}

func (UnimplementedDocumentStatusServiceServer) UpdateDocumentStatus(context.Context, *UpdateDocumentStatusRequest) (*DocumentStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateDocumentStatus not implemented")
}
func (UnimplementedDocumentStatusServiceServer) mustEmbedUnimplementedDocumentStatusServiceServer() {}
func (UnimplementedDocumentStatusServiceServer) testEmbeddedByValue()                               {}

// UnsafeDocumentStatusServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentStatusServiceServer will
// result in compilation errors.
type UnsafeDocumentStatusServiceServer interface {
	mustEmbedUnimplementedDocumentStatusServiceServer()
}

func RegisterDocumentStatusServiceServer(s grpc.ServiceRegistrar, srv DocumentStatusServiceServer) {
	// If the following call panics, it indicates UnimplementedDocumentStatusServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentStatusService_ServiceDesc, srv)
}

func _DocumentStatusService_UpdateDocumentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateDocumentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentStatusServiceServer).UpdateDocumentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentStatusService_UpdateDocumentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentStatusServiceServer).UpdateDocumentStatus(ctx, req.(*UpdateDocumentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentStatusService_ServiceDesc is the grpc.ServiceDesc for DocumentStatusService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentStatusService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "controlplane.v1.DocumentStatusService",
	HandlerType: (*DocumentStatusServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpdateDocumentStatus",
			Handler:    _DocumentStatusService_UpdateDocumentStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "controlplane/v1/controlplane.proto",
}
