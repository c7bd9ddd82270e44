// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: regs/v1/regs.proto

package regsv1

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
	DocumentsService_RegisterDocument_FullMethodName  = "/regs.v1.DocumentsService/RegisterDocument"
	DocumentsService_ProcessDocument_FullMethodName   = "/regs.v1.DocumentsService/ProcessDocument"
	DocumentsService_GetDocumentStatus_FullMethodName = "/regs.v1.DocumentsService/GetDocumentStatus"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentsService manages regulation document intake and processing.
type DocumentsServiceClient interface {
	// RegisterDocument stores a new source document and optionally queues it
	// for extraction.
	RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error)
	// ProcessDocument runs the extraction pipeline for a registered document.
	ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error)
	GetDocumentStatus(ctx context.Context, in *GetDocumentStatusRequest, opts ...grpc.CallOption) (*GetDocumentStatusResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_RegisterDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ProcessDocument(ctx context.Context, in *ProcessDocumentRequest, opts ...grpc.CallOption) (*ProcessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ProcessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocumentStatus(ctx context.Context, in *GetDocumentStatusRequest, opts ...grpc.CallOption) (*GetDocumentStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentStatusResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocumentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
//
// DocumentsService manages regulation document intake and processing.
type DocumentsServiceServer interface {
	// RegisterDocument stores a new source document and optionally queues it
	// for extraction.
	RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error)
	// ProcessDocument runs the extraction pipeline for a registered document.
	ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error)
	GetDocumentStatus(context.Context, *GetDocumentStatusRequest) (*GetDocumentStatusResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ProcessDocument(context.Context, *ProcessDocumentRequest) (*ProcessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocumentStatus(context.Context, *GetDocumentStatusRequest) (*GetDocumentStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentStatus not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_RegisterDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).RegisterDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_RegisterDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).RegisterDocument(ctx, req.(*RegisterDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ProcessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ProcessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ProcessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ProcessDocument(ctx, req.(*ProcessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocumentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocumentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocumentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocumentStatus(ctx, req.(*GetDocumentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "regs.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterDocument",
			Handler:    _DocumentsService_RegisterDocument_Handler,
		},
		{
			MethodName: "ProcessDocument",
			Handler:    _DocumentsService_ProcessDocument_Handler,
		},
		{
			MethodName: "GetDocumentStatus",
			Handler:    _DocumentsService_GetDocumentStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "regs/v1/regs.proto",
}

const (
	RegulationsService_ListWaterBodies_FullMethodName   = "/regs.v1.RegulationsService/ListWaterBodies"
	RegulationsService_ListRegulations_FullMethodName   = "/regs.v1.RegulationsService/ListRegulations"
	RegulationsService_ExportRegulations_FullMethodName = "/regs.v1.RegulationsService/ExportRegulations"
)

// RegulationsServiceClient is the client API for RegulationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RegulationsService reads extracted regulation data.
type RegulationsServiceClient interface {
	ListWaterBodies(ctx context.Context, in *ListWaterBodiesRequest, opts ...grpc.CallOption) (*ListWaterBodiesResponse, error)
	ListRegulations(ctx context.Context, in *ListRegulationsRequest, opts ...grpc.CallOption) (*ListRegulationsResponse, error)
	ExportRegulations(ctx context.Context, in *ExportRegulationsRequest, opts ...grpc.CallOption) (*ExportRegulationsResponse, error)
}

type regulationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRegulationsServiceClient(cc grpc.ClientConnInterface) RegulationsServiceClient {
	return &regulationsServiceClient{cc}
}

func (c *regulationsServiceClient) ListWaterBodies(ctx context.Context, in *ListWaterBodiesRequest, opts ...grpc.CallOption) (*ListWaterBodiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWaterBodiesResponse)
	err := c.cc.Invoke(ctx, RegulationsService_ListWaterBodies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *regulationsServiceClient) ListRegulations(ctx context.Context, in *ListRegulationsRequest, opts ...grpc.CallOption) (*ListRegulationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRegulationsResponse)
	err := c.cc.Invoke(ctx, RegulationsService_ListRegulations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *regulationsServiceClient) ExportRegulations(ctx context.Context, in *ExportRegulationsRequest, opts ...grpc.CallOption) (*ExportRegulationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportRegulationsResponse)
	err := c.cc.Invoke(ctx, RegulationsService_ExportRegulations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegulationsServiceServer is the server API for RegulationsService service.
// All implementations must embed UnimplementedRegulationsServiceServer
// for forward compatibility.
//
// RegulationsService reads extracted regulation data.
type RegulationsServiceServer interface {
	ListWaterBodies(context.Context, *ListWaterBodiesRequest) (*ListWaterBodiesResponse, error)
	ListRegulations(context.Context, *ListRegulationsRequest) (*ListRegulationsResponse, error)
	ExportRegulations(context.Context, *ExportRegulationsRequest) (*ExportRegulationsResponse, error)
	mustEmbedUnimplementedRegulationsServiceServer()
}

// UnimplementedRegulationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRegulationsServiceServer struct{}

func (UnimplementedRegulationsServiceServer) ListWaterBodies(context.Context, *ListWaterBodiesRequest) (*ListWaterBodiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWaterBodies not implemented")
}
func (UnimplementedRegulationsServiceServer) ListRegulations(context.Context, *ListRegulationsRequest) (*ListRegulationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRegulations not implemented")
}
func (UnimplementedRegulationsServiceServer) ExportRegulations(context.Context, *ExportRegulationsRequest) (*ExportRegulationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportRegulations not implemented")
}
func (UnimplementedRegulationsServiceServer) mustEmbedUnimplementedRegulationsServiceServer() {}
func (UnimplementedRegulationsServiceServer) testEmbeddedByValue()                            {}

// UnsafeRegulationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RegulationsServiceServer will
// result in compilation errors.
type UnsafeRegulationsServiceServer interface {
	mustEmbedUnimplementedRegulationsServiceServer()
}

func RegisterRegulationsServiceServer(s grpc.ServiceRegistrar, srv RegulationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedRegulationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RegulationsService_ServiceDesc, srv)
}

func _RegulationsService_ListWaterBodies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWaterBodiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegulationsServiceServer).ListWaterBodies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RegulationsService_ListWaterBodies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegulationsServiceServer).ListWaterBodies(ctx, req.(*ListWaterBodiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RegulationsService_ListRegulations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRegulationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegulationsServiceServer).ListRegulations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RegulationsService_ListRegulations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegulationsServiceServer).ListRegulations(ctx, req.(*ListRegulationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RegulationsService_ExportRegulations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRegulationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegulationsServiceServer).ExportRegulations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RegulationsService_ExportRegulations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegulationsServiceServer).ExportRegulations(ctx, req.(*ExportRegulationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegulationsService_ServiceDesc is the grpc.ServiceDesc for RegulationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RegulationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "regs.v1.RegulationsService",
	HandlerType: (*RegulationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListWaterBodies",
			Handler:    _RegulationsService_ListWaterBodies_Handler,
		},
		{
			MethodName: "ListRegulations",
			Handler:    _RegulationsService_ListRegulations_Handler,
		},
		{
			MethodName: "ExportRegulations",
			Handler:    _RegulationsService_ExportRegulations_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "regs/v1/regs.proto",
}
