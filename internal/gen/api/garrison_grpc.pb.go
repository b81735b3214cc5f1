// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: proto/garrison.proto

package garrisonpb

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
	Coordination_ReceiveRequest_FullMethodName      = "/garrison.Coordination/ReceiveRequest"
	Coordination_ReceiveRelease_FullMethodName      = "/garrison.Coordination/ReceiveRelease"
	Coordination_ReceiveInitialOrder_FullMethodName = "/garrison.Coordination/ReceiveInitialOrder"
	Coordination_ReceiveRelay_FullMethodName        = "/garrison.Coordination/ReceiveRelay"
)

// CoordinationClient is the client API for Coordination service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Coordination is the peer-facing surface of a garrison node. Every node in
// the cluster exposes the same service; which handlers are live depends on
// the protocol the process was started in.
type CoordinationClient interface {
	// Mutual exclusion: a peer asks for the critical section. The reply is the
	// acknowledgement; there are no deferred grants.
	ReceiveRequest(ctx context.Context, in *RequestMessage, opts ...grpc.CallOption) (*Ack, error)
	// Mutual exclusion: a peer has left the critical section.
	ReceiveRelease(ctx context.Context, in *ReleaseMessage, opts ...grpc.CallOption) (*Ack, error)
	// Agreement: the commander's direct order to a lieutenant.
	ReceiveInitialOrder(ctx context.Context, in *InitialOrderMessage, opts ...grpc.CallOption) (*Ack, error)
	// Agreement: an order relayed along an explicit path of node ids.
	ReceiveRelay(ctx context.Context, in *RelayMessage, opts ...grpc.CallOption) (*Ack, error)
}

type coordinationClient struct {
	cc grpc.ClientConnInterface
}

func NewCoordinationClient(cc grpc.ClientConnInterface) CoordinationClient {
	return &coordinationClient{cc}
}

func (c *coordinationClient) ReceiveRequest(ctx context.Context, in *RequestMessage, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, Coordination_ReceiveRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinationClient) ReceiveRelease(ctx context.Context, in *ReleaseMessage, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, Coordination_ReceiveRelease_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinationClient) ReceiveInitialOrder(ctx context.Context, in *InitialOrderMessage, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, Coordination_ReceiveInitialOrder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinationClient) ReceiveRelay(ctx context.Context, in *RelayMessage, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, Coordination_ReceiveRelay_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CoordinationServer is the server API for Coordination service.
// All implementations must embed UnimplementedCoordinationServer
// for forward compatibility.
//
// Coordination is the peer-facing surface of a garrison node. Every node in
// the cluster exposes the same service; which handlers are live depends on
// the protocol the process was started in.
type CoordinationServer interface {
	// Mutual exclusion: a peer asks for the critical section. The reply is the
	// acknowledgement; there are no deferred grants.
	ReceiveRequest(context.Context, *RequestMessage) (*Ack, error)
	// Mutual exclusion: a peer has left the critical section.
	ReceiveRelease(context.Context, *ReleaseMessage) (*Ack, error)
	// Agreement: the commander's direct order to a lieutenant.
	ReceiveInitialOrder(context.Context, *InitialOrderMessage) (*Ack, error)
	// Agreement: an order relayed along an explicit path of node ids.
	ReceiveRelay(context.Context, *RelayMessage) (*Ack, error)
	mustEmbedUnimplementedCoordinationServer()
}

// UnimplementedCoordinationServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCoordinationServer struct{}

func (UnimplementedCoordinationServer) ReceiveRequest(context.Context, *RequestMessage) (*Ack, error) {
	return nil, status.Error(codes.Unimplemented, "method ReceiveRequest not implemented")
}
func (UnimplementedCoordinationServer) ReceiveRelease(context.Context, *ReleaseMessage) (*Ack, error) {
	return nil, status.Error(codes.Unimplemented, "method ReceiveRelease not implemented")
}
func (UnimplementedCoordinationServer) ReceiveInitialOrder(context.Context, *InitialOrderMessage) (*Ack, error) {
	return nil, status.Error(codes.Unimplemented, "method ReceiveInitialOrder not implemented")
}
func (UnimplementedCoordinationServer) ReceiveRelay(context.Context, *RelayMessage) (*Ack, error) {
	return nil, status.Error(codes.Unimplemented, "method ReceiveRelay not implemented")
}
func (UnimplementedCoordinationServer) mustEmbedUnimplementedCoordinationServer() {}
func (UnimplementedCoordinationServer) testEmbeddedByValue()                      {}

// UnsafeCoordinationServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CoordinationServer will
// result in compilation errors.
type UnsafeCoordinationServer interface {
	mustEmbedUnimplementedCoordinationServer()
}

func RegisterCoordinationServer(s grpc.ServiceRegistrar, srv CoordinationServer) {
	// If the following call panics, it indicates UnimplementedCoordinationServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Coordination_ServiceDesc, srv)
}

func _Coordination_ReceiveRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinationServer).ReceiveRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Coordination_ReceiveRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinationServer).ReceiveRequest(ctx, req.(*RequestMessage))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordination_ReceiveRelease_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReleaseMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinationServer).ReceiveRelease(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Coordination_ReceiveRelease_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinationServer).ReceiveRelease(ctx, req.(*ReleaseMessage))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordination_ReceiveInitialOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitialOrderMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinationServer).ReceiveInitialOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Coordination_ReceiveInitialOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinationServer).ReceiveInitialOrder(ctx, req.(*InitialOrderMessage))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordination_ReceiveRelay_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RelayMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinationServer).ReceiveRelay(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Coordination_ReceiveRelay_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinationServer).ReceiveRelay(ctx, req.(*RelayMessage))
	}
	return interceptor(ctx, in, info, handler)
}

// Coordination_ServiceDesc is the grpc.ServiceDesc for Coordination service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Coordination_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "garrison.Coordination",
	HandlerType: (*CoordinationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReceiveRequest",
			Handler:    _Coordination_ReceiveRequest_Handler,
		},
		{
			MethodName: "ReceiveRelease",
			Handler:    _Coordination_ReceiveRelease_Handler,
		},
		{
			MethodName: "ReceiveInitialOrder",
			Handler:    _Coordination_ReceiveInitialOrder_Handler,
		},
		{
			MethodName: "ReceiveRelay",
			Handler:    _Coordination_ReceiveRelay_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/garrison.proto",
}
