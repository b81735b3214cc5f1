// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/garrison.proto

package garrisonpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Order int32

const (
	Order_ORDER_RETREAT Order = 0 // fail-safe default, so it is the zero value
	Order_ORDER_ATTACK  Order = 1
)

// Enum value maps for Order.
var (
	Order_name = map[int32]string{
		0: "ORDER_RETREAT",
		1: "ORDER_ATTACK",
	}
	Order_value = map[string]int32{
		"ORDER_RETREAT": 0,
		"ORDER_ATTACK":  1,
	}
)

func (x Order) Enum() *Order {
	p := new(Order)
	*p = x
	return p
}

func (x Order) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Order) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_garrison_proto_enumTypes[0].Descriptor()
}

func (Order) Type() protoreflect.EnumType {
	return &file_proto_garrison_proto_enumTypes[0]
}

func (x Order) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Order.Descriptor instead.
func (Order) EnumDescriptor() ([]byte, []int) {
	return file_proto_garrison_proto_rawDescGZIP(), []int{0}
}

type RequestMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Timestamp     int64                  `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	RequesterId   int64                  `protobuf:"varint,2,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	RequestId     string                 `protobuf:"bytes,3,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"` // correlation id for log tracing
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequestMessage) Reset() {
	*x = RequestMessage{}
	mi := &file_proto_garrison_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequestMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequestMessage) ProtoMessage() {}

func (x *RequestMessage) ProtoReflect() protoreflect.Message {
	mi := &file_proto_garrison_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequestMessage.ProtoReflect.Descriptor instead.
func (*RequestMessage) Descriptor() ([]byte, []int) {
	return file_proto_garrison_proto_rawDescGZIP(), []int{0}
}

func (x *RequestMessage) GetTimestamp() int64 {
	if x != nil {
		return x.Timestamp
	}
	return 0
}

func (x *RequestMessage) GetRequesterId() int64 {
	if x != nil {
		return x.RequesterId
	}
	return 0
}

func (x *RequestMessage) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type ReleaseMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequesterId   int64                  `protobuf:"varint,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseMessage) Reset() {
	*x = ReleaseMessage{}
	mi := &file_proto_garrison_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseMessage) ProtoMessage() {}

func (x *ReleaseMessage) ProtoReflect() protoreflect.Message {
	mi := &file_proto_garrison_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseMessage.ProtoReflect.Descriptor instead.
func (*ReleaseMessage) Descriptor() ([]byte, []int) {
	return file_proto_garrison_proto_rawDescGZIP(), []int{1}
}

func (x *ReleaseMessage) GetRequesterId() int64 {
	if x != nil {
		return x.RequesterId
	}
	return 0
}

func (x *ReleaseMessage) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type InitialOrderMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CommanderId   int64                  `protobuf:"varint,1,opt,name=commander_id,json=commanderId,proto3" json:"commander_id,omitempty"`
	Order         Order                  `protobuf:"varint,2,opt,name=order,proto3,enum=garrison.Order" json:"order,omitempty"`
	RequestId     string                 `protobuf:"bytes,3,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitialOrderMessage) Reset() {
	*x = InitialOrderMessage{}
	mi := &file_proto_garrison_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitialOrderMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitialOrderMessage) ProtoMessage() {}

func (x *InitialOrderMessage) ProtoReflect() protoreflect.Message {
	mi := &file_proto_garrison_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitialOrderMessage.ProtoReflect.Descriptor instead.
func (*InitialOrderMessage) Descriptor() ([]byte, []int) {
	return file_proto_garrison_proto_rawDescGZIP(), []int{2}
}

func (x *InitialOrderMessage) GetCommanderId() int64 {
	if x != nil {
		return x.CommanderId
	}
	return 0
}

func (x *InitialOrderMessage) GetOrder() Order {
	if x != nil {
		return x.Order
	}
	return Order_ORDER_RETREAT
}

func (x *InitialOrderMessage) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type RelayMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         Order                  `protobuf:"varint,1,opt,name=order,proto3,enum=garrison.Order" json:"order,omitempty"`
	Path          []int64                `protobuf:"varint,2,rep,packed,name=path,proto3" json:"path,omitempty"` // relay chain from the commander, commander first
	RequestId     string                 `protobuf:"bytes,3,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RelayMessage) Reset() {
	*x = RelayMessage{}
	mi := &file_proto_garrison_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RelayMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RelayMessage) ProtoMessage() {}

func (x *RelayMessage) ProtoReflect() protoreflect.Message {
	mi := &file_proto_garrison_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RelayMessage.ProtoReflect.Descriptor instead.
func (*RelayMessage) Descriptor() ([]byte, []int) {
	return file_proto_garrison_proto_rawDescGZIP(), []int{3}
}

func (x *RelayMessage) GetOrder() Order {
	if x != nil {
		return x.Order
	}
	return Order_ORDER_RETREAT
}

func (x *RelayMessage) GetPath() []int64 {
	if x != nil {
		return x.Path
	}
	return nil
}

func (x *RelayMessage) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

type Ack struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Acked         bool                   `protobuf:"varint,1,opt,name=acked,proto3" json:"acked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ack) Reset() {
	*x = Ack{}
	mi := &file_proto_garrison_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ack) ProtoMessage() {}

func (x *Ack) ProtoReflect() protoreflect.Message {
	mi := &file_proto_garrison_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ack.ProtoReflect.Descriptor instead.
func (*Ack) Descriptor() ([]byte, []int) {
	return file_proto_garrison_proto_rawDescGZIP(), []int{4}
}

func (x *Ack) GetAcked() bool {
	if x != nil {
		return x.Acked
	}
	return false
}

var File_proto_garrison_proto protoreflect.FileDescriptor

const file_proto_garrison_proto_rawDesc = "" +
	"\n" +
	"\x14proto/garrison.proto\x12\bgarrison\"p\n" +
	"\x0eRequestMessage\x12\x1c\n" +
	"\ttimestamp\x18\x01 \x01(\x03R\ttimestamp\x12!\n" +
	"\frequester_id\x18\x02 \x01(\x03R\vrequesterId\x12\x1d\n" +
	"\n" +
	"request_id\x18\x03 \x01(\tR\trequestId\"R\n" +
	"\x0eReleaseMessage\x12!\n" +
	"\frequester_id\x18\x01 \x01(\x03R\vrequesterId\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\"~\n" +
	"\x13InitialOrderMessage\x12!\n" +
	"\fcommander_id\x18\x01 \x01(\x03R\vcommanderId\x12%\n" +
	"\x05order\x18\x02 \x01(\x0e2\x0f.garrison.OrderR\x05order\x12\x1d\n" +
	"\n" +
	"request_id\x18\x03 \x01(\tR\trequestId\"h\n" +
	"\fRelayMessage\x12%\n" +
	"\x05order\x18\x01 \x01(\x0e2\x0f.garrison.OrderR\x05order\x12\x12\n" +
	"\x04path\x18\x02 \x03(\x03R\x04path\x12\x1d\n" +
	"\n" +
	"request_id\x18\x03 \x01(\tR\trequestId\"\x1b\n" +
	"\x03Ack\x12\x14\n" +
	"\x05acked\x18\x01 \x01(\bR\x05acked*,\n" +
	"\x05Order\x12\x11\n" +
	"\rORDER_RETREAT\x10\x00\x12\x10\n" +
	"\fORDER_ATTACK\x10\x012\x80\x02\n" +
	"\fCoordination\x129\n" +
	"\x0eReceiveRequest\x12\x18.garrison.RequestMessage\x1a\r.garrison.Ack\x129\n" +
	"\x0eReceiveRelease\x12\x18.garrison.ReleaseMessage\x1a\r.garrison.Ack\x12C\n" +
	"\x13ReceiveInitialOrder\x12\x1d.garrison.InitialOrderMessage\x1a\r.garrison.Ack\x125\n" +
	"\fReceiveRelay\x12\x16.garrison.RelayMessage\x1a\r.garrison.AckB&Z$garrison/internal/gen/api;garrisonpbb\x06proto3"

var (
	file_proto_garrison_proto_rawDescOnce sync.Once
	file_proto_garrison_proto_rawDescData []byte
)

func file_proto_garrison_proto_rawDescGZIP() []byte {
	file_proto_garrison_proto_rawDescOnce.Do(func() {
		file_proto_garrison_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_garrison_proto_rawDesc), len(file_proto_garrison_proto_rawDesc)))
	})
	return file_proto_garrison_proto_rawDescData
}

var file_proto_garrison_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_proto_garrison_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_proto_garrison_proto_goTypes = []any{
	(Order)(0),                  // 0: garrison.Order
	(*RequestMessage)(nil),      // 1: garrison.RequestMessage
	(*ReleaseMessage)(nil),      // 2: garrison.ReleaseMessage
	(*InitialOrderMessage)(nil), // 3: garrison.InitialOrderMessage
	(*RelayMessage)(nil),        // 4: garrison.RelayMessage
	(*Ack)(nil),                 // 5: garrison.Ack
}
var file_proto_garrison_proto_depIdxs = []int32{
	0, // 0: garrison.InitialOrderMessage.order:type_name -> garrison.Order
	0, // 1: garrison.RelayMessage.order:type_name -> garrison.Order
	1, // 2: garrison.Coordination.ReceiveRequest:input_type -> garrison.RequestMessage
	2, // 3: garrison.Coordination.ReceiveRelease:input_type -> garrison.ReleaseMessage
	3, // 4: garrison.Coordination.ReceiveInitialOrder:input_type -> garrison.InitialOrderMessage
	4, // 5: garrison.Coordination.ReceiveRelay:input_type -> garrison.RelayMessage
	5, // 6: garrison.Coordination.ReceiveRequest:output_type -> garrison.Ack
	5, // 7: garrison.Coordination.ReceiveRelease:output_type -> garrison.Ack
	5, // 8: garrison.Coordination.ReceiveInitialOrder:output_type -> garrison.Ack
	5, // 9: garrison.Coordination.ReceiveRelay:output_type -> garrison.Ack
	6, // [6:10] is the sub-list for method output_type
	2, // [2:6] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_proto_garrison_proto_init() }
func file_proto_garrison_proto_init() {
	if File_proto_garrison_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_garrison_proto_rawDesc), len(file_proto_garrison_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_garrison_proto_goTypes,
		DependencyIndexes: file_proto_garrison_proto_depIdxs,
		EnumInfos:         file_proto_garrison_proto_enumTypes,
		MessageInfos:      file_proto_garrison_proto_msgTypes,
	}.Build()
	File_proto_garrison_proto = out.File
	file_proto_garrison_proto_goTypes = nil
	file_proto_garrison_proto_depIdxs = nil
}
