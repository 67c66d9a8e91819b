// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        v7.35.1
// source: controlplane/v1/controlplane.proto

package controlplanev1

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

type UpdateDocumentStatusRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// One of PROCESSING, COMPLETED, ERROR.
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ChunksCount   int32  `protobuf:"varint,3,opt,name=chunks_count,json=chunksCount,proto3" json:"chunks_count,omitempty"`
	ErrorMessage  string `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentStatusRequest) Reset() {
	*x = UpdateDocumentStatusRequest{}
	mi := &file_controlplane_v1_controlplane_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentStatusRequest) ProtoMessage() {}

func (x *UpdateDocumentStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_controlplane_v1_controlplane_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateDocumentStatusRequest) Descriptor() ([]byte, []int) {
	return file_controlplane_v1_controlplane_proto_rawDescGZIP(), []int{0}
}

func (x *UpdateDocumentStatusRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UpdateDocumentStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpdateDocumentStatusRequest) GetChunksCount() int32 {
	if x != nil {
		return x.ChunksCount
	}
	return 0
}

func (x *UpdateDocumentStatusRequest) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type DocumentStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentStatusResponse) Reset() {
	*x = DocumentStatusResponse{}
	mi := &file_controlplane_v1_controlplane_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentStatusResponse) ProtoMessage() {}

func (x *DocumentStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_controlplane_v1_controlplane_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentStatusResponse.ProtoReflect.Descriptor instead.
func (*DocumentStatusResponse) Descriptor() ([]byte, []int) {
	return file_controlplane_v1_controlplane_proto_rawDescGZIP(), []int{1}
}

func (x *DocumentStatusResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DocumentStatusResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

var File_controlplane_v1_controlplane_proto protoreflect.FileDescriptor

const file_controlplane_v1_controlplane_proto_rawDesc = "" +
	"\n" +
	"\"controlplane/v1/controlplane.proto\x12\x0fcontrolplane.v1\"\x9e\x01\n" +
	"\x1bUpdateDocumentStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12!\n" +
	"\fchunks_count\x18\x03 \x01(\x05R\vchunksCount\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\"L\n" +
	"\x16DocumentStatusResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage2\x86\x01\n" +
	"\x15DocumentStatusService\x12m\n" +
	"\x14UpdateDocumentStatus\x12,.controlplane.v1.UpdateDocumentStatusRequest\x1a'.controlplane.v1.DocumentStatusResponseBBZ@github.com/knoguchi/assistant/gen/controlplane/v1;controlplanev1b\x06proto3"

var (
	file_controlplane_v1_controlplane_proto_rawDescOnce sync.Once
	file_controlplane_v1_controlplane_proto_rawDescData []byte
)

func file_controlplane_v1_controlplane_proto_rawDescGZIP() []byte {
	file_controlplane_v1_controlplane_proto_rawDescOnce.Do(func() {
		file_controlplane_v1_controlplane_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_controlplane_v1_controlplane_proto_rawDesc), len(file_controlplane_v1_controlplane_proto_rawDesc)))
	})
	return file_controlplane_v1_controlplane_proto_rawDescData
}

var file_controlplane_v1_controlplane_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_controlplane_v1_controlplane_proto_goTypes = []any{
	(*UpdateDocumentStatusRequest)(nil), // 0: controlplane.v1.UpdateDocumentStatusRequest
	(*DocumentStatusResponse)(nil),      // 1: controlplane.v1.DocumentStatusResponse
}
var file_controlplane_v1_controlplane_proto_depIdxs = []int32{
	0, // 0: controlplane.v1.DocumentStatusService.UpdateDocumentStatus:input_type -> controlplane.v1.UpdateDocumentStatusRequest
	1, // 1: controlplane.v1.DocumentStatusService.UpdateDocumentStatus:output_type -> controlplane.v1.DocumentStatusResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_controlplane_v1_controlplane_proto_init() }
func file_controlplane_v1_controlplane_proto_init() {
	if File_controlplane_v1_controlplane_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_controlplane_v1_controlplane_proto_rawDesc), len(file_controlplane_v1_controlplane_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_controlplane_v1_controlplane_proto_goTypes,
		DependencyIndexes: file_controlplane_v1_controlplane_proto_depIdxs,
		MessageInfos:      file_controlplane_v1_controlplane_proto_msgTypes,
	}.Build()
	File_controlplane_v1_controlplane_proto = out.File
	file_controlplane_v1_controlplane_proto_goTypes = nil
	file_controlplane_v1_controlplane_proto_depIdxs = nil
}
