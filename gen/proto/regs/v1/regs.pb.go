// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: regs/v1/regs.proto

package regsv1

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

type RegisterDocumentRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Filename       string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content        []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	StateCode      string                 `protobuf:"bytes,3,opt,name=state_code,json=stateCode,proto3" json:"state_code,omitempty"`
	RegulationYear int32                  `protobuf:"varint,4,opt,name=regulation_year,json=regulationYear,proto3" json:"regulation_year,omitempty"`
	// when true the document is queued for processing immediately
	ProcessNow    bool `protobuf:"varint,5,opt,name=process_now,json=processNow,proto3" json:"process_now,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentRequest) Reset() {
	*x = RegisterDocumentRequest{}
	mi := &file_regs_v1_regs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentRequest) ProtoMessage() {}

func (x *RegisterDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentRequest.ProtoReflect.Descriptor instead.
func (*RegisterDocumentRequest) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{0}
}

func (x *RegisterDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *RegisterDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *RegisterDocumentRequest) GetStateCode() string {
	if x != nil {
		return x.StateCode
	}
	return ""
}

func (x *RegisterDocumentRequest) GetRegulationYear() int32 {
	if x != nil {
		return x.RegulationYear
	}
	return 0
}

func (x *RegisterDocumentRequest) GetProcessNow() bool {
	if x != nil {
		return x.ProcessNow
	}
	return false
}

type RegisterDocumentResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	DocumentId       string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ProcessingStatus string                 `protobuf:"bytes,2,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	StorageUrl       string                 `protobuf:"bytes,3,opt,name=storage_url,json=storageUrl,proto3" json:"storage_url,omitempty"`
	UploadedAt       string                 `protobuf:"bytes,4,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Error            string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RegisterDocumentResponse) Reset() {
	*x = RegisterDocumentResponse{}
	mi := &file_regs_v1_regs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentResponse) ProtoMessage() {}

func (x *RegisterDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentResponse.ProtoReflect.Descriptor instead.
func (*RegisterDocumentResponse) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *RegisterDocumentResponse) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *RegisterDocumentResponse) GetStorageUrl() string {
	if x != nil {
		return x.StorageUrl
	}
	return ""
}

func (x *RegisterDocumentResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *RegisterDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ProcessDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// raw document bytes; required when the document was not archived
	Content       []byte `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_regs_v1_regs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ProcessDocumentResponse struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	IsSuccess                 bool                   `protobuf:"varint,1,opt,name=is_success,json=isSuccess,proto3" json:"is_success,omitempty"`
	TotalLakesProcessed       int32                  `protobuf:"varint,2,opt,name=total_lakes_processed,json=totalLakesProcessed,proto3" json:"total_lakes_processed,omitempty"`
	TotalRegulationsExtracted int32                  `protobuf:"varint,3,opt,name=total_regulations_extracted,json=totalRegulationsExtracted,proto3" json:"total_regulations_extracted,omitempty"`
	WaterBodiesCreated        int32                  `protobuf:"varint,4,opt,name=water_bodies_created,json=waterBodiesCreated,proto3" json:"water_bodies_created,omitempty"`
	WaterBodiesUpdated        int32                  `protobuf:"varint,5,opt,name=water_bodies_updated,json=waterBodiesUpdated,proto3" json:"water_bodies_updated,omitempty"`
	RegulationsCreated        int32                  `protobuf:"varint,6,opt,name=regulations_created,json=regulationsCreated,proto3" json:"regulations_created,omitempty"`
	RegulationsUpdated        int32                  `protobuf:"varint,7,opt,name=regulations_updated,json=regulationsUpdated,proto3" json:"regulations_updated,omitempty"`
	FishSpeciesCreated        int32                  `protobuf:"varint,8,opt,name=fish_species_created,json=fishSpeciesCreated,proto3" json:"fish_species_created,omitempty"`
	ProcessingWarnings        []string               `protobuf:"bytes,9,rep,name=processing_warnings,json=processingWarnings,proto3" json:"processing_warnings,omitempty"`
	ProcessingErrors          []string               `protobuf:"bytes,10,rep,name=processing_errors,json=processingErrors,proto3" json:"processing_errors,omitempty"`
	ProcessingTimeMs          int64                  `protobuf:"varint,11,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	ErrorMessage              string                 `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_regs_v1_regs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessDocumentResponse) GetIsSuccess() bool {
	if x != nil {
		return x.IsSuccess
	}
	return false
}

func (x *ProcessDocumentResponse) GetTotalLakesProcessed() int32 {
	if x != nil {
		return x.TotalLakesProcessed
	}
	return 0
}

func (x *ProcessDocumentResponse) GetTotalRegulationsExtracted() int32 {
	if x != nil {
		return x.TotalRegulationsExtracted
	}
	return 0
}

func (x *ProcessDocumentResponse) GetWaterBodiesCreated() int32 {
	if x != nil {
		return x.WaterBodiesCreated
	}
	return 0
}

func (x *ProcessDocumentResponse) GetWaterBodiesUpdated() int32 {
	if x != nil {
		return x.WaterBodiesUpdated
	}
	return 0
}

func (x *ProcessDocumentResponse) GetRegulationsCreated() int32 {
	if x != nil {
		return x.RegulationsCreated
	}
	return 0
}

func (x *ProcessDocumentResponse) GetRegulationsUpdated() int32 {
	if x != nil {
		return x.RegulationsUpdated
	}
	return 0
}

func (x *ProcessDocumentResponse) GetFishSpeciesCreated() int32 {
	if x != nil {
		return x.FishSpeciesCreated
	}
	return 0
}

func (x *ProcessDocumentResponse) GetProcessingWarnings() []string {
	if x != nil {
		return x.ProcessingWarnings
	}
	return nil
}

func (x *ProcessDocumentResponse) GetProcessingErrors() []string {
	if x != nil {
		return x.ProcessingErrors
	}
	return nil
}

func (x *ProcessDocumentResponse) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

func (x *ProcessDocumentResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type GetDocumentStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentStatusRequest) Reset() {
	*x = GetDocumentStatusRequest{}
	mi := &file_regs_v1_regs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentStatusRequest) ProtoMessage() {}

func (x *GetDocumentStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentStatusRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentStatusRequest) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentStatusRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentStatusResponse) Reset() {
	*x = GetDocumentStatusResponse{}
	mi := &file_regs_v1_regs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentStatusResponse) ProtoMessage() {}

func (x *GetDocumentStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentStatusResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentStatusResponse) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentStatusResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename         string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	DocumentType     string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	ProcessingStatus string                 `protobuf:"bytes,4,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	StateCode        string                 `protobuf:"bytes,5,opt,name=state_code,json=stateCode,proto3" json:"state_code,omitempty"`
	RegulationYear   int32                  `protobuf:"varint,6,opt,name=regulation_year,json=regulationYear,proto3" json:"regulation_year,omitempty"`
	ExtractionError  string                 `protobuf:"bytes,7,opt,name=extraction_error,json=extractionError,proto3" json:"extraction_error,omitempty"`
	StorageUrl       string                 `protobuf:"bytes,8,opt,name=storage_url,json=storageUrl,proto3" json:"storage_url,omitempty"`
	UploadedAt       string                 `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt      string                 `protobuf:"bytes,10,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_regs_v1_regs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{6}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *Document) GetStateCode() string {
	if x != nil {
		return x.StateCode
	}
	return ""
}

func (x *Document) GetRegulationYear() int32 {
	if x != nil {
		return x.RegulationYear
	}
	return 0
}

func (x *Document) GetExtractionError() string {
	if x != nil {
		return x.ExtractionError
	}
	return ""
}

func (x *Document) GetStorageUrl() string {
	if x != nil {
		return x.StorageUrl
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type ListWaterBodiesRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	StateCode string                 `protobuf:"bytes,1,opt,name=state_code,json=stateCode,proto3" json:"state_code,omitempty"`
	// optional substring filter on the water body name
	Query         string `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWaterBodiesRequest) Reset() {
	*x = ListWaterBodiesRequest{}
	mi := &file_regs_v1_regs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWaterBodiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWaterBodiesRequest) ProtoMessage() {}

func (x *ListWaterBodiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWaterBodiesRequest.ProtoReflect.Descriptor instead.
func (*ListWaterBodiesRequest) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{7}
}

func (x *ListWaterBodiesRequest) GetStateCode() string {
	if x != nil {
		return x.StateCode
	}
	return ""
}

func (x *ListWaterBodiesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type ListWaterBodiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WaterBodies   []*WaterBody           `protobuf:"bytes,1,rep,name=water_bodies,json=waterBodies,proto3" json:"water_bodies,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWaterBodiesResponse) Reset() {
	*x = ListWaterBodiesResponse{}
	mi := &file_regs_v1_regs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWaterBodiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWaterBodiesResponse) ProtoMessage() {}

func (x *ListWaterBodiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWaterBodiesResponse.ProtoReflect.Descriptor instead.
func (*ListWaterBodiesResponse) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{8}
}

func (x *ListWaterBodiesResponse) GetWaterBodies() []*WaterBody {
	if x != nil {
		return x.WaterBodies
	}
	return nil
}

type WaterBody struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	WaterBodyType string                 `protobuf:"bytes,3,opt,name=water_body_type,json=waterBodyType,proto3" json:"water_body_type,omitempty"`
	StateCode     string                 `protobuf:"bytes,4,opt,name=state_code,json=stateCode,proto3" json:"state_code,omitempty"`
	County        string                 `protobuf:"bytes,5,opt,name=county,proto3" json:"county,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WaterBody) Reset() {
	*x = WaterBody{}
	mi := &file_regs_v1_regs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WaterBody) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WaterBody) ProtoMessage() {}

func (x *WaterBody) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WaterBody.ProtoReflect.Descriptor instead.
func (*WaterBody) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{9}
}

func (x *WaterBody) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WaterBody) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *WaterBody) GetWaterBodyType() string {
	if x != nil {
		return x.WaterBodyType
	}
	return ""
}

func (x *WaterBody) GetStateCode() string {
	if x != nil {
		return x.StateCode
	}
	return ""
}

func (x *WaterBody) GetCounty() string {
	if x != nil {
		return x.County
	}
	return ""
}

type ListRegulationsRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	WaterBodyId string                 `protobuf:"bytes,1,opt,name=water_body_id,json=waterBodyId,proto3" json:"water_body_id,omitempty"`
	// 0 means all years
	Year          int32 `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRegulationsRequest) Reset() {
	*x = ListRegulationsRequest{}
	mi := &file_regs_v1_regs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRegulationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRegulationsRequest) ProtoMessage() {}

func (x *ListRegulationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRegulationsRequest.ProtoReflect.Descriptor instead.
func (*ListRegulationsRequest) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{10}
}

func (x *ListRegulationsRequest) GetWaterBodyId() string {
	if x != nil {
		return x.WaterBodyId
	}
	return ""
}

func (x *ListRegulationsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ListRegulationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Regulations   []*Regulation          `protobuf:"bytes,1,rep,name=regulations,proto3" json:"regulations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRegulationsResponse) Reset() {
	*x = ListRegulationsResponse{}
	mi := &file_regs_v1_regs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRegulationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRegulationsResponse) ProtoMessage() {}

func (x *ListRegulationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRegulationsResponse.ProtoReflect.Descriptor instead.
func (*ListRegulationsResponse) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{11}
}

func (x *ListRegulationsResponse) GetRegulations() []*Regulation {
	if x != nil {
		return x.Regulations
	}
	return nil
}

type Regulation struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Id                      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	WaterBodyId             string                 `protobuf:"bytes,2,opt,name=water_body_id,json=waterBodyId,proto3" json:"water_body_id,omitempty"`
	SpeciesId               string                 `protobuf:"bytes,3,opt,name=species_id,json=speciesId,proto3" json:"species_id,omitempty"`
	SpeciesName             string                 `protobuf:"bytes,4,opt,name=species_name,json=speciesName,proto3" json:"species_name,omitempty"`
	RegulationYear          int32                  `protobuf:"varint,5,opt,name=regulation_year,json=regulationYear,proto3" json:"regulation_year,omitempty"`
	RegulationType          string                 `protobuf:"bytes,6,opt,name=regulation_type,json=regulationType,proto3" json:"regulation_type,omitempty"`
	DailyLimit              *int32                 `protobuf:"varint,7,opt,name=daily_limit,json=dailyLimit,proto3,oneof" json:"daily_limit,omitempty"`
	PossessionLimit         *int32                 `protobuf:"varint,8,opt,name=possession_limit,json=possessionLimit,proto3,oneof" json:"possession_limit,omitempty"`
	MinimumSize             *float64               `protobuf:"fixed64,9,opt,name=minimum_size,json=minimumSize,proto3,oneof" json:"minimum_size,omitempty"`
	MaximumSize             *float64               `protobuf:"fixed64,10,opt,name=maximum_size,json=maximumSize,proto3,oneof" json:"maximum_size,omitempty"`
	ProtectedSlotMin        *float64               `protobuf:"fixed64,11,opt,name=protected_slot_min,json=protectedSlotMin,proto3,oneof" json:"protected_slot_min,omitempty"`
	ProtectedSlotMax        *float64               `protobuf:"fixed64,12,opt,name=protected_slot_max,json=protectedSlotMax,proto3,oneof" json:"protected_slot_max,omitempty"`
	ProtectedSlotExceptions int32                  `protobuf:"varint,13,opt,name=protected_slot_exceptions,json=protectedSlotExceptions,proto3" json:"protected_slot_exceptions,omitempty"`
	SeasonOpen              string                 `protobuf:"bytes,14,opt,name=season_open,json=seasonOpen,proto3" json:"season_open,omitempty"`
	SeasonClose             string                 `protobuf:"bytes,15,opt,name=season_close,json=seasonClose,proto3" json:"season_close,omitempty"`
	YearRound               bool                   `protobuf:"varint,16,opt,name=year_round,json=yearRound,proto3" json:"year_round,omitempty"`
	CatchAndRelease         bool                   `protobuf:"varint,17,opt,name=catch_and_release,json=catchAndRelease,proto3" json:"catch_and_release,omitempty"`
	SpecialNotes            string                 `protobuf:"bytes,18,opt,name=special_notes,json=specialNotes,proto3" json:"special_notes,omitempty"`
	NeedsReview             bool                   `protobuf:"varint,19,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *Regulation) Reset() {
	*x = Regulation{}
	mi := &file_regs_v1_regs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Regulation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Regulation) ProtoMessage() {}

func (x *Regulation) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Regulation.ProtoReflect.Descriptor instead.
func (*Regulation) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{12}
}

func (x *Regulation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Regulation) GetWaterBodyId() string {
	if x != nil {
		return x.WaterBodyId
	}
	return ""
}

func (x *Regulation) GetSpeciesId() string {
	if x != nil {
		return x.SpeciesId
	}
	return ""
}

func (x *Regulation) GetSpeciesName() string {
	if x != nil {
		return x.SpeciesName
	}
	return ""
}

func (x *Regulation) GetRegulationYear() int32 {
	if x != nil {
		return x.RegulationYear
	}
	return 0
}

func (x *Regulation) GetRegulationType() string {
	if x != nil {
		return x.RegulationType
	}
	return ""
}

func (x *Regulation) GetDailyLimit() int32 {
	if x != nil && x.DailyLimit != nil {
		return *x.DailyLimit
	}
	return 0
}

func (x *Regulation) GetPossessionLimit() int32 {
	if x != nil && x.PossessionLimit != nil {
		return *x.PossessionLimit
	}
	return 0
}

func (x *Regulation) GetMinimumSize() float64 {
	if x != nil && x.MinimumSize != nil {
		return *x.MinimumSize
	}
	return 0
}

func (x *Regulation) GetMaximumSize() float64 {
	if x != nil && x.MaximumSize != nil {
		return *x.MaximumSize
	}
	return 0
}

func (x *Regulation) GetProtectedSlotMin() float64 {
	if x != nil && x.ProtectedSlotMin != nil {
		return *x.ProtectedSlotMin
	}
	return 0
}

func (x *Regulation) GetProtectedSlotMax() float64 {
	if x != nil && x.ProtectedSlotMax != nil {
		return *x.ProtectedSlotMax
	}
	return 0
}

func (x *Regulation) GetProtectedSlotExceptions() int32 {
	if x != nil {
		return x.ProtectedSlotExceptions
	}
	return 0
}

func (x *Regulation) GetSeasonOpen() string {
	if x != nil {
		return x.SeasonOpen
	}
	return ""
}

func (x *Regulation) GetSeasonClose() string {
	if x != nil {
		return x.SeasonClose
	}
	return ""
}

func (x *Regulation) GetYearRound() bool {
	if x != nil {
		return x.YearRound
	}
	return false
}

func (x *Regulation) GetCatchAndRelease() bool {
	if x != nil {
		return x.CatchAndRelease
	}
	return false
}

func (x *Regulation) GetSpecialNotes() string {
	if x != nil {
		return x.SpecialNotes
	}
	return ""
}

func (x *Regulation) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type ExportRegulationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StateCode     string                 `protobuf:"bytes,1,opt,name=state_code,json=stateCode,proto3" json:"state_code,omitempty"`
	Year          int32                  `protobuf:"varint,2,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRegulationsRequest) Reset() {
	*x = ExportRegulationsRequest{}
	mi := &file_regs_v1_regs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRegulationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRegulationsRequest) ProtoMessage() {}

func (x *ExportRegulationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRegulationsRequest.ProtoReflect.Descriptor instead.
func (*ExportRegulationsRequest) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{13}
}

func (x *ExportRegulationsRequest) GetStateCode() string {
	if x != nil {
		return x.StateCode
	}
	return ""
}

func (x *ExportRegulationsRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type ExportRegulationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRegulationsResponse) Reset() {
	*x = ExportRegulationsResponse{}
	mi := &file_regs_v1_regs_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRegulationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRegulationsResponse) ProtoMessage() {}

func (x *ExportRegulationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_regs_v1_regs_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRegulationsResponse.ProtoReflect.Descriptor instead.
func (*ExportRegulationsResponse) Descriptor() ([]byte, []int) {
	return file_regs_v1_regs_proto_rawDescGZIP(), []int{14}
}

func (x *ExportRegulationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_regs_v1_regs_proto protoreflect.FileDescriptor

const file_regs_v1_regs_proto_rawDesc = "" +
	"\n" +
	"\x12regs/v1/regs.proto\x12\aregs.v1\"\xb8\x01\n" +
	"\x17RegisterDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1d\n" +
	"\n" +
	"state_code\x18\x03 \x01(\tR\tstateCode\x12'\n" +
	"\x0fregulation_year\x18\x04 \x01(\x05R\x0eregulationYear\x12\x1f\n" +
	"\vprocess_now\x18\x05 \x01(\bR\n" +
	"processNow\"\xc0\x01\n" +
	"\x18RegisterDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12+\n" +
	"\x11processing_status\x18\x02 \x01(\tR\x10processingStatus\x12\x1f\n" +
	"\vstorage_url\x18\x03 \x01(\tR\n" +
	"storageUrl\x12\x1f\n" +
	"\vuploaded_at\x18\x04 \x01(\tR\n" +
	"uploadedAt\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"S\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\xd5\x04\n" +
	"\x17ProcessDocumentResponse\x12\x1d\n" +
	"\n" +
	"is_success\x18\x01 \x01(\bR\tisSuccess\x122\n" +
	"\x15total_lakes_processed\x18\x02 \x01(\x05R\x13totalLakesProcessed\x12>\n" +
	"\x1btotal_regulations_extracted\x18\x03 \x01(\x05R\x19totalRegulationsExtracted\x120\n" +
	"\x14water_bodies_created\x18\x04 \x01(\x05R\x12waterBodiesCreated\x120\n" +
	"\x14water_bodies_updated\x18\x05 \x01(\x05R\x12waterBodiesUpdated\x12/\n" +
	"\x13regulations_created\x18\x06 \x01(\x05R\x12regulationsCreated\x12/\n" +
	"\x13regulations_updated\x18\a \x01(\x05R\x12regulationsUpdated\x120\n" +
	"\x14fish_species_created\x18\b \x01(\x05R\x12fishSpeciesCreated\x12/\n" +
	"\x13processing_warnings\x18\t \x03(\tR\x12processingWarnings\x12+\n" +
	"\x11processing_errors\x18\n" +
	" \x03(\tR\x10processingErrors\x12,\n" +
	"\x12processing_time_ms\x18\v \x01(\x03R\x10processingTimeMs\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\";\n" +
	"\x18GetDocumentStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"J\n" +
	"\x19GetDocumentStatusResponse\x12-\n" +
	"\bdocument\x18\x01 \x01(\v2\x11.regs.v1.DocumentR\bdocument\"\xe0\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12+\n" +
	"\x11processing_status\x18\x04 \x01(\tR\x10processingStatus\x12\x1d\n" +
	"\n" +
	"state_code\x18\x05 \x01(\tR\tstateCode\x12'\n" +
	"\x0fregulation_year\x18\x06 \x01(\x05R\x0eregulationYear\x12)\n" +
	"\x10extraction_error\x18\a \x01(\tR\x0fextractionError\x12\x1f\n" +
	"\vstorage_url\x18\b \x01(\tR\n" +
	"storageUrl\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\n" +
	" \x01(\tR\vprocessedAt\"M\n" +
	"\x16ListWaterBodiesRequest\x12\x1d\n" +
	"\n" +
	"state_code\x18\x01 \x01(\tR\tstateCode\x12\x14\n" +
	"\x05query\x18\x02 \x01(\tR\x05query\"P\n" +
	"\x17ListWaterBodiesResponse\x125\n" +
	"\fwater_bodies\x18\x01 \x03(\v2\x12.regs.v1.WaterBodyR\vwaterBodies\"\x8e\x01\n" +
	"\tWaterBody\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12&\n" +
	"\x0fwater_body_type\x18\x03 \x01(\tR\rwaterBodyType\x12\x1d\n" +
	"\n" +
	"state_code\x18\x04 \x01(\tR\tstateCode\x12\x16\n" +
	"\x06county\x18\x05 \x01(\tR\x06county\"P\n" +
	"\x16ListRegulationsRequest\x12\"\n" +
	"\rwater_body_id\x18\x01 \x01(\tR\vwaterBodyId\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\"P\n" +
	"\x17ListRegulationsResponse\x125\n" +
	"\vregulations\x18\x01 \x03(\v2\x13.regs.v1.RegulationR\vregulations\"\xe8\x06\n" +
	"\n" +
	"Regulation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\"\n" +
	"\rwater_body_id\x18\x02 \x01(\tR\vwaterBodyId\x12\x1d\n" +
	"\n" +
	"species_id\x18\x03 \x01(\tR\tspeciesId\x12!\n" +
	"\fspecies_name\x18\x04 \x01(\tR\vspeciesName\x12'\n" +
	"\x0fregulation_year\x18\x05 \x01(\x05R\x0eregulationYear\x12'\n" +
	"\x0fregulation_type\x18\x06 \x01(\tR\x0eregulationType\x12$\n" +
	"\vdaily_limit\x18\a \x01(\x05H\x00R\n" +
	"dailyLimit\x88\x01\x01\x12.\n" +
	"\x10possession_limit\x18\b \x01(\x05H\x01R\x0fpossessionLimit\x88\x01\x01\x12&\n" +
	"\fminimum_size\x18\t \x01(\x01H\x02R\vminimumSize\x88\x01\x01\x12&\n" +
	"\fmaximum_size\x18\n" +
	" \x01(\x01H\x03R\vmaximumSize\x88\x01\x01\x121\n" +
	"\x12protected_slot_min\x18\v \x01(\x01H\x04R\x10protectedSlotMin\x88\x01\x01\x121\n" +
	"\x12protected_slot_max\x18\f \x01(\x01H\x05R\x10protectedSlotMax\x88\x01\x01\x12:\n" +
	"\x19protected_slot_exceptions\x18\r \x01(\x05R\x17protectedSlotExceptions\x12\x1f\n" +
	"\vseason_open\x18\x0e \x01(\tR\n" +
	"seasonOpen\x12!\n" +
	"\fseason_close\x18\x0f \x01(\tR\vseasonClose\x12\x1d\n" +
	"\n" +
	"year_round\x18\x10 \x01(\bR\tyearRound\x12*\n" +
	"\x11catch_and_release\x18\x11 \x01(\bR\x0fcatchAndRelease\x12#\n" +
	"\rspecial_notes\x18\x12 \x01(\tR\fspecialNotes\x12!\n" +
	"\fneeds_review\x18\x13 \x01(\bR\vneedsReviewB\x0e\n" +
	"\f_daily_limitB\x13\n" +
	"\x11_possession_limitB\x0f\n" +
	"\r_minimum_sizeB\x0f\n" +
	"\r_maximum_sizeB\x15\n" +
	"\x13_protected_slot_minB\x15\n" +
	"\x13_protected_slot_max\"M\n" +
	"\x18ExportRegulationsRequest\x12\x1d\n" +
	"\n" +
	"state_code\x18\x01 \x01(\tR\tstateCode\x12\x12\n" +
	"\x04year\x18\x02 \x01(\x05R\x04year\"/\n" +
	"\x19ExportRegulationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x9d\x02\n" +
	"\x10DocumentsService\x12W\n" +
	"\x10RegisterDocument\x12 .regs.v1.RegisterDocumentRequest\x1a!.regs.v1.RegisterDocumentResponse\x12T\n" +
	"\x0fProcessDocument\x12\x1f.regs.v1.ProcessDocumentRequest\x1a .regs.v1.ProcessDocumentResponse\x12Z\n" +
	"\x11GetDocumentStatus\x12!.regs.v1.GetDocumentStatusRequest\x1a\".regs.v1.GetDocumentStatusResponse2\x9c\x02\n" +
	"\x12RegulationsService\x12T\n" +
	"\x0fListWaterBodies\x12\x1f.regs.v1.ListWaterBodiesRequest\x1a .regs.v1.ListWaterBodiesResponse\x12T\n" +
	"\x0fListRegulations\x12\x1f.regs.v1.ListRegulationsRequest\x1a .regs.v1.ListRegulationsResponse\x12Z\n" +
	"\x11ExportRegulations\x12!.regs.v1.ExportRegulationsRequest\x1a\".regs.v1.ExportRegulationsResponseBAZ?github.com/fisheries-data/regs-tracker/gen/proto/regs/v1;regsv1b\x06proto3"

var (
	file_regs_v1_regs_proto_rawDescOnce sync.Once
	file_regs_v1_regs_proto_rawDescData []byte
)

func file_regs_v1_regs_proto_rawDescGZIP() []byte {
	file_regs_v1_regs_proto_rawDescOnce.Do(func() {
		file_regs_v1_regs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_regs_v1_regs_proto_rawDesc), len(file_regs_v1_regs_proto_rawDesc)))
	})
	return file_regs_v1_regs_proto_rawDescData
}

var file_regs_v1_regs_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_regs_v1_regs_proto_goTypes = []any{
	(*RegisterDocumentRequest)(nil),   // 0: regs.v1.RegisterDocumentRequest
	(*RegisterDocumentResponse)(nil),  // 1: regs.v1.RegisterDocumentResponse
	(*ProcessDocumentRequest)(nil),    // 2: regs.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),   // 3: regs.v1.ProcessDocumentResponse
	(*GetDocumentStatusRequest)(nil),  // 4: regs.v1.GetDocumentStatusRequest
	(*GetDocumentStatusResponse)(nil), // 5: regs.v1.GetDocumentStatusResponse
	(*Document)(nil),                  // 6: regs.v1.Document
	(*ListWaterBodiesRequest)(nil),    // 7: regs.v1.ListWaterBodiesRequest
	(*ListWaterBodiesResponse)(nil),   // 8: regs.v1.ListWaterBodiesResponse
	(*WaterBody)(nil),                 // 9: regs.v1.WaterBody
	(*ListRegulationsRequest)(nil),    // 10: regs.v1.ListRegulationsRequest
	(*ListRegulationsResponse)(nil),   // 11: regs.v1.ListRegulationsResponse
	(*Regulation)(nil),                // 12: regs.v1.Regulation
	(*ExportRegulationsRequest)(nil),  // 13: regs.v1.ExportRegulationsRequest
	(*ExportRegulationsResponse)(nil), // 14: regs.v1.ExportRegulationsResponse
}
var file_regs_v1_regs_proto_depIdxs = []int32{
	6,  // 0: regs.v1.GetDocumentStatusResponse.document:type_name -> regs.v1.Document
	9,  // 1: regs.v1.ListWaterBodiesResponse.water_bodies:type_name -> regs.v1.WaterBody
	12, // 2: regs.v1.ListRegulationsResponse.regulations:type_name -> regs.v1.Regulation
	0,  // 3: regs.v1.DocumentsService.RegisterDocument:input_type -> regs.v1.RegisterDocumentRequest
	2,  // 4: regs.v1.DocumentsService.ProcessDocument:input_type -> regs.v1.ProcessDocumentRequest
	4,  // 5: regs.v1.DocumentsService.GetDocumentStatus:input_type -> regs.v1.GetDocumentStatusRequest
	7,  // 6: regs.v1.RegulationsService.ListWaterBodies:input_type -> regs.v1.ListWaterBodiesRequest
	10, // 7: regs.v1.RegulationsService.ListRegulations:input_type -> regs.v1.ListRegulationsRequest
	13, // 8: regs.v1.RegulationsService.ExportRegulations:input_type -> regs.v1.ExportRegulationsRequest
	1,  // 9: regs.v1.DocumentsService.RegisterDocument:output_type -> regs.v1.RegisterDocumentResponse
	3,  // 10: regs.v1.DocumentsService.ProcessDocument:output_type -> regs.v1.ProcessDocumentResponse
	5,  // 11: regs.v1.DocumentsService.GetDocumentStatus:output_type -> regs.v1.GetDocumentStatusResponse
	8,  // 12: regs.v1.RegulationsService.ListWaterBodies:output_type -> regs.v1.ListWaterBodiesResponse
	11, // 13: regs.v1.RegulationsService.ListRegulations:output_type -> regs.v1.ListRegulationsResponse
	14, // 14: regs.v1.RegulationsService.ExportRegulations:output_type -> regs.v1.ExportRegulationsResponse
	9,  // [9:15] is the sub-list for method output_type
	3,  // [3:9] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_regs_v1_regs_proto_init() }
func file_regs_v1_regs_proto_init() {
	if File_regs_v1_regs_proto != nil {
		return
	}
	file_regs_v1_regs_proto_msgTypes[12].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_regs_v1_regs_proto_rawDesc), len(file_regs_v1_regs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_regs_v1_regs_proto_goTypes,
		DependencyIndexes: file_regs_v1_regs_proto_depIdxs,
		MessageInfos:      file_regs_v1_regs_proto_msgTypes,
	}.Build()
	File_regs_v1_regs_proto = out.File
	file_regs_v1_regs_proto_goTypes = nil
	file_regs_v1_regs_proto_depIdxs = nil
}
