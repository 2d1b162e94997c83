// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: fleetdocs/v1/ingestion.proto

package fleetdocsv1

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

type Profile struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email           string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,4,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Profile) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email           string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateProfileRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{3}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{4}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type Document struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId      string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	Filename       string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt        string                 `protobuf:"bytes,5,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileSize       int64                  `protobuf:"varint,6,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	PageCount      int32                  `protobuf:"varint,7,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	StorageUrl     string                 `protobuf:"bytes,8,opt,name=storage_url,json=storageUrl,proto3" json:"storage_url,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[5]
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
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{5}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Document) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
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

// UploadDocument registers a local PDF, runs the extraction pipeline, and
// returns either the validated record or the rejection reason.
type UploadDocumentRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ProfileId string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Path      string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	// "MAINTENANCE" or "EXPENSE"
	Kind          string `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{6}
}

func (x *UploadDocumentRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *UploadDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *UploadDocumentRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type UploadDocumentResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Document          *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Deduplicated      bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	RecordId          string                 `protobuf:"bytes,3,opt,name=record_id,json=recordId,proto3" json:"record_id,omitempty"`
	MaintenanceRecord *MaintenanceRecord     `protobuf:"bytes,4,opt,name=maintenance_record,json=maintenanceRecord,proto3" json:"maintenance_record,omitempty"`
	ExpenseRecord     *ExpenseRecord         `protobuf:"bytes,5,opt,name=expense_record,json=expenseRecord,proto3" json:"expense_record,omitempty"`
	RejectReason      string                 `protobuf:"bytes,6,opt,name=reject_reason,json=rejectReason,proto3" json:"reject_reason,omitempty"`
	Error             string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{7}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadDocumentResponse) GetRecordId() string {
	if x != nil {
		return x.RecordId
	}
	return ""
}

func (x *UploadDocumentResponse) GetMaintenanceRecord() *MaintenanceRecord {
	if x != nil {
		return x.MaintenanceRecord
	}
	return nil
}

func (x *UploadDocumentResponse) GetExpenseRecord() *ExpenseRecord {
	if x != nil {
		return x.ExpenseRecord
	}
	return nil
}

func (x *UploadDocumentResponse) GetRejectReason() string {
	if x != nil {
		return x.RejectReason
	}
	return ""
}

func (x *UploadDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type Part struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        string                 `protobuf:"bytes,1,opt,name=number,proto3" json:"number,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      float64                `protobuf:"fixed64,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Part) Reset() {
	*x = Part{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Part) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Part) ProtoMessage() {}

func (x *Part) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Part.ProtoReflect.Descriptor instead.
func (*Part) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{8}
}

func (x *Part) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

func (x *Part) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Part) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Part) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

type MaintenanceRecord struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Id           string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId    string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	DocumentId   string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	VendorName   string                 `protobuf:"bytes,4,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	InvoiceDate  string                 `protobuf:"bytes,5,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	CurrencyCode string                 `protobuf:"bytes,6,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	// money values are decimal strings
	Total               string   `protobuf:"bytes,7,opt,name=total,proto3" json:"total,omitempty"`
	LaborTotal          string   `protobuf:"bytes,8,opt,name=labor_total,json=laborTotal,proto3" json:"labor_total,omitempty"`
	PartsTotal          string   `protobuf:"bytes,9,opt,name=parts_total,json=partsTotal,proto3" json:"parts_total,omitempty"`
	ServicesTotal       string   `protobuf:"bytes,10,opt,name=services_total,json=servicesTotal,proto3" json:"services_total,omitempty"`
	FreightTotal        string   `protobuf:"bytes,11,opt,name=freight_total,json=freightTotal,proto3" json:"freight_total,omitempty"`
	TaxTotal            string   `protobuf:"bytes,12,opt,name=tax_total,json=taxTotal,proto3" json:"tax_total,omitempty"`
	WorkOrder           string   `protobuf:"bytes,13,opt,name=work_order,json=workOrder,proto3" json:"work_order,omitempty"`
	VehicleRegistration string   `protobuf:"bytes,14,opt,name=vehicle_registration,json=vehicleRegistration,proto3" json:"vehicle_registration,omitempty"`
	SerialNumber        string   `protobuf:"bytes,15,opt,name=serial_number,json=serialNumber,proto3" json:"serial_number,omitempty"`
	Parts               []*Part  `protobuf:"bytes,16,rep,name=parts,proto3" json:"parts,omitempty"`
	Flags               []string `protobuf:"bytes,17,rep,name=flags,proto3" json:"flags,omitempty"`
	ExtractedByOcr      bool     `protobuf:"varint,18,opt,name=extracted_by_ocr,json=extractedByOcr,proto3" json:"extracted_by_ocr,omitempty"`
	Confidence          float32  `protobuf:"fixed32,19,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview         bool     `protobuf:"varint,20,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	CreatedAt           string   `protobuf:"bytes,21,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *MaintenanceRecord) Reset() {
	*x = MaintenanceRecord{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaintenanceRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaintenanceRecord) ProtoMessage() {}

func (x *MaintenanceRecord) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaintenanceRecord.ProtoReflect.Descriptor instead.
func (*MaintenanceRecord) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{9}
}

func (x *MaintenanceRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MaintenanceRecord) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *MaintenanceRecord) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *MaintenanceRecord) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *MaintenanceRecord) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *MaintenanceRecord) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *MaintenanceRecord) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *MaintenanceRecord) GetLaborTotal() string {
	if x != nil {
		return x.LaborTotal
	}
	return ""
}

func (x *MaintenanceRecord) GetPartsTotal() string {
	if x != nil {
		return x.PartsTotal
	}
	return ""
}

func (x *MaintenanceRecord) GetServicesTotal() string {
	if x != nil {
		return x.ServicesTotal
	}
	return ""
}

func (x *MaintenanceRecord) GetFreightTotal() string {
	if x != nil {
		return x.FreightTotal
	}
	return ""
}

func (x *MaintenanceRecord) GetTaxTotal() string {
	if x != nil {
		return x.TaxTotal
	}
	return ""
}

func (x *MaintenanceRecord) GetWorkOrder() string {
	if x != nil {
		return x.WorkOrder
	}
	return ""
}

func (x *MaintenanceRecord) GetVehicleRegistration() string {
	if x != nil {
		return x.VehicleRegistration
	}
	return ""
}

func (x *MaintenanceRecord) GetSerialNumber() string {
	if x != nil {
		return x.SerialNumber
	}
	return ""
}

func (x *MaintenanceRecord) GetParts() []*Part {
	if x != nil {
		return x.Parts
	}
	return nil
}

func (x *MaintenanceRecord) GetFlags() []string {
	if x != nil {
		return x.Flags
	}
	return nil
}

func (x *MaintenanceRecord) GetExtractedByOcr() bool {
	if x != nil {
		return x.ExtractedByOcr
	}
	return false
}

func (x *MaintenanceRecord) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *MaintenanceRecord) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *MaintenanceRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExpenseRecord struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId      string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	VendorName     string                 `protobuf:"bytes,4,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	ExpenseDate    string                 `protobuf:"bytes,5,opt,name=expense_date,json=expenseDate,proto3" json:"expense_date,omitempty"`
	CurrencyCode   string                 `protobuf:"bytes,6,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	Total          string                 `protobuf:"bytes,7,opt,name=total,proto3" json:"total,omitempty"`
	TaxTotal       string                 `protobuf:"bytes,8,opt,name=tax_total,json=taxTotal,proto3" json:"tax_total,omitempty"`
	Category       string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	Description    string                 `protobuf:"bytes,10,opt,name=description,proto3" json:"description,omitempty"`
	Flags          []string               `protobuf:"bytes,11,rep,name=flags,proto3" json:"flags,omitempty"`
	ExtractedByOcr bool                   `protobuf:"varint,12,opt,name=extracted_by_ocr,json=extractedByOcr,proto3" json:"extracted_by_ocr,omitempty"`
	Confidence     float32                `protobuf:"fixed32,13,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview    bool                   `protobuf:"varint,14,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExpenseRecord) Reset() {
	*x = ExpenseRecord{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpenseRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpenseRecord) ProtoMessage() {}

func (x *ExpenseRecord) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpenseRecord.ProtoReflect.Descriptor instead.
func (*ExpenseRecord) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{10}
}

func (x *ExpenseRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExpenseRecord) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExpenseRecord) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExpenseRecord) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *ExpenseRecord) GetExpenseDate() string {
	if x != nil {
		return x.ExpenseDate
	}
	return ""
}

func (x *ExpenseRecord) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *ExpenseRecord) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *ExpenseRecord) GetTaxTotal() string {
	if x != nil {
		return x.TaxTotal
	}
	return ""
}

func (x *ExpenseRecord) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExpenseRecord) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ExpenseRecord) GetFlags() []string {
	if x != nil {
		return x.Flags
	}
	return nil
}

func (x *ExpenseRecord) GetExtractedByOcr() bool {
	if x != nil {
		return x.ExtractedByOcr
	}
	return false
}

func (x *ExpenseRecord) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExpenseRecord) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ExpenseRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecordsRequest) Reset() {
	*x = ListRecordsRequest{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecordsRequest) ProtoMessage() {}

func (x *ListRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListRecordsRequest) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{11}
}

func (x *ListRecordsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListRecordsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListRecordsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListMaintenanceRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*MaintenanceRecord   `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMaintenanceRecordsResponse) Reset() {
	*x = ListMaintenanceRecordsResponse{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMaintenanceRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMaintenanceRecordsResponse) ProtoMessage() {}

func (x *ListMaintenanceRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMaintenanceRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListMaintenanceRecordsResponse) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{12}
}

func (x *ListMaintenanceRecordsResponse) GetRecords() []*MaintenanceRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ListExpenseRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*ExpenseRecord       `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExpenseRecordsResponse) Reset() {
	*x = ListExpenseRecordsResponse{}
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExpenseRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExpenseRecordsResponse) ProtoMessage() {}

func (x *ListExpenseRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fleetdocs_v1_ingestion_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExpenseRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListExpenseRecordsResponse) Descriptor() ([]byte, []int) {
	return file_fleetdocs_v1_ingestion_proto_rawDescGZIP(), []int{13}
}

func (x *ListExpenseRecordsResponse) GetRecords() []*ExpenseRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_fleetdocs_v1_ingestion_proto protoreflect.FileDescriptor

const file_fleetdocs_v1_ingestion_proto_rawDesc = "" +
	"\n" +
	"\x1cfleetdocs/v1/ingestion.proto\x12\ffleetdocs.v1\"\xac\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12)\n" +
	"\x10default_currency\x18\x04 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"k\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\"H\n" +
	"\x15CreateProfileResponse\x12/\n" +
	"\aprofile\x18\x01 \x01(\v2\x15.fleetdocs.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"I\n" +
	"\x14ListProfilesResponse\x121\n" +
	"\bprofiles\x18\x01 \x03(\v2\x15.fleetdocs.v1.ProfileR\bprofiles\"\x98\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x05 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_size\x18\x06 \x01(\x03R\bfileSize\x12\x1d\n" +
	"\n" +
	"page_count\x18\a \x01(\x05R\tpageCount\x12\x1f\n" +
	"\vstorage_url\x18\b \x01(\tR\n" +
	"storageUrl\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\"^\n" +
	"\x15UploadDocumentRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\"\xdc\x02\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.fleetdocs.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12\x1b\n" +
	"\trecord_id\x18\x03 \x01(\tR\brecordId\x12N\n" +
	"\x12maintenance_record\x18\x04 \x01(\v2\x1f.fleetdocs.v1.MaintenanceRecordR\x11maintenanceRecord\x12B\n" +
	"\x0eexpense_record\x18\x05 \x01(\v2\x1b.fleetdocs.v1.ExpenseRecordR\rexpenseRecord\x12#\n" +
	"\rreject_reason\x18\x06 \x01(\tR\frejectReason\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"{\n" +
	"\x04Part\x12\x16\n" +
	"\x06number\x18\x01 \x01(\tR\x06number\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\tR\tunitPrice\"\xd0\x05\n" +
	"\x11MaintenanceRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vvendor_name\x18\x04 \x01(\tR\n" +
	"vendorName\x12!\n" +
	"\finvoice_date\x18\x05 \x01(\tR\vinvoiceDate\x12#\n" +
	"\rcurrency_code\x18\x06 \x01(\tR\fcurrencyCode\x12\x14\n" +
	"\x05total\x18\a \x01(\tR\x05total\x12\x1f\n" +
	"\vlabor_total\x18\b \x01(\tR\n" +
	"laborTotal\x12\x1f\n" +
	"\vparts_total\x18\t \x01(\tR\n" +
	"partsTotal\x12%\n" +
	"\x0eservices_total\x18\n" +
	" \x01(\tR\rservicesTotal\x12#\n" +
	"\rfreight_total\x18\v \x01(\tR\ffreightTotal\x12\x1b\n" +
	"\ttax_total\x18\f \x01(\tR\btaxTotal\x12\x1d\n" +
	"\n" +
	"work_order\x18\r \x01(\tR\tworkOrder\x121\n" +
	"\x14vehicle_registration\x18\x0e \x01(\tR\x13vehicleRegistration\x12#\n" +
	"\rserial_number\x18\x0f \x01(\tR\fserialNumber\x12(\n" +
	"\x05parts\x18\x10 \x03(\v2\x12.fleetdocs.v1.PartR\x05parts\x12\x14\n" +
	"\x05flags\x18\x11 \x03(\tR\x05flags\x12(\n" +
	"\x10extracted_by_ocr\x18\x12 \x01(\bR\x0eextractedByOcr\x12\x1e\n" +
	"\n" +
	"confidence\x18\x13 \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\x14 \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"created_at\x18\x15 \x01(\tR\tcreatedAt\"\xdb\x03\n" +
	"\rExpenseRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vvendor_name\x18\x04 \x01(\tR\n" +
	"vendorName\x12!\n" +
	"\fexpense_date\x18\x05 \x01(\tR\vexpenseDate\x12#\n" +
	"\rcurrency_code\x18\x06 \x01(\tR\fcurrencyCode\x12\x14\n" +
	"\x05total\x18\a \x01(\tR\x05total\x12\x1b\n" +
	"\ttax_total\x18\b \x01(\tR\btaxTotal\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12 \n" +
	"\vdescription\x18\n" +
	" \x01(\tR\vdescription\x12\x14\n" +
	"\x05flags\x18\v \x03(\tR\x05flags\x12(\n" +
	"\x10extracted_by_ocr\x18\f \x01(\bR\x0eextractedByOcr\x12\x1e\n" +
	"\n" +
	"confidence\x18\r \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\x0e \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\"i\n" +
	"\x12ListRecordsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"[\n" +
	"\x1eListMaintenanceRecordsResponse\x129\n" +
	"\arecords\x18\x01 \x03(\v2\x1f.fleetdocs.v1.MaintenanceRecordR\arecords\"S\n" +
	"\x1aListExpenseRecordsResponse\x125\n" +
	"\arecords\x18\x01 \x03(\v2\x1b.fleetdocs.v1.ExpenseRecordR\arecords2\xec\x03\n" +
	"\x10IngestionService\x12X\n" +
	"\rCreateProfile\x12\".fleetdocs.v1.CreateProfileRequest\x1a#.fleetdocs.v1.CreateProfileResponse\x12U\n" +
	"\fListProfiles\x12!.fleetdocs.v1.ListProfilesRequest\x1a\".fleetdocs.v1.ListProfilesResponse\x12[\n" +
	"\x0eUploadDocument\x12#.fleetdocs.v1.UploadDocumentRequest\x1a$.fleetdocs.v1.UploadDocumentResponse\x12h\n" +
	"\x16ListMaintenanceRecords\x12 .fleetdocs.v1.ListRecordsRequest\x1a,.fleetdocs.v1.ListMaintenanceRecordsResponse\x12`\n" +
	"\x12ListExpenseRecords\x12 .fleetdocs.v1.ListRecordsRequest\x1a(.fleetdocs.v1.ListExpenseRecordsResponseBDZBgithub.com/hangarline/fleetdocs/gen/proto/fleetdocs/v1;fleetdocsv1b\x06proto3"

var (
	file_fleetdocs_v1_ingestion_proto_rawDescOnce sync.Once
	file_fleetdocs_v1_ingestion_proto_rawDescData []byte
)

func file_fleetdocs_v1_ingestion_proto_rawDescGZIP() []byte {
	file_fleetdocs_v1_ingestion_proto_rawDescOnce.Do(func() {
		file_fleetdocs_v1_ingestion_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fleetdocs_v1_ingestion_proto_rawDesc), len(file_fleetdocs_v1_ingestion_proto_rawDesc)))
	})
	return file_fleetdocs_v1_ingestion_proto_rawDescData
}

var file_fleetdocs_v1_ingestion_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_fleetdocs_v1_ingestion_proto_goTypes = []any{
	(*Profile)(nil),                        // 0: fleetdocs.v1.Profile
	(*CreateProfileRequest)(nil),           // 1: fleetdocs.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),          // 2: fleetdocs.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),            // 3: fleetdocs.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),           // 4: fleetdocs.v1.ListProfilesResponse
	(*Document)(nil),                       // 5: fleetdocs.v1.Document
	(*UploadDocumentRequest)(nil),          // 6: fleetdocs.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),         // 7: fleetdocs.v1.UploadDocumentResponse
	(*Part)(nil),                           // 8: fleetdocs.v1.Part
	(*MaintenanceRecord)(nil),              // 9: fleetdocs.v1.MaintenanceRecord
	(*ExpenseRecord)(nil),                  // 10: fleetdocs.v1.ExpenseRecord
	(*ListRecordsRequest)(nil),             // 11: fleetdocs.v1.ListRecordsRequest
	(*ListMaintenanceRecordsResponse)(nil), // 12: fleetdocs.v1.ListMaintenanceRecordsResponse
	(*ListExpenseRecordsResponse)(nil),     // 13: fleetdocs.v1.ListExpenseRecordsResponse
}
var file_fleetdocs_v1_ingestion_proto_depIdxs = []int32{
	0,  // 0: fleetdocs.v1.CreateProfileResponse.profile:type_name -> fleetdocs.v1.Profile
	0,  // 1: fleetdocs.v1.ListProfilesResponse.profiles:type_name -> fleetdocs.v1.Profile
	5,  // 2: fleetdocs.v1.UploadDocumentResponse.document:type_name -> fleetdocs.v1.Document
	9,  // 3: fleetdocs.v1.UploadDocumentResponse.maintenance_record:type_name -> fleetdocs.v1.MaintenanceRecord
	10, // 4: fleetdocs.v1.UploadDocumentResponse.expense_record:type_name -> fleetdocs.v1.ExpenseRecord
	8,  // 5: fleetdocs.v1.MaintenanceRecord.parts:type_name -> fleetdocs.v1.Part
	9,  // 6: fleetdocs.v1.ListMaintenanceRecordsResponse.records:type_name -> fleetdocs.v1.MaintenanceRecord
	10, // 7: fleetdocs.v1.ListExpenseRecordsResponse.records:type_name -> fleetdocs.v1.ExpenseRecord
	1,  // 8: fleetdocs.v1.IngestionService.CreateProfile:input_type -> fleetdocs.v1.CreateProfileRequest
	3,  // 9: fleetdocs.v1.IngestionService.ListProfiles:input_type -> fleetdocs.v1.ListProfilesRequest
	6,  // 10: fleetdocs.v1.IngestionService.UploadDocument:input_type -> fleetdocs.v1.UploadDocumentRequest
	11, // 11: fleetdocs.v1.IngestionService.ListMaintenanceRecords:input_type -> fleetdocs.v1.ListRecordsRequest
	11, // 12: fleetdocs.v1.IngestionService.ListExpenseRecords:input_type -> fleetdocs.v1.ListRecordsRequest
	2,  // 13: fleetdocs.v1.IngestionService.CreateProfile:output_type -> fleetdocs.v1.CreateProfileResponse
	4,  // 14: fleetdocs.v1.IngestionService.ListProfiles:output_type -> fleetdocs.v1.ListProfilesResponse
	7,  // 15: fleetdocs.v1.IngestionService.UploadDocument:output_type -> fleetdocs.v1.UploadDocumentResponse
	12, // 16: fleetdocs.v1.IngestionService.ListMaintenanceRecords:output_type -> fleetdocs.v1.ListMaintenanceRecordsResponse
	13, // 17: fleetdocs.v1.IngestionService.ListExpenseRecords:output_type -> fleetdocs.v1.ListExpenseRecordsResponse
	13, // [13:18] is the sub-list for method output_type
	8,  // [8:13] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_fleetdocs_v1_ingestion_proto_init() }
func file_fleetdocs_v1_ingestion_proto_init() {
	if File_fleetdocs_v1_ingestion_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fleetdocs_v1_ingestion_proto_rawDesc), len(file_fleetdocs_v1_ingestion_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_fleetdocs_v1_ingestion_proto_goTypes,
		DependencyIndexes: file_fleetdocs_v1_ingestion_proto_depIdxs,
		MessageInfos:      file_fleetdocs_v1_ingestion_proto_msgTypes,
	}.Build()
	File_fleetdocs_v1_ingestion_proto = out.File
	file_fleetdocs_v1_ingestion_proto_goTypes = nil
	file_fleetdocs_v1_ingestion_proto_depIdxs = nil
}
