// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type BookingFactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BookingFactsRequest) Reset() {
	*x = BookingFactsRequest{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BookingFactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookingFactsRequest) ProtoMessage() {}

func (x *BookingFactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookingFactsRequest.ProtoReflect.Descriptor instead.
func (*BookingFactsRequest) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{0}
}

func (x *BookingFactsRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

type PeriodRate struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        string                 `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	Enabled       bool                   `protobuf:"varint,2,opt,name=enabled,proto3" json:"enabled,omitempty"`
	Price         *float64               `protobuf:"fixed64,3,opt,name=price,proto3,oneof" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PeriodRate) Reset() {
	*x = PeriodRate{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PeriodRate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PeriodRate) ProtoMessage() {}

func (x *PeriodRate) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PeriodRate.ProtoReflect.Descriptor instead.
func (*PeriodRate) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{1}
}

func (x *PeriodRate) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *PeriodRate) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

func (x *PeriodRate) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

type SlotGroup struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []int32                `protobuf:"varint,1,rep,packed,name=ids,proto3" json:"ids,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Color         string                 `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Price         *float64               `protobuf:"fixed64,5,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Insurance     *float64               `protobuf:"fixed64,6,opt,name=insurance,proto3,oneof" json:"insurance,omitempty"`
	Area          *float64               `protobuf:"fixed64,7,opt,name=area,proto3,oneof" json:"area,omitempty"`
	Capacity      int32                  `protobuf:"varint,8,opt,name=capacity,proto3" json:"capacity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SlotGroup) Reset() {
	*x = SlotGroup{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SlotGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SlotGroup) ProtoMessage() {}

func (x *SlotGroup) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SlotGroup.ProtoReflect.Descriptor instead.
func (*SlotGroup) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{2}
}

func (x *SlotGroup) GetIds() []int32 {
	if x != nil {
		return x.Ids
	}
	return nil
}

func (x *SlotGroup) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SlotGroup) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *SlotGroup) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SlotGroup) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *SlotGroup) GetInsurance() float64 {
	if x != nil && x.Insurance != nil {
		return *x.Insurance
	}
	return 0
}

func (x *SlotGroup) GetArea() float64 {
	if x != nil && x.Area != nil {
		return *x.Area
	}
	return 0
}

func (x *SlotGroup) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

type ApartmentUnit struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Bedrooms      int32                  `protobuf:"varint,3,opt,name=bedrooms,proto3" json:"bedrooms,omitempty"`
	Bathrooms     int32                  `protobuf:"varint,4,opt,name=bathrooms,proto3" json:"bathrooms,omitempty"`
	Capacity      int32                  `protobuf:"varint,5,opt,name=capacity,proto3" json:"capacity,omitempty"`
	Count         int32                  `protobuf:"varint,6,opt,name=count,proto3" json:"count,omitempty"`
	Rates         []*PeriodRate          `protobuf:"bytes,7,rep,name=rates,proto3" json:"rates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApartmentUnit) Reset() {
	*x = ApartmentUnit{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApartmentUnit) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApartmentUnit) ProtoMessage() {}

func (x *ApartmentUnit) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApartmentUnit.ProtoReflect.Descriptor instead.
func (*ApartmentUnit) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{3}
}

func (x *ApartmentUnit) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ApartmentUnit) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ApartmentUnit) GetBedrooms() int32 {
	if x != nil {
		return x.Bedrooms
	}
	return 0
}

func (x *ApartmentUnit) GetBathrooms() int32 {
	if x != nil {
		return x.Bathrooms
	}
	return 0
}

func (x *ApartmentUnit) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *ApartmentUnit) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *ApartmentUnit) GetRates() []*PeriodRate {
	if x != nil {
		return x.Rates
	}
	return nil
}

type TourWindow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	From          *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TourWindow) Reset() {
	*x = TourWindow{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TourWindow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TourWindow) ProtoMessage() {}

func (x *TourWindow) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TourWindow.ProtoReflect.Descriptor instead.
func (*TourWindow) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{4}
}

func (x *TourWindow) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *TourWindow) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

type BookingFactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	OfferType     string                 `protobuf:"bytes,5,opt,name=offer_type,json=offerType,proto3" json:"offer_type,omitempty"`
	Currency      string                 `protobuf:"bytes,6,opt,name=currency,proto3" json:"currency,omitempty"`
	Price         *float64               `protobuf:"fixed64,7,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Discount      *float64               `protobuf:"fixed64,8,opt,name=discount,proto3,oneof" json:"discount,omitempty"`
	Insurance     *float64               `protobuf:"fixed64,9,opt,name=insurance,proto3,oneof" json:"insurance,omitempty"`
	Rates         []*PeriodRate          `protobuf:"bytes,10,rep,name=rates,proto3" json:"rates,omitempty"`
	Groups        []*SlotGroup           `protobuf:"bytes,11,rep,name=groups,proto3" json:"groups,omitempty"`
	Units         []*ApartmentUnit       `protobuf:"bytes,12,rep,name=units,proto3" json:"units,omitempty"`
	TourWindows   []*TourWindow          `protobuf:"bytes,13,rep,name=tour_windows,json=tourWindows,proto3" json:"tour_windows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BookingFactsResponse) Reset() {
	*x = BookingFactsResponse{}
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BookingFactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BookingFactsResponse) ProtoMessage() {}

func (x *BookingFactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_catalog_v1_catalog_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BookingFactsResponse.ProtoReflect.Descriptor instead.
func (*BookingFactsResponse) Descriptor() ([]byte, []int) {
	return file_catalog_v1_catalog_proto_rawDescGZIP(), []int{5}
}

func (x *BookingFactsResponse) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *BookingFactsResponse) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *BookingFactsResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BookingFactsResponse) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *BookingFactsResponse) GetOfferType() string {
	if x != nil {
		return x.OfferType
	}
	return ""
}

func (x *BookingFactsResponse) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *BookingFactsResponse) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *BookingFactsResponse) GetDiscount() float64 {
	if x != nil && x.Discount != nil {
		return *x.Discount
	}
	return 0
}

func (x *BookingFactsResponse) GetInsurance() float64 {
	if x != nil && x.Insurance != nil {
		return *x.Insurance
	}
	return 0
}

func (x *BookingFactsResponse) GetRates() []*PeriodRate {
	if x != nil {
		return x.Rates
	}
	return nil
}

func (x *BookingFactsResponse) GetGroups() []*SlotGroup {
	if x != nil {
		return x.Groups
	}
	return nil
}

func (x *BookingFactsResponse) GetUnits() []*ApartmentUnit {
	if x != nil {
		return x.Units
	}
	return nil
}

func (x *BookingFactsResponse) GetTourWindows() []*TourWindow {
	if x != nil {
		return x.TourWindows
	}
	return nil
}

var File_catalog_v1_catalog_proto protoreflect.FileDescriptor

const file_catalog_v1_catalog_proto_rawDesc = "" +
	"\n" +
	"\x18catalog/v1/catalog.proto\x12\n" +
	"catalog.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"6\n" +
	"\x13BookingFactsRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\"c\n" +
	"\n" +
	"PeriodRate\x12\x16\n" +
	"\x06period\x18\x01 \x01(\tR\x06period\x12\x18\n" +
	"\aenabled\x18\x02 \x01(\bR\aenabled\x12\x19\n" +
	"\x05price\x18\x03 \x01(\x01H\x00R\x05price\x88\x01\x01B\b\n" +
	"\x06_price\"\xfd\x01\n" +
	"\tSlotGroup\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\x05R\x03ids\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05color\x18\x03 \x01(\tR\x05color\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x19\n" +
	"\x05price\x18\x05 \x01(\x01H\x00R\x05price\x88\x01\x01\x12!\n" +
	"\tinsurance\x18\x06 \x01(\x01H\x01R\tinsurance\x88\x01\x01\x12\x17\n" +
	"\x04area\x18\a \x01(\x01H\x02R\x04area\x88\x01\x01\x12\x1a\n" +
	"\bcapacity\x18\b \x01(\x05R\bcapacityB\b\n" +
	"\x06_priceB\f\n" +
	"\n" +
	"_insuranceB\a\n" +
	"\x05_area\"\xd3\x01\n" +
	"\rApartmentUnit\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bbedrooms\x18\x03 \x01(\x05R\bbedrooms\x12\x1c\n" +
	"\tbathrooms\x18\x04 \x01(\x05R\tbathrooms\x12\x1a\n" +
	"\bcapacity\x18\x05 \x01(\x05R\bcapacity\x12\x14\n" +
	"\x05count\x18\x06 \x01(\x05R\x05count\x12,\n" +
	"\x05rates\x18\a \x03(\v2\x16.catalog.v1.PeriodRateR\x05rates\"h\n" +
	"\n" +
	"TourWindow\x12.\n" +
	"\x04from\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\"\x8e\x04\n" +
	"\x14BookingFactsResponse\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"offer_type\x18\x05 \x01(\tR\tofferType\x12\x1a\n" +
	"\bcurrency\x18\x06 \x01(\tR\bcurrency\x12\x19\n" +
	"\x05price\x18\a \x01(\x01H\x00R\x05price\x88\x01\x01\x12\x1f\n" +
	"\bdiscount\x18\b \x01(\x01H\x01R\bdiscount\x88\x01\x01\x12!\n" +
	"\tinsurance\x18\t \x01(\x01H\x02R\tinsurance\x88\x01\x01\x12,\n" +
	"\x05rates\x18\n" +
	" \x03(\v2\x16.catalog.v1.PeriodRateR\x05rates\x12-\n" +
	"\x06groups\x18\v \x03(\v2\x15.catalog.v1.SlotGroupR\x06groups\x12/\n" +
	"\x05units\x18\f \x03(\v2\x19.catalog.v1.ApartmentUnitR\x05units\x129\n" +
	"\ftour_windows\x18\r \x03(\v2\x16.catalog.v1.TourWindowR\vtourWindowsB\b\n" +
	"\x06_priceB\v\n" +
	"\t_discountB\f\n" +
	"\n" +
	"_insurance2f\n" +
	"\x0eCatalogService\x12T\n" +
	"\x0fGetBookingFacts\x12\x1f.catalog.v1.BookingFactsRequest\x1a .catalog.v1.BookingFactsResponseB?Z=github.com/m-alharbi/aqarbook/protos/gen/catalog/v1;catalogv1b\x06proto3"

var (
	file_catalog_v1_catalog_proto_rawDescOnce sync.Once
	file_catalog_v1_catalog_proto_rawDescData []byte
)

func file_catalog_v1_catalog_proto_rawDescGZIP() []byte {
	file_catalog_v1_catalog_proto_rawDescOnce.Do(func() {
		file_catalog_v1_catalog_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)))
	})
	return file_catalog_v1_catalog_proto_rawDescData
}

var file_catalog_v1_catalog_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_catalog_v1_catalog_proto_goTypes = []any{
	(*BookingFactsRequest)(nil),   // 0: catalog.v1.BookingFactsRequest
	(*PeriodRate)(nil),            // 1: catalog.v1.PeriodRate
	(*SlotGroup)(nil),             // 2: catalog.v1.SlotGroup
	(*ApartmentUnit)(nil),         // 3: catalog.v1.ApartmentUnit
	(*TourWindow)(nil),            // 4: catalog.v1.TourWindow
	(*BookingFactsResponse)(nil),  // 5: catalog.v1.BookingFactsResponse
	(*timestamppb.Timestamp)(nil), // 6: google.protobuf.Timestamp
}
var file_catalog_v1_catalog_proto_depIdxs = []int32{
	1, // 0: catalog.v1.ApartmentUnit.rates:type_name -> catalog.v1.PeriodRate
	6, // 1: catalog.v1.TourWindow.from:type_name -> google.protobuf.Timestamp
	6, // 2: catalog.v1.TourWindow.to:type_name -> google.protobuf.Timestamp
	1, // 3: catalog.v1.BookingFactsResponse.rates:type_name -> catalog.v1.PeriodRate
	2, // 4: catalog.v1.BookingFactsResponse.groups:type_name -> catalog.v1.SlotGroup
	3, // 5: catalog.v1.BookingFactsResponse.units:type_name -> catalog.v1.ApartmentUnit
	4, // 6: catalog.v1.BookingFactsResponse.tour_windows:type_name -> catalog.v1.TourWindow
	0, // 7: catalog.v1.CatalogService.GetBookingFacts:input_type -> catalog.v1.BookingFactsRequest
	5, // 8: catalog.v1.CatalogService.GetBookingFacts:output_type -> catalog.v1.BookingFactsResponse
	8, // [8:9] is the sub-list for method output_type
	7, // [7:8] is the sub-list for method input_type
	7, // [7:7] is the sub-list for extension type_name
	7, // [7:7] is the sub-list for extension extendee
	0, // [0:7] is the sub-list for field type_name
}

func init() { file_catalog_v1_catalog_proto_init() }
func file_catalog_v1_catalog_proto_init() {
	if File_catalog_v1_catalog_proto != nil {
		return
	}
	file_catalog_v1_catalog_proto_msgTypes[1].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[2].OneofWrappers = []any{}
	file_catalog_v1_catalog_proto_msgTypes[5].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_catalog_v1_catalog_proto_rawDesc), len(file_catalog_v1_catalog_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_catalog_v1_catalog_proto_goTypes,
		DependencyIndexes: file_catalog_v1_catalog_proto_depIdxs,
		MessageInfos:      file_catalog_v1_catalog_proto_msgTypes,
	}.Build()
	File_catalog_v1_catalog_proto = out.File
	file_catalog_v1_catalog_proto_goTypes = nil
	file_catalog_v1_catalog_proto_depIdxs = nil
}
