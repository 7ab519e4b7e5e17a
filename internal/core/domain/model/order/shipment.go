package order

// ShipmentType is the fulfilment channel of an order.
type ShipmentType int

const (
	ShipmentUnknown ShipmentType = iota
	Local
	Foreign
	Warranty
	Return
	GuideRequest
)

var shipmentNames = map[ShipmentType]string{
	ShipmentUnknown: "Unknown",
	Local:           "Local",
	Foreign:         "Foreign",
	Warranty:        "Warranty",
	Return:          "Return",
	GuideRequest:    "GuideRequest",
}

// ShipmentTypes lists the five defined categories in shipment-priority order.
func ShipmentTypes() []ShipmentType {
	return []ShipmentType{Local, Foreign, Warranty, Return, GuideRequest}
}

func (t ShipmentType) String() string {
	if name, ok := shipmentNames[t]; ok {
		return name
	}
	return "Unknown"
}

// IsKnown reports whether t is one of the five defined categories.
func (t ShipmentType) IsKnown() bool {
	return t >= Local && t <= GuideRequest
}

// Rank returns the shipment-priority sort key: Local=0 ... GuideRequest=4,
// anything else after them.
func (t ShipmentType) Rank() int {
	if t.IsKnown() {
		return int(t - Local)
	}
	return int(GuideRequest-Local) + 1
}

// Shift sub-classifies Local orders by route batch. The zero value is
// NotApplicable, which also collects Local orders with a missing or legacy shift.
type Shift int

const (
	NotApplicable Shift = iota
	MorningLocal
	AfternoonLocal
	Saltillo
	Warehouse
)

var shiftNames = map[Shift]string{
	NotApplicable:  "NotApplicable",
	MorningLocal:   "MorningLocal",
	AfternoonLocal: "AfternoonLocal",
	Saltillo:       "Saltillo",
	Warehouse:      "Warehouse",
}

// Shifts lists the four named shifts followed by NotApplicable.
func Shifts() []Shift {
	return []Shift{MorningLocal, AfternoonLocal, Saltillo, Warehouse, NotApplicable}
}

func (s Shift) String() string {
	if name, ok := shiftNames[s]; ok {
		return name
	}
	return "NotApplicable"
}
