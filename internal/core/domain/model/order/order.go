package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsReadOnly is returned for any edit of a Completed order.
	ErrOrderIsReadOnly = errs.NewValueIsInvalidErrorWithCause("order", errors.New("completed orders are read-only"))

	// ErrAssigneeIsRequired is returned when completing an order nobody picked.
	ErrAssigneeIsRequired = errs.NewValueIsRequiredError("assignee")

	// ErrShiftRequiresLocalShipment is returned when a shift is set on a non-Local order.
	ErrShiftRequiresLocalShipment = errs.NewValueIsInvalidErrorWithCause(
		"shift", errors.New("only Local orders have a shift"),
	)
)

// Order is a single customer request tracked from intake to completion.
//
// Order follows these invariants:
//   - The identifier never changes once assigned
//   - ProcessingStartedAt is non-nil iff Status is InProcess
//   - CompletedAt is non-nil iff Status is Completed
//   - Shift is NotApplicable for every shipment type but Local
//   - A Completed order rejects every mutation
//
// The zero value is not usable; build orders with NewOrder or RestoreOrder.
type Order struct {
	id                      kernel.OrderID
	invoiceFolio            string
	registeredAt            *time.Time
	salesperson             string
	clientName              string
	shipmentType            ShipmentType
	deliveryDate            *time.Time
	comment                 string
	notes                   string
	fulfillmentModification string
	attachments             []string
	fulfillmentAttachments  []string
	status                  Status
	paymentStatus           string
	completedAt             *time.Time
	processingStartedAt     *time.Time
	shift                   Shift
	assignee                string

	// sourceRowIndex is the 1-based row of the backing record. It is only
	// valid for the load that produced this order.
	sourceRowIndex int
}

// Intake carries the values captured by the intake form.
type Intake struct {
	InvoiceFolio  string
	Salesperson   string
	ClientName    string
	ShipmentType  ShipmentType
	DeliveryDate  *time.Time
	Shift         Shift
	Comment       string
	PaymentStatus string
	Attachments   []string
}

// Snapshot is the full state of an order as read from or written to the
// store. RestoreOrder accepts it without validation so malformed records
// still load.
type Snapshot struct {
	ID                      kernel.OrderID
	InvoiceFolio            string
	RegisteredAt            *time.Time
	Salesperson             string
	ClientName              string
	ShipmentType            ShipmentType
	DeliveryDate            *time.Time
	Comment                 string
	Notes                   string
	FulfillmentModification string
	Attachments             []string
	FulfillmentAttachments  []string
	Status                  Status
	PaymentStatus           string
	CompletedAt             *time.Time
	ProcessingStartedAt     *time.Time
	Shift                   Shift
	Assignee                string
	SourceRowIndex          int
}

// NewOrder creates a Pending order registered at now.
//
// Parameters:
//   - id: the next identifier from the generator
//   - intake: form values; ClientName and a known ShipmentType are required,
//     and Shift must be NotApplicable unless the shipment is Local
//   - now: registration timestamp
//
// Example:
//
//	id, _ := kernel.NewOrderID(101)
//	o, err := order.NewOrder(id, order.Intake{ClientName: "Ferretería Norte", ShipmentType: order.Local, Shift: order.MorningLocal}, time.Now())
func NewOrder(id kernel.OrderID, intake Intake, now time.Time) (*Order, error) {
	var problems []error
	if id.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("order id"))
	}
	if strings.TrimSpace(intake.ClientName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("client name"))
	}
	if !intake.ShipmentType.IsKnown() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"shipment type", fmt.Errorf("%d is not a valid shipment type", intake.ShipmentType)))
	}
	if intake.ShipmentType != Local && intake.Shift != NotApplicable {
		problems = append(problems, ErrShiftRequiresLocalShipment)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	registered := now
	return &Order{
		id:            id,
		invoiceFolio:  strings.TrimSpace(intake.InvoiceFolio),
		registeredAt:  &registered,
		salesperson:   strings.TrimSpace(intake.Salesperson),
		clientName:    strings.TrimSpace(intake.ClientName),
		shipmentType:  intake.ShipmentType,
		deliveryDate:  truncateToDate(intake.DeliveryDate),
		comment:       intake.Comment,
		attachments:   slices.Clone(intake.Attachments),
		status:        Pending,
		paymentStatus: intake.PaymentStatus,
		shift:         intake.Shift,
	}, nil
}

// RestoreOrder rebuilds an order from a loaded record. It never fails:
// absent values stay absent and unknown labels stay Unknown.
func RestoreOrder(s Snapshot) *Order {
	return &Order{
		id:                      s.ID,
		invoiceFolio:            s.InvoiceFolio,
		registeredAt:            copyTime(s.RegisteredAt),
		salesperson:             s.Salesperson,
		clientName:              s.ClientName,
		shipmentType:            s.ShipmentType,
		deliveryDate:            truncateToDate(s.DeliveryDate),
		comment:                 s.Comment,
		notes:                   s.Notes,
		fulfillmentModification: s.FulfillmentModification,
		attachments:             slices.Clone(s.Attachments),
		fulfillmentAttachments:  slices.Clone(s.FulfillmentAttachments),
		status:                  s.Status,
		paymentStatus:           s.PaymentStatus,
		completedAt:             copyTime(s.CompletedAt),
		processingStartedAt:     copyTime(s.ProcessingStartedAt),
		shift:                   s.Shift,
		assignee:                s.Assignee,
		sourceRowIndex:          s.SourceRowIndex,
	}
}

// Snapshot returns a copy of the full state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                      o.id,
		InvoiceFolio:            o.invoiceFolio,
		RegisteredAt:            copyTime(o.registeredAt),
		Salesperson:             o.salesperson,
		ClientName:              o.clientName,
		ShipmentType:            o.shipmentType,
		DeliveryDate:            copyTime(o.deliveryDate),
		Comment:                 o.comment,
		Notes:                   o.notes,
		FulfillmentModification: o.fulfillmentModification,
		Attachments:             slices.Clone(o.attachments),
		FulfillmentAttachments:  slices.Clone(o.fulfillmentAttachments),
		Status:                  o.status,
		PaymentStatus:           o.paymentStatus,
		CompletedAt:             copyTime(o.completedAt),
		ProcessingStartedAt:     copyTime(o.processingStartedAt),
		Shift:                   o.shift,
		Assignee:                o.assignee,
		SourceRowIndex:          o.sourceRowIndex,
	}
}

// Clone returns an independent copy. Mutations are applied to clones so a
// failed write leaves the loaded state untouched.
func (o *Order) Clone() *Order {
	return RestoreOrder(o.Snapshot())
}

func (o *Order) ID() kernel.OrderID { return o.id }
func (o *Order) InvoiceFolio() string { return o.invoiceFolio }
func (o *Order) RegisteredAt() *time.Time { return copyTime(o.registeredAt) }
func (o *Order) Salesperson() string { return o.salesperson }
func (o *Order) ClientName() string { return o.clientName }
func (o *Order) ShipmentType() ShipmentType { return o.shipmentType }
func (o *Order) DeliveryDate() *time.Time { return copyTime(o.deliveryDate) }
func (o *Order) Comment() string { return o.comment }
func (o *Order) Notes() string { return o.notes }
func (o *Order) FulfillmentModification() string { return o.fulfillmentModification }
func (o *Order) Status() Status { return o.status }
func (o *Order) PaymentStatus() string { return o.paymentStatus }
func (o *Order) CompletedAt() *time.Time { return copyTime(o.completedAt) }
func (o *Order) ProcessingStartedAt() *time.Time { return copyTime(o.processingStartedAt) }
func (o *Order) Assignee() string { return o.assignee }
func (o *Order) SourceRowIndex() int { return o.sourceRowIndex }
func (o *Order) Attachments() []string { return slices.Clone(o.attachments) }
func (o *Order) FulfillmentAttachments() []string { return slices.Clone(o.fulfillmentAttachments) }

// Shift returns the stored shift, whatever the shipment type.
func (o *Order) Shift() Shift { return o.shift }

// EffectiveShift is the shift used for classification: the stored shift for
// Local orders, NotApplicable for everything else.
func (o *Order) EffectiveShift() Shift {
	if o.shipmentType != Local {
		return NotApplicable
	}
	if _, ok := shiftNames[o.shift]; !ok {
		return NotApplicable
	}
	return o.shift
}

// AttachmentsOf returns the list for the given category.
func (o *Order) AttachmentsOf(c AttachmentCategory) []string {
	if c == FulfillmentAttachments {
		return o.FulfillmentAttachments()
	}
	return o.Attachments()
}

// IsActive reports whether the order is neither Completed nor Cancelled.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// IsReadOnly reports whether edits must be rejected.
func (o *Order) IsReadOnly() bool {
	return o.status == Completed
}

// IsStale reports whether the order has been InProcess for longer than
// threshold at now.
func (o *Order) IsStale(now time.Time, threshold time.Duration) bool {
	return o.status == InProcess && o.processingStartedAt != nil && now.Sub(*o.processingStartedAt) > threshold
}

// ChangeStatus moves the order to target and stamps the derived timestamps.
//
// Business rules:
//   - The transition must be allowed by Status.TransitionTo under model
//   - Completing requires a non-empty assignee (ErrAssigneeIsRequired)
//   - Entering InProcess sets ProcessingStartedAt to now and clears CompletedAt
//   - Entering Completed sets CompletedAt to now and clears ProcessingStartedAt
//   - Entering any other status clears both
//
// Returns the fields that must be persisted together. Asking for the current
// status is a no-op returning no fields. On error the order is unchanged.
func (o *Order) ChangeStatus(target Status, now time.Time, model StateModel) ([]Field, error) {
	if target == o.status {
		return nil, nil
	}

	next, err := o.status.TransitionTo(target, model)
	if err != nil {
		return nil, err
	}
	if next == Completed && strings.TrimSpace(o.assignee) == "" {
		return nil, ErrAssigneeIsRequired
	}

	stamp := now
	o.status = next
	o.processingStartedAt = nil
	o.completedAt = nil
	switch next {
	case InProcess:
		o.processingStartedAt = &stamp
	case Completed:
		o.completedAt = &stamp
	}

	return []Field{FieldStatus, FieldProcessingStartedAt, FieldCompletedAt}, nil
}

// Start begins (or resumes) processing, e.g. when the order is printed.
func (o *Order) Start(now time.Time, model StateModel) ([]Field, error) {
	return o.ChangeStatus(InProcess, now, model)
}

// Complete finishes the order.
func (o *Order) Complete(now time.Time, model StateModel) ([]Field, error) {
	return o.ChangeStatus(Completed, now, model)
}

// MarkDelayed is the time-driven InProcess -> Delayed transition.
func (o *Order) MarkDelayed(now time.Time) ([]Field, error) {
	if o.status != InProcess {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s cannot be delayed", o.status))
	}
	return o.ChangeStatus(Delayed, now, Basic)
}

// SetNotes replaces the free-text notes.
func (o *Order) SetNotes(notes string) ([]Field, error) {
	if o.IsReadOnly() {
		return nil, ErrOrderIsReadOnly
	}
	o.notes = notes
	return []Field{FieldNotes}, nil
}

// SetFulfillmentModification replaces the fulfilment change note.
func (o *Order) SetFulfillmentModification(text string) ([]Field, error) {
	if o.IsReadOnly() {
		return nil, ErrOrderIsReadOnly
	}
	o.fulfillmentModification = text
	return []Field{FieldFulfillmentModification}, nil
}

// AssignTo sets the picker responsible for the order. An empty assignee
// unassigns it.
func (o *Order) AssignTo(assignee string) ([]Field, error) {
	if o.IsReadOnly() {
		return nil, ErrOrderIsReadOnly
	}
	o.assignee = strings.TrimSpace(assignee)
	return []Field{FieldAssignee}, nil
}

// Reschedule sets the delivery date; the time of day is dropped. nil clears it.
func (o *Order) Reschedule(date *time.Time) ([]Field, error) {
	if o.IsReadOnly() {
		return nil, ErrOrderIsReadOnly
	}
	o.deliveryDate = truncateToDate(date)
	return []Field{FieldDeliveryDate}, nil
}

// ChangeShift moves a Local order to another shift.
func (o *Order) ChangeShift(shift Shift) ([]Field, error) {
	if o.IsReadOnly() {
		return nil, ErrOrderIsReadOnly
	}
	if o.shipmentType != Local && shift != NotApplicable {
		return nil, ErrShiftRequiresLocalShipment
	}
	if _, ok := shiftNames[shift]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("shift", fmt.Errorf("%d is not a valid shift", shift))
	}
	o.shift = shift
	return []Field{FieldShift}, nil
}

// AddAttachment appends a stored reference to the category's list.
func (o *Order) AddAttachment(category AttachmentCategory, ref string) ([]Field, error) {
	if o.IsReadOnly() {
		return nil, ErrOrderIsReadOnly
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errs.NewValueIsRequiredError("attachment reference")
	}
	if category == FulfillmentAttachments {
		o.fulfillmentAttachments = append(o.fulfillmentAttachments, ref)
	} else {
		o.attachments = append(o.attachments, ref)
	}
	return []Field{category.Field()}, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func truncateToDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &d
}
