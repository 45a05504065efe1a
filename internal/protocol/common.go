package protocol

// BlockMemberDescriptor describes one child of a Block as exposed by
// the members property and the Block find/lookup methods.
type BlockMemberDescriptor struct {
	Role        string  `json:"role"`
	Oid         uint32  `json:"oid"`
	ConstantOid bool    `json:"constantOid"`
	ClassID     ClassId `json:"classId"`
	UserLabel   *string `json:"userLabel"`
	Owner       uint32  `json:"owner"`
}

// Manufacturer identifies the organization that built the device,
// exposed by DeviceManager.
type Manufacturer struct {
	Name           string  `json:"name"`
	OrganizationID *uint32 `json:"organizationId"`
	Website        *string `json:"website"`
}

// Product identifies the device model, exposed by DeviceManager.
type Product struct {
	Name          string  `json:"name"`
	Key           string  `json:"key"`
	RevisionLevel string  `json:"revisionLevel"`
	Brand         *string `json:"brand"`
	UUID          *string `json:"uuid"`
	Description   *string `json:"description"`
}

// DeviceGenericState is the coarse operational state of the device.
type DeviceGenericState int

const (
	DeviceGenericStateUnknown        DeviceGenericState = 0
	DeviceGenericStateNormalOperation DeviceGenericState = 1
	DeviceGenericStateInitializing   DeviceGenericState = 2
	DeviceGenericStateUpdating       DeviceGenericState = 3
	DeviceGenericStateLicensingError DeviceGenericState = 4
	DeviceGenericStateInternalError  DeviceGenericState = 5
)

// DeviceOperationalState is the value of DeviceManager's
// operationalState property.
type DeviceOperationalState struct {
	GeneralState          DeviceGenericState `json:"generalState"`
	DeviceSpecificDetails *string            `json:"deviceSpecificDetails"`
}

// ResetCause describes why the device last restarted.
type ResetCause int

const (
	ResetCauseUnknown           ResetCause = 0
	ResetCausePowerOn           ResetCause = 1
	ResetCauseInternalError     ResetCause = 2
	ResetCauseUpgrade           ResetCause = 3
	ResetCauseControllerRequest ResetCause = 4
	ResetCauseManualReset       ResetCause = 5
)
