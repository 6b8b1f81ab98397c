// Package report holds the in-memory state of a single visit report: the
// technician's diagnostic answers, the chosen status and the captured
// signature. The state is one explicit serializable structure updated by a
// reducer, so validation and submission stay testable outside any UI.
package report

type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
)

type TypeOfCall string

const (
	CallInstallation TypeOfCall = "Installation"
	CallWarranty     TypeOfCall = "Warranty"
	CallBasis        TypeOfCall = "Call Basis"
	CallAMC          TypeOfCall = "AMC"
	CallPreventive   TypeOfCall = "Preventive"
)

type FormState struct {
	WorkItemID string `json:"workItemId" validate:"required"`

	FaultReported    string `json:"faultReported" validate:"required"`
	CauseProblem     string `json:"causeProblem"`
	Diagnosis        string `json:"diagnosis"`
	PartReplaced     string `json:"partReplaced"`
	MaterialTakenOut string `json:"materialTakenOut"`
	Remark           string `json:"remark" validate:"required"`
	CustomerComment  string `json:"customerComment"`

	TypeOfCall TypeOfCall `json:"typeOfCall" validate:"required,oneof=Installation Warranty 'Call Basis' AMC Preventive"`

	CallAttendedDate  string `json:"callAttendedDate" validate:"required"`
	CallAttendedTime  string `json:"callAttendedTime" validate:"required"`
	CallCompletedDate string `json:"callCompletedDate" validate:"required"`
	CallCompletedTime string `json:"callCompletedTime" validate:"required"`

	Status        Status `json:"status" validate:"required,oneof=Completed Pending"`
	PendingReason string `json:"pendingReason" validate:"required_if=Status Pending"`

	SignatureImage []byte `json:"signatureImage,omitempty"`
}

// Field names the free-text inputs a SetField action can address.
type Field string

const (
	FieldFaultReported     Field = "faultReported"
	FieldCauseProblem      Field = "causeProblem"
	FieldDiagnosis         Field = "diagnosis"
	FieldPartReplaced      Field = "partReplaced"
	FieldMaterialTakenOut  Field = "materialTakenOut"
	FieldRemark            Field = "remark"
	FieldCustomerComment   Field = "customerComment"
	FieldPendingReason     Field = "pendingReason"
	FieldCallAttendedDate  Field = "callAttendedDate"
	FieldCallAttendedTime  Field = "callAttendedTime"
	FieldCallCompletedDate Field = "callCompletedDate"
	FieldCallCompletedTime Field = "callCompletedTime"
)

// Effect is a side effect an Apply transition asks its caller to execute.
// Keeping effects explicit makes the implicit form-to-network coupling of
// the status dropdown visible and independently testable.
type Effect int

const (
	EffectFetchPendingReasons Effect = iota + 1
)

type Action interface {
	isAction()
}

type SetField struct {
	Field Field
	Value string
}

type SetStatus struct {
	Status Status
}

type SetTypeOfCall struct {
	Value TypeOfCall
}

type SetSignature struct {
	Image []byte
}

func (SetField) isAction()      {}
func (SetStatus) isAction()     {}
func (SetTypeOfCall) isAction() {}
func (SetSignature) isAction()  {}

// Apply is the pure reducer. Transitioning the status to Pending emits
// exactly one FetchPendingReasons effect; re-selecting Pending while
// already pending emits none.
func Apply(s FormState, a Action) (FormState, []Effect) {
	switch action := a.(type) {
	case SetField:
		applyField(&s, action.Field, action.Value)
		return s, nil
	case SetStatus:
		if action.Status == StatusPending && s.Status != StatusPending {
			s.Status = action.Status
			return s, []Effect{EffectFetchPendingReasons}
		}
		if action.Status != StatusPending {
			// a stale reason must not survive leaving the Pending state
			s.PendingReason = ""
		}
		s.Status = action.Status
		return s, nil
	case SetTypeOfCall:
		s.TypeOfCall = action.Value
		return s, nil
	case SetSignature:
		s.SignatureImage = action.Image
		return s, nil
	}
	return s, nil
}

func applyField(s *FormState, f Field, v string) {
	switch f {
	case FieldFaultReported:
		s.FaultReported = v
	case FieldCauseProblem:
		s.CauseProblem = v
	case FieldDiagnosis:
		s.Diagnosis = v
	case FieldPartReplaced:
		s.PartReplaced = v
	case FieldMaterialTakenOut:
		s.MaterialTakenOut = v
	case FieldRemark:
		s.Remark = v
	case FieldCustomerComment:
		s.CustomerComment = v
	case FieldPendingReason:
		s.PendingReason = v
	case FieldCallAttendedDate:
		s.CallAttendedDate = v
	case FieldCallAttendedTime:
		s.CallAttendedTime = v
	case FieldCallCompletedDate:
		s.CallCompletedDate = v
	case FieldCallCompletedTime:
		s.CallCompletedTime = v
	}
}
