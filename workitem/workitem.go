package workitem

// WorkItem is a single assigned complaint record. Fields arrive as flat
// strings keyed by the backend's legacy column names; the record is
// read-only on the client except for its status, which is set exactly once
// through the check-in/out submission.
type WorkItem struct {
	ID               string `json:"S_SERVNO"`
	ClientName       string `json:"COMP_NAME"`
	Address          string `json:"COMP_ADD1"`
	SystemName       string `json:"SYSTEM_NAME"`
	TaskType         string `json:"S_TASK_TYPE"`
	AssignedEngineer string `json:"S_assignedengg"`
	AssignDate       string `json:"S_assigndate"`
	Remark           string `json:"S_REMARK1"`
	Status           string `json:"S_jobstatus"`
	ReportedAt       string `json:"S_SERVDT"`
}

const (
	StatusPending          = "Pending"
	StatusCompleted        = "Completed"
	StatusStandBy          = "Stand By"
	StatusUnderObservation = "Under Observation"
)
