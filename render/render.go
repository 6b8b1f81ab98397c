// Package render turns a finished visit report into a self-contained HTML
// document: all styling inline, the captured signature and a machine-readable
// complaint QR code embedded as data URIs, no external references.
package render

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"

	"fieldreport/report"
	"fieldreport/workitem"

	qrcode "github.com/skip2/go-qrcode"
)

// NowFunc provides the generation timestamp. Tests pin it.
var NowFunc = time.Now

var reportTmpl = template.Must(template.New("complaintReport").Funcs(template.FuncMap{
	"orElse":      orElse,
	"statusClass": statusClass,
}).Parse(reportTemplate))

type reportData struct {
	ComplaintNo string
	ClientName  string
	SystemName  string
	Location    string
	TaskType    string
	AssignDate  string

	FaultReported     string
	TypeOfCall        string
	AttendedDateTime  string
	CompletedDateTime string

	PartReplaced     string
	CauseProblem     string
	Diagnosis        string
	MaterialTakenOut string

	WorkStatus    string
	PendingReason string
	Remark        string

	GeneratedAt string
	Year        int

	// data URIs, pre-trusted so the escaper does not reject them
	SignatureURI template.URL
	QRCodeURI    template.URL
}

// Render produces the report markup for one work item. Every user-entered
// value passes through the HTML escaper.
func Render(state report.FormState, item workitem.WorkItem) (string, error) {
	now := NowFunc()

	data := reportData{
		ComplaintNo: item.ID,
		ClientName:  item.ClientName,
		SystemName:  item.SystemName,
		Location:    item.Address,
		TaskType:    item.TaskType,
		AssignDate:  item.AssignDate,

		FaultReported:     state.FaultReported,
		TypeOfCall:        string(state.TypeOfCall),
		AttendedDateTime:  joinDateTime(state.CallAttendedDate, state.CallAttendedTime),
		CompletedDateTime: joinDateTime(state.CallCompletedDate, state.CallCompletedTime),

		PartReplaced:     state.PartReplaced,
		CauseProblem:     state.CauseProblem,
		Diagnosis:        state.Diagnosis,
		MaterialTakenOut: state.MaterialTakenOut,

		WorkStatus:    string(state.Status),
		PendingReason: state.PendingReason,
		Remark:        state.Remark,

		GeneratedAt: now.Format("02 Jan 2006 03:04 PM"),
		Year:        now.Year(),
	}

	if len(state.SignatureImage) > 0 {
		data.SignatureURI = pngDataURI(state.SignatureImage)
	}
	if item.ID != "" {
		qr, err := qrcode.Encode(item.ID, qrcode.Medium, 128)
		if err != nil {
			return "", fmt.Errorf("encode complaint qr: %w", err)
		}
		data.QRCodeURI = pngDataURI(qr)
	}

	var buf strings.Builder
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render complaint report: %w", err)
	}
	return buf.String(), nil
}

func pngDataURI(img []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
}

func joinDateTime(date, clock string) string {
	if date == "" || clock == "" {
		return ""
	}
	return date + " " + clock
}

func orElse(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// statusClass picks the status tag color by substring, so backend variants
// like "Job Completed" still map to the right style.
func statusClass(status string) string {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "complete"):
		return "status-completed"
	case strings.Contains(lower, "stand by"):
		return "status-standby"
	case strings.Contains(lower, "observation"):
		return "status-observation"
	default:
		return "status-pending"
	}
}
