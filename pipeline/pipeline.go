// Package pipeline drives a complete report submission: validate, rasterize
// the signature, render the markup, export the document, push the check-in/out
// record and upload the file. One submission runs at a time.
package pipeline

import (
	"context"
	"sync/atomic"

	"fieldreport/bizerror"
	"fieldreport/common"
	"fieldreport/credstore"
	"fieldreport/export"
	"fieldreport/render"
	"fieldreport/report"
	"fieldreport/session"
	"fieldreport/signature"
	"fieldreport/upload"
	"fieldreport/workitem"

	"github.com/opentracing/opentracing-go"
)

// Outcome is the result of one submission run. The document is always
// present on success; RemoteURL is empty and UploadErr set when the push
// to the remote store failed after a valid local export.
type Outcome struct {
	Document   *export.GeneratedDocument
	RemoteURL  string
	UploadErr  error
	Submission session.Outcome
}

var inFlight int32

var SubmitFunc = Submit

// Submit runs the pipeline front to back. Local failures (validation,
// missing signature) reject before any network traffic or document
// generation happens. A failed upload does not fail the submission.
func Submit(ctx context.Context, state report.FormState, pad *signature.Pad,
	item workitem.WorkItem, cred credstore.Credential, format export.Format) (*Outcome, error) {

	if !atomic.CompareAndSwapInt32(&inFlight, 0, 1) {
		return nil, bizerror.ErrSubmissionInFlight
	}
	defer func() {
		atomic.StoreInt32(&inFlight, 0)
		common.Log.Debugf("submission slot released for item %s", item.ID)
	}()

	span, ctx := opentracing.StartSpanFromContext(ctx, "submit-report")
	span.SetTag("work-item", item.ID)
	defer span.Finish()

	if errs := report.Validate(state); len(errs) > 0 {
		return nil, &bizerror.ErrValidation{Fields: errs}
	}
	if pad.Empty() {
		return nil, &bizerror.ErrValidation{Fields: []bizerror.FieldError{
			{Field: "signature", Message: "signature is required"},
		}}
	}

	sig, err := pad.Rasterize()
	if err != nil {
		return nil, err
	}
	state.SignatureImage = sig

	markup, err := render.Render(state, item)
	if err != nil {
		return nil, bizerror.WrapExport(err)
	}

	doc, err := export.ExportFunc(markup, "complaint_"+item.ID+"_report", format)
	if err != nil {
		return nil, err
	}

	submission, err := workitem.SubmitCheckInOutFunc(ctx, cred.Username, cred.Password, item.ID, state.PendingReason)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Document: doc, Submission: submission}
	result, err := upload.UploadFunc(ctx, doc.FileName, doc.Content)
	if err != nil {
		// the exported file stays valid; surface the miss as a warning
		common.Log.Warnf("report upload failed for item %s: %v", item.ID, err)
		outcome.UploadErr = err
		return outcome, nil
	}
	outcome.RemoteURL = result.RemoteURL
	return outcome, nil
}
