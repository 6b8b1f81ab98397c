package render

const reportTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Complaint Report - {{.ComplaintNo}}</title>
    <style>
      body { font-family: 'Inter', 'Segoe UI', Roboto, sans-serif; color: #323130; margin: 0; background-color: #f3f2f1; line-height: 1.5; }
      .container { max-width: 850px; margin: 20px auto; background-color: white; border-radius: 8px; overflow: hidden; }
      .header { background: linear-gradient(135deg, #0078d4, #005a9e); color: white; padding: 30px; text-align: center; }
      .company-name { font-size: 28px; font-weight: 700; margin: 0; text-transform: uppercase; letter-spacing: 1px; }
      .document-title { font-size: 20px; margin-top: 8px; font-weight: 400; opacity: 0.9; }
      .complaint-number { background-color: #f3f2f1; padding: 15px 20px; text-align: center; font-size: 18px; font-weight: 600; color: #0078d4; border-bottom: 1px solid #edebe9; }
      .section { padding: 25px; border-bottom: 1px solid #edebe9; }
      .section-title { font-size: 18px; font-weight: 600; color: #0078d4; margin-bottom: 20px; text-transform: uppercase; letter-spacing: 0.5px; }
      .info-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 20px; }
      .info-item { margin-bottom: 15px; }
      .info-label { font-weight: 500; color: #605e5c; font-size: 14px; margin-bottom: 5px; text-transform: uppercase; letter-spacing: 0.5px; }
      .info-value { font-size: 16px; color: #323130; padding: 8px 12px; background-color: #f3f2f1; border-radius: 4px; border-left: 3px solid #0078d4; }
      .remark-section { background-color: #f3f2f1; padding: 20px; border-radius: 6px; margin-top: 20px; border: 1px solid #edebe9; }
      .remark-text { font-style: italic; color: #605e5c; line-height: 1.6; padding: 10px; background-color: white; border-radius: 4px; border-left: 3px solid #0078d4; }
      .signatures { display: grid; grid-template-columns: 1fr 1fr; gap: 30px; padding: 30px; background-color: #f3f2f1; }
      .signature-box { background-color: white; padding: 20px; border-radius: 6px; text-align: center; }
      .signature-label { font-size: 14px; color: #605e5c; margin-bottom: 10px; font-weight: 500; }
      .signature-placeholder { color: #605e5c; font-style: italic; padding: 20px; border: 1px dashed #edebe9; border-radius: 4px; margin-top: 10px; }
      .signature-image { max-width: 100%; max-height: 120px; margin-top: 10px; }
      .qr-code { margin-top: 12px; }
      .footer { background-color: #f3f2f1; padding: 20px; text-align: center; font-size: 12px; color: #605e5c; border-top: 1px solid #edebe9; }
      .status-tag { display: inline-block; padding: 6px 12px; border-radius: 4px; font-size: 14px; font-weight: 500; text-transform: uppercase; letter-spacing: 0.5px; }
      .status-completed { background-color: #e6f4ea; color: #107c10; border: 1px solid #c6e0c6; }
      .status-pending { background-color: #fff4ce; color: #ff8c00; border: 1px solid #ffe7a3; }
      .status-standby { background-color: #e6f4ff; color: #0078d4; border: 1px solid #c6e0ff; }
      .status-observation { background-color: #fce8e6; color: #d13438; border: 1px solid #f9d9d7; }
      @media print { body { background-color: white; } .container { margin: 0; } .section { break-inside: avoid; } }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1 class="company-name">Magnum CRM</h1>
        <div class="document-title">Complaint Report</div>
      </div>

      <div class="complaint-number">
        Complaint No: {{.ComplaintNo}}
        {{if .QRCodeURI}}<div class="qr-code"><img src="{{.QRCodeURI}}" alt="{{.ComplaintNo}}" width="128" height="128"></div>{{end}}
      </div>

      <div class="section">
        <div class="section-title">Client Information</div>
        <div class="info-grid">
          <div class="info-item">
            <div class="info-label">Client Name</div>
            <div class="info-value">{{.ClientName}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">System Name</div>
            <div class="info-value">{{orElse .SystemName "N/A"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Location</div>
            <div class="info-value">{{orElse .Location "N/A"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Task Type</div>
            <div class="info-value">{{orElse .TaskType "N/A"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Assigned Date</div>
            <div class="info-value">{{orElse .AssignDate "N/A"}}</div>
          </div>
        </div>
      </div>

      <div class="section">
        <div class="section-title">Complaint Details</div>
        <div class="info-grid">
          <div class="info-item">
            <div class="info-label">Fault Reported</div>
            <div class="info-value">{{orElse .FaultReported "N/A"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Type of Call</div>
            <div class="info-value">{{orElse .TypeOfCall "N/A"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Call Attended On</div>
            <div class="info-value">{{orElse .AttendedDateTime "Not specified"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Call Completed On</div>
            <div class="info-value">{{orElse .CompletedDateTime "Not specified"}}</div>
          </div>
        </div>
      </div>

      <div class="section">
        <div class="section-title">Technical Details</div>
        <div class="info-grid">
          <div class="info-item">
            <div class="info-label">Part Replaced/Stand by</div>
            <div class="info-value">{{orElse .PartReplaced "None"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Cause of Problem</div>
            <div class="info-value">{{orElse .CauseProblem "Not specified"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Diagnosis</div>
            <div class="info-value">{{orElse .Diagnosis "Not specified"}}</div>
          </div>
          <div class="info-item">
            <div class="info-label">Material Taken Out</div>
            <div class="info-value">{{orElse .MaterialTakenOut "None"}}</div>
          </div>
        </div>
      </div>

      <div class="section">
        <div class="section-title">Status Information</div>
        <div class="info-grid">
          <div class="info-item">
            <div class="info-label">Current Status</div>
            <div class="info-value">
              <span class="status-tag {{statusClass .WorkStatus}}">{{orElse .WorkStatus "Pending"}}</span>
            </div>
          </div>
          {{if .PendingReason}}
          <div class="info-item">
            <div class="info-label">Pending Reason</div>
            <div class="info-value">{{.PendingReason}}</div>
          </div>
          {{end}}
          <div class="info-item">
            <div class="info-label">Submission Date</div>
            <div class="info-value">{{.GeneratedAt}}</div>
          </div>
        </div>

        <div class="remark-section">
          <div class="section-title">Remarks</div>
          <div class="remark-text">{{orElse .Remark "No remarks provided."}}</div>
        </div>
      </div>

      <div class="signatures">
        <div class="signature-box">
          <div class="signature-label">Engineer's Signature</div>
          <div class="signature-placeholder">Engineer's signature</div>
        </div>
        <div class="signature-box">
          <div class="signature-label">Client's Signature</div>
          {{if .SignatureURI}}<img class="signature-image" src="{{.SignatureURI}}" alt="Client's signature">{{else}}<div class="signature-placeholder">Client's signature</div>{{end}}
        </div>
      </div>

      <div class="footer">
        <p>This document was automatically generated by Magnum CRM on {{.GeneratedAt}}</p>
        <p>&copy; {{.Year}} Magnum Systems - All Rights Reserved</p>
      </div>
    </div>
  </body>
</html>
`
