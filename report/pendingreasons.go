package report

import (
	"context"
	"encoding/json"
	"net/url"

	"fieldreport/bizerror"
	"fieldreport/common"
	"fieldreport/config"
	"fieldreport/envelope"
)

var (
	pendingReasonsURL string

	FetchPendingReasonsFunc = FetchPendingReasons
)

func Bootstrap(cfg *config.Config) {
	pendingReasonsURL = cfg.Backend.PendingReasonsURL
}

type pendingReasonRow struct {
	Reason string `json:"reason"`
}

// FetchPendingReasons loads the server-provided reason list shown in the
// pending-status dropdown.
func FetchPendingReasons(ctx context.Context, username, password string) ([]string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	body, err := common.PostForm(ctx, pendingReasonsURL, form)
	if err != nil {
		return nil, bizerror.WrapNetwork(err)
	}

	e, err := envelope.Parse(body)
	if err != nil {
		return nil, err
	}
	if !e.IsSuccess() {
		return nil, bizerror.ErrInvalidCredentials
	}
	if len(e.Data) == 0 {
		return []string{}, nil
	}

	rows := []pendingReasonRow{}
	if err := json.Unmarshal(e.Data, &rows); err != nil {
		return nil, bizerror.WrapMalformedResponse(string(e.Data))
	}
	reasons := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Reason != "" {
			reasons = append(reasons, r.Reason)
		}
	}
	return reasons, nil
}
