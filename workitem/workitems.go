package workitem

import (
	"context"
	"encoding/json"
	"net/url"

	"fieldreport/bizerror"
	"fieldreport/common"
	"fieldreport/config"
	"fieldreport/envelope"
	"fieldreport/session"
)

var (
	itemsURLs     = map[session.Role]string{}
	checkInOutURL string

	ListWorkItemsFunc    = ListWorkItems
	SubmitCheckInOutFunc = SubmitCheckInOut
)

func Bootstrap(cfg *config.Config) {
	itemsURLs = map[session.Role]string{
		session.RoleManager:  cfg.Backend.ManagerItemsURL,
		session.RoleEngineer: cfg.Backend.EngineerItemsURL,
	}
	checkInOutURL = cfg.Backend.CheckInOutURL
}

// ListWorkItems fetches the full set of assigned items for the role. The
// whole result is held in memory; there is no caching and no pagination.
// An empty list is a valid terminal state, not an error.
func ListWorkItems(ctx context.Context, username, password string, role session.Role) ([]WorkItem, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	body, err := common.PostForm(ctx, itemsURLs[role], form)
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

	items := []WorkItem{}
	if len(e.Data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(e.Data, &items); err != nil {
		return nil, bizerror.WrapMalformedResponse(string(e.Data))
	}
	return items, nil
}

// SubmitCheckInOut reports the resolved item to the backend. The backend
// answers with literal status markers: an applied update, or the
// idempotent-duplicate notice when the item was already checked in or out.
func SubmitCheckInOut(ctx context.Context, username, password, itemID, pendingReason string) (session.Outcome, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("servno", itemID)
	form.Set("pendingreason", pendingReason)

	body, err := common.PostForm(ctx, checkInOutURL, form)
	if err != nil {
		return "", bizerror.WrapNetwork(err)
	}

	e, err := envelope.Parse(body)
	if err != nil {
		return "", err
	}
	switch {
	case e.IsAlreadyProcessed():
		return session.OutcomeSuccessAlreadyProcessed, nil
	case e.IsSuccess():
		return session.OutcomeSuccess, nil
	default:
		return "", bizerror.ErrInvalidCredentials
	}
}
