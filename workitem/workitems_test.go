package workitem_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldreport/bizerror"
	"fieldreport/config"
	"fieldreport/session"
	"fieldreport/workitem"

	. "github.com/onsi/gomega"
)

func bootstrapWith(itemsURL, checkInOutURL string) {
	cfg := &config.Config{}
	cfg.Backend.ManagerItemsURL = itemsURL
	cfg.Backend.EngineerItemsURL = itemsURL
	cfg.Backend.CheckInOutURL = checkInOutURL
	workitem.Bootstrap(cfg)
}

func TestListWorkItems(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should decode the legacy column names", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","data":[
				{"S_SERVNO":"SRV001","COMP_NAME":"Acme Corp","COMP_ADD1":"12 Main Rd",
				 "SYSTEM_NAME":"CCTV","S_TASK_TYPE":"Repair","S_assignedengg":"eng1",
				 "S_assigndate":"2026-08-01","S_REMARK1":"door sensor","S_jobstatus":"Pending",
				 "S_SERVDT":"2026-08-02 10:30"}]}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL, server.URL)

		items, err := workitem.ListWorkItems(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(items).To(Equal([]workitem.WorkItem{{
			ID: "SRV001", ClientName: "Acme Corp", Address: "12 Main Rd",
			SystemName: "CCTV", TaskType: "Repair", AssignedEngineer: "eng1",
			AssignDate: "2026-08-01", Remark: "door sensor", Status: workitem.StatusPending,
			ReportedAt: "2026-08-02 10:30",
		}}))
	})

	t.Run("should treat an empty data list as no items, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL, server.URL)

		items, err := workitem.ListWorkItems(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(items).ToNot(BeNil())
		Expect(items).To(HaveLen(0))
	})

	t.Run("should treat a missing data key as no items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL, server.URL)

		items, err := workitem.ListWorkItems(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(items).To(HaveLen(0))
	})

	t.Run("should tolerate a textual prefix before the JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("Notice: something\n" + `{"status":"success","data":[{"S_SERVNO":"SRV002"}]}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL, server.URL)

		items, err := workitem.ListWorkItems(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(err).To(BeNil())
		Expect(items).To(HaveLen(1))
		Expect(items[0].ID).To(Equal("SRV002"))
	})

	t.Run("should surface parse and transport failures distinctly", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`garbage`))
		}))
		bootstrapWith(server.URL, server.URL)
		_, err := workitem.ListWorkItems(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(errors.Is(err, bizerror.ErrMalformedResponse)).To(BeTrue())

		server.Close()
		_, err = workitem.ListWorkItems(context.Background(), "eng1", "pass1", session.RoleEngineer)
		Expect(errors.Is(err, bizerror.ErrNetwork)).To(BeTrue())
	})
}

func TestSubmitCheckInOut(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should classify the applied-update marker", func(t *testing.T) {
		var gotServNo, gotReason string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseForm()
			gotServNo = r.PostFormValue("servno")
			gotReason = r.PostFormValue("pendingreason")
			_, _ = w.Write([]byte(`{"status":"success-Record or Row updated ='1'"}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL, server.URL)

		outcome, err := workitem.SubmitCheckInOut(context.Background(), "eng1", "pass1", "SRV001", "Part awaited")
		Expect(err).To(BeNil())
		Expect(outcome).To(Equal(session.OutcomeSuccess))
		Expect(gotServNo).To(Equal("SRV001"))
		Expect(gotReason).To(Equal("Part awaited"))
	})

	t.Run("should classify the idempotent duplicate marker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success-Already CheckIN or CheckOut"}`))
		}))
		defer server.Close()
		bootstrapWith(server.URL, server.URL)

		outcome, err := workitem.SubmitCheckInOut(context.Background(), "eng1", "pass1", "SRV001", "")
		Expect(err).To(BeNil())
		Expect(outcome).To(Equal(session.OutcomeSuccessAlreadyProcessed))
	})
}
