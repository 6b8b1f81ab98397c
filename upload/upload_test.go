package upload_test

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldreport/bizerror"
	"fieldreport/config"
	"fieldreport/upload"

	. "github.com/onsi/gomega"
)

func bootstrapUnsigned(t *testing.T, baseURL string) {
	err := upload.Bootstrap(config.UploadConfig{
		Backend:      config.UploadBackendUnsigned,
		BaseURL:      baseURL,
		UploadPreset: "preset_1",
		Folder:       "complaint-reports",
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestUnsignedUpload(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should post a multipart form the endpoint accepts", func(t *testing.T) {
		var gotPreset, gotFolder, gotResourceType string
		var gotFileName, gotPartType string
		var gotContent []byte

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.ParseMultipartForm(1 << 20)).To(BeNil())
			gotPreset = r.FormValue("upload_preset")
			gotFolder = r.FormValue("folder")
			gotResourceType = r.FormValue("resource_type")

			file, header, err := r.FormFile("file")
			Expect(err).To(BeNil())
			defer file.Close()
			gotFileName = header.Filename
			gotPartType = header.Header.Get("Content-Type")
			gotContent, _ = ioutil.ReadAll(file)

			w.Write([]byte(`{"secure_url": "https://res.example.com/raw/upload/v1/complaint-reports/r1.pdf"}`))
		}))
		defer ts.Close()
		bootstrapUnsigned(t, ts.URL)

		result, err := upload.Upload(context.Background(), "complaint_SRV0042_report.pdf", []byte("%PDF-1.4 fake"))
		Expect(err).To(BeNil())
		Expect(result.RemoteURL).To(Equal("https://res.example.com/raw/upload/v1/complaint-reports/r1.pdf"))

		Expect(gotPreset).To(Equal("preset_1"))
		Expect(gotFolder).To(Equal("complaint-reports"))
		Expect(gotResourceType).To(Equal("raw"))
		Expect(gotFileName).To(Equal("complaint_SRV0042_report.pdf"))
		Expect(gotPartType).To(Equal("application/pdf"))
		Expect(gotContent).To(Equal([]byte("%PDF-1.4 fake")))
	})

	t.Run("should fall back to the plain url field", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"url": "http://res.example.com/r1.pdf"}`))
		}))
		defer ts.Close()
		bootstrapUnsigned(t, ts.URL)

		result, err := upload.Upload(context.Background(), "r1.pdf", []byte("x"))
		Expect(err).To(BeNil())
		Expect(result.RemoteURL).To(Equal("http://res.example.com/r1.pdf"))
	})

	t.Run("should classify a rejected upload", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "Upload preset not found"}}`))
		}))
		defer ts.Close()
		bootstrapUnsigned(t, ts.URL)

		_, err := upload.Upload(context.Background(), "r1.pdf", []byte("x"))
		Expect(errors.Is(err, bizerror.ErrUpload)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("Upload preset not found"))
	})

	t.Run("should classify a transport failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ts.Close()
		bootstrapUnsigned(t, ts.URL)

		_, err := upload.Upload(context.Background(), "r1.pdf", []byte("x"))
		Expect(errors.Is(err, bizerror.ErrUpload)).To(BeTrue())
	})

	t.Run("should reject a response without any url", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer ts.Close()
		bootstrapUnsigned(t, ts.URL)

		_, err := upload.Upload(context.Background(), "r1.pdf", []byte("x"))
		Expect(errors.Is(err, bizerror.ErrUpload)).To(BeTrue())
	})

	t.Run("should mark a docx part with the word content type", func(t *testing.T) {
		var gotPartType string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.ParseMultipartForm(1 << 20)).To(BeNil())
			_, header, err := r.FormFile("file")
			Expect(err).To(BeNil())
			gotPartType = header.Header.Get("Content-Type")
			w.Write([]byte(`{"secure_url": "https://res.example.com/r1.docx"}`))
		}))
		defer ts.Close()
		bootstrapUnsigned(t, ts.URL)

		_, err := upload.Upload(context.Background(), "r1.docx", []byte("<html></html>"))
		Expect(err).To(BeNil())
		Expect(gotPartType).To(Equal("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	})
}
