// Package upload pushes a generated report document to the configured
// remote store and returns its shareable URL. Two backends exist: the
// default unsigned multipart endpoint and an OSS bucket.
package upload

import (
	"context"
	"path"
	"strings"

	"fieldreport/bizerror"
	"fieldreport/config"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// Result carries the remote location of an uploaded document.
type Result struct {
	RemoteURL string
}

type store interface {
	put(ctx context.Context, fileName string, content []byte) (string, error)
}

var activeStore store

var UploadFunc = Upload

func Bootstrap(cfg config.UploadConfig) error {
	switch cfg.Backend {
	case config.UploadBackendOSS:
		s, err := newOSSStore(cfg)
		if err != nil {
			return err
		}
		activeStore = s
	default:
		activeStore = &unsignedStore{
			baseURL: cfg.BaseURL,
			preset:  cfg.UploadPreset,
			folder:  cfg.Folder,
		}
	}
	return nil
}

// Upload sends the document to the active store. A failure here never
// invalidates the local file; callers surface it as a warning.
func Upload(ctx context.Context, fileName string, content []byte) (*Result, error) {
	var childSpan *opentracing.Span
	if parentSpan := opentracing.SpanFromContext(ctx); parentSpan != nil {
		tracer := parentSpan.Tracer()
		sp := tracer.StartSpan("upload-report", opentracing.ChildOf(parentSpan.Context()))
		sp.SetTag("object-key", fileName)
		childSpan = &sp
		defer sp.Finish()
	}

	url, err := activeStore.put(ctx, fileName, content)
	if childSpan != nil {
		ext.Error.Set(*childSpan, err != nil)
	}
	if err != nil {
		return nil, bizerror.WrapUpload(err)
	}
	return &Result{RemoteURL: url}, nil
}

func contentTypeFor(fileName string) string {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
